package entity

import "time"

// Customer representa un cliente destinatario de entregas.
type Customer struct {
	ID        string
	Name      string
	Document  string // NIT o cédula
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Branch representa una sucursal de la empresa que recibe entregas internas.
type Branch struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
