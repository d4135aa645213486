package entity

import "time"

// SecurityEvent registro de auditoría de una entrada rechazada por la capa
// de seguridad. Se persiste siempre, aunque el caller maneje el error,
// porque puede indicar un ataque y no un error del usuario.
type SecurityEvent struct {
	ID        string
	Kind      string // SQL_INJECTION, XSS, RATE_LIMIT, INPUT_TOO_LONG, INVALID_INPUT
	Severity  string // low, medium, high
	ClientID  string // fingerprint del caller (user id o IP)
	Field     string // campo que disparó la violación
	Sample    string // fragmento truncado de la entrada ofensiva
	CreatedAt time.Time
}
