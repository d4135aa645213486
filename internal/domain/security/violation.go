// Package security define la clasificación de violaciones de seguridad
// detectadas por la capa de validación de entradas.
package security

import "fmt"

// ViolationKind clasifica una entrada rechazada.
type ViolationKind string

const (
	KindSQLInjection ViolationKind = "SQL_INJECTION"
	KindXSS          ViolationKind = "XSS"
	KindRateLimit    ViolationKind = "RATE_LIMIT"
	KindInputTooLong ViolationKind = "INPUT_TOO_LONG"
	KindInvalidInput ViolationKind = "INVALID_INPUT"
)

// Severidad del evento para el log de auditoría.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Violation es el error tipado que levanta la capa de seguridad.
// No modifica estado: la detección ocurre antes de cualquier escritura.
type Violation struct {
	Kind     ViolationKind
	Field    string // campo que disparó la violación (vacío para rate limit)
	ClientID string
}

// Error implementa la interfaz error.
func (v *Violation) Error() string {
	if v.Field != "" {
		return fmt.Sprintf("violación de seguridad %s en campo %q", v.Kind, v.Field)
	}
	return fmt.Sprintf("violación de seguridad %s", v.Kind)
}

// Severity devuelve la severidad sugerida según el tipo.
// Inyección y XSS son indicios de ataque; el resto suele ser uso anómalo.
func (v *Violation) Severity() string {
	switch v.Kind {
	case KindSQLInjection, KindXSS:
		return SeverityHigh
	case KindRateLimit:
		return SeverityMedium
	}
	return SeverityLow
}
