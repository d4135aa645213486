// Package security implementa la validación defensiva de entradas de texto:
// sanitización, detección heurística de inyecciones y rate limiting.
//
// La detección por patrones es defensa en profundidad, NO la defensa
// principal: toda la persistencia usa sentencias parametrizadas de pgx, de
// modo que un patrón que escape a las heurísticas no llega a ejecutarse
// como SQL.
package security

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
	domsec "github.com/jhoicas/entregas-api/internal/domain/security"
)

// DefaultMaxInputLength longitud máxima por defecto para campos de texto libre.
const DefaultMaxInputLength = 10000

// sampleLimit fragmento máximo de la entrada ofensiva que se persiste en auditoría.
const sampleLimit = 200

// Heurísticas de inyección SQL sobre el texto crudo (antes de sanitizar).
var sqlPatterns = []*regexp.Regexp{
	// Palabras clave de sentencias
	regexp.MustCompile(`(?i)\b(select|insert|update|delete|drop|create|alter|truncate|union|exec|execute)\b[\s(]`),
	// Tautologías tipo OR 1=1 / AND 'a'='a'
	regexp.MustCompile(`(?i)\b(or|and)\b\s+['"]?\w+['"]?\s*=\s*['"]?\w+['"]?`),
	// Marcadores de comentario y stacked queries
	regexp.MustCompile(`(--|/\*|\*/|;\s*\w)`),
	// Funciones sospechosas
	regexp.MustCompile(`(?i)\b(cast|convert|substring|char|concat|chr|ascii|benchmark|sleep|waitfor)\s*\(`),
}

// Heurísticas XSS: las mismas familias de tags/atributos/URIs que remueve Sanitize.
var xssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*/?\s*(script|iframe|object|embed|link|meta)\b`),
	regexp.MustCompile(`(?i)(javascript|vbscript)\s*:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)<\s*img[^>]+src\s*=`),
}

// Fragmentos de markup que Sanitize elimina antes de escapar.
var stripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<\s*script\b.*?<\s*/\s*script\s*>`),
	regexp.MustCompile(`(?i)<\s*/?\s*(script|iframe|object|embed|link|meta)\b[^>]*>`),
	regexp.MustCompile(`(?i)(javascript|vbscript)\s*:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`),
}

// AuditLogger recibe cada violación detectada, siempre, aunque el caller
// maneje el error (puede indicar un ataque y no un error de usuario).
type AuditLogger interface {
	LogViolation(v *domsec.Violation, sample string)
}

// Validator sanitiza y examina campos de texto libre antes de que lleguen
// a la capa de persistencia.
type Validator struct {
	maxLength int
	audit     AuditLogger
}

// NewValidator construye el validador. maxLength <= 0 usa DefaultMaxInputLength;
// audit puede ser nil (solo en tests).
func NewValidator(maxLength int, audit AuditLogger) *Validator {
	if maxLength <= 0 {
		maxLength = DefaultMaxInputLength
	}
	return &Validator{maxLength: maxLength, audit: audit}
}

// Sanitize elimina fragmentos de markup peligrosos, escapa los cinco
// caracteres reservados de HTML y recorta espacios.
func (v *Validator) Sanitize(text string) string {
	for _, re := range stripPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(html.EscapeString(text))
}

// CheckField valida un campo de texto libre: primero longitud (para no gastar
// ciclos en entradas patológicas), después las heurísticas SQL y XSS sobre el
// texto crudo. Devuelve una *domsec.Violation tipada sin modificar estado.
func (v *Validator) CheckField(clientID, field, text string) error {
	if len(text) > v.maxLength {
		return v.reject(&domsec.Violation{Kind: domsec.KindInputTooLong, Field: field, ClientID: clientID}, text)
	}
	for _, re := range sqlPatterns {
		if re.MatchString(text) {
			return v.reject(&domsec.Violation{Kind: domsec.KindSQLInjection, Field: field, ClientID: clientID}, text)
		}
	}
	for _, re := range xssPatterns {
		if re.MatchString(text) {
			return v.reject(&domsec.Violation{Kind: domsec.KindXSS, Field: field, ClientID: clientID}, text)
		}
	}
	return nil
}

// reject audita y devuelve la violación.
func (v *Validator) reject(violation *domsec.Violation, raw string) error {
	if v.audit != nil {
		sample := raw
		if len(sample) > sampleLimit {
			sample = sample[:sampleLimit]
		}
		v.audit.LogViolation(violation, sample)
	}
	return violation
}

// Auditor implementa AuditLogger persistiendo en security_events y dejando
// traza en el log estructurado. Un fallo al persistir no revierte la
// denegación: se registra y se continúa.
type Auditor struct {
	repo repository.SecurityEventRepository
	log  zerolog.Logger
}

// NewAuditor construye el auditor.
func NewAuditor(repo repository.SecurityEventRepository, log zerolog.Logger) *Auditor {
	return &Auditor{repo: repo, log: log}
}

// LogViolation persiste el evento y lo escribe en el log con su severidad.
func (a *Auditor) LogViolation(v *domsec.Violation, sample string) {
	event := &entity.SecurityEvent{
		ID:        uuid.New().String(),
		Kind:      string(v.Kind),
		Severity:  v.Severity(),
		ClientID:  v.ClientID,
		Field:     v.Field,
		Sample:    sample,
		CreatedAt: time.Now(),
	}
	if err := a.repo.Create(event); err != nil {
		a.log.Error().Err(err).Str("kind", event.Kind).Msg("no se pudo persistir evento de seguridad")
	}
	a.log.Warn().
		Str("kind", event.Kind).
		Str("severity", event.Severity).
		Str("client_id", event.ClientID).
		Str("field", event.Field).
		Msg("entrada rechazada por la capa de seguridad")
}
