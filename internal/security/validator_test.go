package security_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/entregas-api/internal/domain/entity"
	domsec "github.com/jhoicas/entregas-api/internal/domain/security"
	"github.com/jhoicas/entregas-api/internal/security"
)

// captureAudit acumula en memoria las violaciones reportadas.
type captureAudit struct {
	violations []*domsec.Violation
	samples    []string
}

func (a *captureAudit) LogViolation(v *domsec.Violation, sample string) {
	a.violations = append(a.violations, v)
	a.samples = append(a.samples, sample)
}

// memEventRepo fake del log de auditoría persistente.
type memEventRepo struct {
	events []*entity.SecurityEvent
	err    error
}

func (r *memEventRepo) Create(e *entity.SecurityEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, e)
	return nil
}

func (r *memEventRepo) List(limit, offset int) ([]*entity.SecurityEvent, error) {
	return r.events, nil
}

func checkKind(t *testing.T, err error, want domsec.ViolationKind) *domsec.Violation {
	t.Helper()
	var v *domsec.Violation
	require.True(t, errors.As(err, &v), "debe ser una violación tipada")
	assert.Equal(t, want, v.Kind)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckField
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckField_DetectaInyeccionSQL(t *testing.T) {
	v := security.NewValidator(0, nil)

	for _, payload := range []string{
		"'; DROP TABLE products; --",
		"1 OR 1=1",
		"admin' AND 'a'='a",
		"UNION SELECT password FROM users",
		"1; DELETE FROM issuances",
		"sleep(10)",
	} {
		err := v.CheckField("client-1", "notes", payload)
		checkKind(t, err, domsec.KindSQLInjection)
	}
}

func TestCheckField_DetectaXSS(t *testing.T) {
	v := security.NewValidator(0, nil)

	for _, payload := range []string{
		"<script>alert(1)</script>",
		"<IMG SRC=x onerror=alert(1)>",
		"javascript:alert(document.cookie)",
		"<iframe src='https://evil.example'></iframe>",
		"hola onmouseover=robar()",
	} {
		err := v.CheckField("client-1", "reference", payload)
		require.Error(t, err, "payload: %s", payload)
		var violation *domsec.Violation
		require.True(t, errors.As(err, &violation))
		assert.Contains(t,
			[]domsec.ViolationKind{domsec.KindXSS, domsec.KindSQLInjection},
			violation.Kind, "payload: %s", payload)
	}
}

func TestCheckField_RechazaEntradaDemasiadoLarga(t *testing.T) {
	v := security.NewValidator(100, nil)

	err := v.CheckField("client-1", "notes", strings.Repeat("a", 101))
	checkKind(t, err, domsec.KindInputTooLong)

	assert.NoError(t, v.CheckField("client-1", "notes", strings.Repeat("a", 100)),
		"exactamente el máximo todavía pasa")
}

func TestCheckField_AceptaTextoNormal(t *testing.T) {
	v := security.NewValidator(0, nil)

	for _, text := range []string{
		"Remisión 2024-0042",
		"Entrega parcial, faltan 2 cajas",
		"Cliente pidió factura electrónica",
		"orden de salida #15, bodega norte",
	} {
		assert.NoError(t, v.CheckField("client-1", "notes", text), "texto: %s", text)
	}
}

// Toda violación se reporta al auditor con una muestra acotada.
func TestCheckField_AuditaConMuestraAcotada(t *testing.T) {
	audit := &captureAudit{}
	v := security.NewValidator(0, audit)

	payload := "'; DROP TABLE products; --" + strings.Repeat("x", 500)
	err := v.CheckField("client-7", "notes", payload)
	require.Error(t, err)

	require.Len(t, audit.violations, 1)
	assert.Equal(t, domsec.KindSQLInjection, audit.violations[0].Kind)
	assert.Equal(t, "client-7", audit.violations[0].ClientID)
	assert.Equal(t, "notes", audit.violations[0].Field)
	assert.LessOrEqual(t, len(audit.samples[0]), 200, "la muestra persistida se trunca")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sanitize
// ──────────────────────────────────────────────────────────────────────────────

func TestSanitize_EscapaYRecorta(t *testing.T) {
	v := security.NewValidator(0, nil)

	assert.Equal(t, "Tom &amp; Jerry", v.Sanitize("  Tom & Jerry  "))
	assert.Equal(t, "5 &lt; 10", v.Sanitize("5 < 10"))
	assert.NotContains(t, v.Sanitize(`<script>alert("x")</script>hola`), "script")
	assert.NotContains(t, v.Sanitize(`click <a href="javascript:x()">aquí</a>`), "javascript:")
}

// Sanitize es idempotente sobre texto ya limpio.
func TestSanitize_TextoLimpioQuedaIgual(t *testing.T) {
	v := security.NewValidator(0, nil)
	assert.Equal(t, "Remisión 2024-0042", v.Sanitize("Remisión 2024-0042"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditor
// ──────────────────────────────────────────────────────────────────────────────

// El Auditor persiste el evento con la severidad derivada del tipo.
func TestAuditor_PersisteEvento(t *testing.T) {
	repo := &memEventRepo{}
	auditor := security.NewAuditor(repo, zerolog.Nop())

	auditor.LogViolation(&domsec.Violation{
		Kind:     domsec.KindSQLInjection,
		Field:    "notes",
		ClientID: "client-1",
	}, "'; DROP TABLE --")

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, string(domsec.KindSQLInjection), event.Kind)
	assert.Equal(t, domsec.SeverityHigh, event.Severity)
	assert.Equal(t, "client-1", event.ClientID)
	assert.Equal(t, "notes", event.Field)
	assert.NotEmpty(t, event.ID)
}

// Un fallo al persistir no entra en pánico ni propaga el error: la denegación
// ya ocurrió y debe mantenerse.
func TestAuditor_FalloDePersistenciaNoPropaga(t *testing.T) {
	repo := &memEventRepo{err: errors.New("db caída")}
	auditor := security.NewAuditor(repo, zerolog.Nop())

	assert.NotPanics(t, func() {
		auditor.LogViolation(&domsec.Violation{Kind: domsec.KindRateLimit, ClientID: "c1"}, "")
	})
}
