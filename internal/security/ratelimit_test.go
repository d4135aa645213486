package security

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domsec "github.com/jhoicas/entregas-api/internal/domain/security"
)

// fakeClock reloj controlable para avanzar la ventana sin dormir.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(max int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(max, window, nil)
	rl.now = clock.now
	return rl, clock
}

// La petición número max pasa; la max+1 se rechaza con RATE_LIMIT.
func TestAllow_LimiteExactoEnLaFrontera(t *testing.T) {
	rl, _ := newTestLimiter(100, 15*time.Minute)

	for i := 0; i < 100; i++ {
		require.NoError(t, rl.Allow("client-1"), "petición %d debe pasar", i+1)
	}

	err := rl.Allow("client-1")
	var v *domsec.Violation
	require.True(t, errors.As(err, &v), "la petición 101 debe rechazarse")
	assert.Equal(t, domsec.KindRateLimit, v.Kind)
	assert.Equal(t, "client-1", v.ClientID)
}

// Los contadores son independientes por cliente.
func TestAllow_ContadoresPorCliente(t *testing.T) {
	rl, _ := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Allow("a"))
	}
	require.Error(t, rl.Allow("a"))
	assert.NoError(t, rl.Allow("b"), "el cliente b no comparte cupo con a")
}

// Al expirar la ventana el contador se reinicia.
func TestAllow_VentanaExpiradaReinicia(t *testing.T) {
	rl, clock := newTestLimiter(2, time.Minute)

	require.NoError(t, rl.Allow("a"))
	require.NoError(t, rl.Allow("a"))
	require.Error(t, rl.Allow("a"))

	clock.advance(time.Minute)
	assert.NoError(t, rl.Allow("a"), "ventana nueva, cupo nuevo")
}

// Las ventanas expiradas se barren: el mapa no crece sin límite.
func TestAllow_BarreVentanasExpiradas(t *testing.T) {
	rl, clock := newTestLimiter(5, time.Minute)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, rl.Allow(id))
	}
	require.Len(t, rl.clients, 3)

	clock.advance(2 * time.Minute)
	require.NoError(t, rl.Allow("d"), "entrada nueva dispara el barrido")

	assert.Len(t, rl.clients, 1, "solo debe quedar la ventana viva")
}

// Cada rechazo se reporta al auditor aunque el caller maneje el error.
func TestAllow_RechazoSeAudita(t *testing.T) {
	var captured []*domsec.Violation
	rl, _ := newTestLimiter(1, time.Minute)
	rl.audit = auditFunc(func(v *domsec.Violation, sample string) {
		captured = append(captured, v)
	})

	require.NoError(t, rl.Allow("a"))
	require.Error(t, rl.Allow("a"))
	require.Error(t, rl.Allow("a"))

	assert.Len(t, captured, 2, "cada rechazo genera un evento")
}

// auditFunc adapta una función al puerto AuditLogger.
type auditFunc func(v *domsec.Violation, sample string)

func (f auditFunc) LogViolation(v *domsec.Violation, sample string) { f(v, sample) }
