package security

import (
	"sync"
	"time"

	domsec "github.com/jhoicas/entregas-api/internal/domain/security"
)

// Valores por defecto del rate limiter: 100 peticiones por ventana de 15 minutos.
const (
	DefaultRateLimitMax    = 100
	DefaultRateLimitWindow = 15 * time.Minute
)

// RateLimiter contador de ventana deslizante por fingerprint de caller.
// El estado es local al proceso: para despliegues multi-instancia habría que
// respaldarlo en un store compartido (afinidad single-instance documentada
// en DESIGN.md).
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clients map[string]*rateWindow
	audit   AuditLogger
	now     func() time.Time // inyectable en tests
}

type rateWindow struct {
	start time.Time
	count int
}

// NewRateLimiter construye el limiter; max <= 0 o window <= 0 usan los
// defaults. audit puede ser nil (solo en tests).
func NewRateLimiter(max int, window time.Duration, audit AuditLogger) *RateLimiter {
	if max <= 0 {
		max = DefaultRateLimitMax
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	return &RateLimiter{
		max:     max,
		window:  window,
		clients: make(map[string]*rateWindow),
		audit:   audit,
		now:     time.Now,
	}
}

// Allow consume un cupo para clientID. La ventana se reinicia al expirar; una
// vez superado el máximo devuelve *domsec.Violation con Kind RATE_LIMIT.
// La petición número max todavía pasa; la max+1 se rechaza.
func (rl *RateLimiter) Allow(clientID string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.clients[clientID]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[clientID] = &rateWindow{start: now, count: 1}
		rl.sweep(now)
		return nil
	}
	if w.count >= rl.max {
		v := &domsec.Violation{Kind: domsec.KindRateLimit, ClientID: clientID}
		if rl.audit != nil {
			rl.audit.LogViolation(v, "")
		}
		return v
	}
	w.count++
	return nil
}

// sweep elimina ventanas expiradas para que el mapa quede acotado.
// Se invoca con el lock tomado.
func (rl *RateLimiter) sweep(now time.Time) {
	for id, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, id)
		}
	}
}
