// Package cache ofrece un cache en memoria con TTL para agregados del
// dashboard y otros valores caros de calcular.
//
// Reemplaza los mapas globales ad hoc del diseño anterior por un servicio
// inyectable con expiración definida. El estado es local al proceso: en un
// despliegue multi-instancia cada instancia recalcula su propio valor al
// expirar, lo cual es aceptable para agregados informativos.
package cache

import (
	"sync"
	"time"
)

type item struct {
	value     any
	expiresAt time.Time
}

// TTLCache cache concurrente con expiración por entrada.
type TTLCache struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
	now   func() time.Time // inyectable en tests
}

// New construye el cache con el TTL indicado.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		items: make(map[string]item),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get devuelve el valor si existe y no expiró.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(it.expiresAt) {
		return nil, false
	}
	return it.value, true
}

// Set guarda el valor con el TTL del cache y barre entradas expiradas
// para que el mapa quede acotado.
func (c *TTLCache) Set(key string, value any) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, it := range c.items {
		if now.After(it.expiresAt) {
			delete(c.items, k)
		}
	}
	c.items[key] = item{value: value, expiresAt: now.Add(c.ttl)}
}

// Invalidate elimina la entrada.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}
