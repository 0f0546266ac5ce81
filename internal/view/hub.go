package view

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"reeyo/internal/domain/entities"
)

// Hub keeps one Panel per admin session for a single entity kind. Panels
// idle for longer than the TTL are evicted and closed.
type Hub[T entities.Entity, D any] struct {
	loader Loader[T, D]
	opts   []Option

	mu     sync.Mutex
	panels *cache.Cache
}

// NewHub creates a hub whose panels expire after ttl without use.
func NewHub[T entities.Entity, D any](loader Loader[T, D], ttl time.Duration, opts ...Option) *Hub[T, D] {
	panels := cache.New(ttl, ttl/2)
	panels.OnEvicted(func(_ string, v interface{}) {
		if p, ok := v.(*Panel[T, D]); ok {
			p.Close()
		}
	})
	return &Hub[T, D]{loader: loader, opts: opts, panels: panels}
}

// Panel returns the session's panel, creating it on first use. Each call
// restarts the session's expiry.
func (h *Hub[T, D]) Panel(session string) *Panel[T, D] {
	h.mu.Lock()
	defer h.mu.Unlock()

	var p *Panel[T, D]
	if x, found := h.panels.Get(session); found {
		p = x.(*Panel[T, D])
	} else {
		p = NewPanel(h.loader, h.opts...)
	}
	h.panels.Set(session, p, cache.DefaultExpiration)
	return p
}

// Lookup returns the session's panel without creating one.
func (h *Hub[T, D]) Lookup(session string) (*Panel[T, D], bool) {
	x, found := h.panels.Get(session)
	if !found {
		return nil, false
	}
	return x.(*Panel[T, D]), true
}

// Close drops the session's panel, abandoning its in-flight fetch.
func (h *Hub[T, D]) Close(session string) {
	h.panels.Delete(session)
}

// Mirror forwards a committed entity to every open panel.
func (h *Hub[T, D]) Mirror(entity T) {
	for _, item := range h.panels.Items() {
		item.Object.(*Panel[T, D]).Mirror(entity)
	}
}

// Refresh re-syncs every open panel with a freshly loaded collection. The
// store calls it from Load's commit hook.
func (h *Hub[T, D]) Refresh(items []T) {
	byID := make(map[string]T, len(items))
	for _, item := range items {
		byID[item.EntityID()] = entities.Clone(item)
	}
	lookup := func(id string) (T, bool) {
		item, ok := byID[id]
		return item, ok
	}
	for _, item := range h.panels.Items() {
		item.Object.(*Panel[T, D]).Refresh(lookup)
	}
}

// Len returns the number of live sessions.
func (h *Hub[T, D]) Len() int {
	return h.panels.ItemCount()
}
