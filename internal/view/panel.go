// Package view holds the server-side state of the dashboard's detail panes:
// which entity an admin has selected and what its drill-down fetch returned.
package view

import (
	"context"
	"errors"
	"sync"

	"reeyo/internal/domain/entities"
)

// State is the lifecycle of a detail panel.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateNotFound State = "not_found"
	StateFailed   State = "failed"
)

// Loader is what a panel needs from the domain: the live entity under the
// store's read guard, and the slow detail fetch.
type Loader[T entities.Entity, D any] interface {
	WithEntity(id string, fn func(entity T, ok bool))
	Fetch(ctx context.Context, id string) (D, error)
}

// Snapshot is a point-in-time copy of a panel.
type Snapshot[T entities.Entity, D any] struct {
	State      State  `json:"state"`
	SelectedID string `json:"selected_id,omitempty"`
	Generation uint64 `json:"generation"`
	Entity     *T     `json:"entity,omitempty"`
	Details    *D     `json:"details,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Option configures a Panel.
type Option func(*options)

type options struct {
	settle func(gen uint64, applied bool)
}

// WithSettleHook registers fn to run after each detail fetch finishes, with
// whether its result was applied or discarded as stale.
func WithSettleHook(fn func(gen uint64, applied bool)) Option {
	return func(o *options) { o.settle = fn }
}

// Panel shows one selected entity and its details. Every Open or Close
// starts a new generation; a fetch result is applied only if its generation
// is still current, so an older, slower response can never overwrite a
// newer selection.
//
// Lock order: the store's guard (via Loader.WithEntity or a mutation commit
// hook) before the panel's own mutex.
//
// Go Learning Note — Generation Counters:
// Cancelling the superseded fetch's context stops wasted work, but a result
// may already be on its way back. The generation check is what guarantees
// correctness; cancellation is only an optimisation.
type Panel[T entities.Entity, D any] struct {
	loader Loader[T, D]
	opts   options

	mu       sync.Mutex
	gen      uint64
	selected string
	state    State
	entity   *T
	details  *D
	err      error
	cancel   context.CancelFunc
}

// NewPanel creates an idle panel.
func NewPanel[T entities.Entity, D any](loader Loader[T, D], opts ...Option) *Panel[T, D] {
	p := &Panel[T, D]{loader: loader, state: StateIdle}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Open selects id and starts fetching its details in the background. The
// entity itself is shown immediately. It returns the new generation.
func (p *Panel[T, D]) Open(id string) uint64 {
	var (
		gen uint64
		ctx context.Context
	)
	p.loader.WithEntity(id, func(entity T, ok bool) {
		p.mu.Lock()
		defer p.mu.Unlock()

		p.stopFetch()
		p.gen++
		gen = p.gen
		p.selected = id
		p.details = nil
		p.err = nil
		if !ok {
			p.state = StateNotFound
			p.entity = nil
			p.err = &entities.NotFoundError{Kind: entity.EntityKind(), ID: id}
			return
		}
		p.entity = &entity
		p.state = StateLoading
		ctx, p.cancel = context.WithCancel(context.Background())
	})

	if ctx != nil {
		go p.fetch(ctx, gen, id)
	}
	return gen
}

func (p *Panel[T, D]) fetch(ctx context.Context, gen uint64, id string) {
	details, err := p.loader.Fetch(ctx, id)
	applied := p.apply(gen, details, err)
	if p.opts.settle != nil {
		p.opts.settle(gen, applied)
	}
}

func (p *Panel[T, D]) apply(gen uint64, details D, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		return false
	}
	p.stopFetch()

	var notFound *entities.NotFoundError
	switch {
	case errors.As(err, &notFound):
		p.state = StateNotFound
		p.entity = nil
		p.err = err
	case err != nil:
		p.state = StateFailed
		p.err = err
	default:
		p.details = &details
		p.state = StateReady
	}
	return true
}

// Close clears the selection and abandons any in-flight fetch.
func (p *Panel[T, D]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopFetch()
	p.gen++
	p.selected = ""
	p.state = StateIdle
	p.entity = nil
	p.details = nil
	p.err = nil
}

// Mirror replaces the shown entity if it is the selected one. Mutations call
// it from their commit hook so the panel never disagrees with the list.
func (p *Panel[T, D]) Mirror(entity T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entity == nil || p.selected != entity.EntityID() {
		return
	}
	p.entity = &entity
}

// Refresh re-reads the shown entity after the store was reloaded; lookup
// finds an id in the new contents. A selection that no longer exists moves
// to StateNotFound and its in-flight fetch is abandoned.
func (p *Panel[T, D]) Refresh(lookup func(id string) (T, bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entity == nil {
		return
	}
	if entity, ok := lookup(p.selected); ok {
		p.entity = &entity
		return
	}


	p.stopFetch()
	p.gen++
	p.state = StateNotFound
	p.err = &entities.NotFoundError{Kind: (*p.entity).EntityKind(), ID: p.selected}
	p.entity = nil
	p.details = nil
}

// Snapshot returns a copy of the panel's current state.
func (p *Panel[T, D]) Snapshot() Snapshot[T, D] {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot[T, D]{
		State:      p.state,
		SelectedID: p.selected,
		Generation: p.gen,
	}
	if p.entity != nil {
		e := entities.Clone(*p.entity)
		s.Entity = &e
	}
	if p.details != nil {
		d := *p.details
		s.Details = &d
	}
	if p.err != nil {
		s.Error = p.err.Error()
	}
	return s
}

// stopFetch cancels the in-flight fetch, if any. Callers hold p.mu.
func (p *Panel[T, D]) stopFetch() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
