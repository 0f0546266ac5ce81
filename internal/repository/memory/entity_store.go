package memory

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"reeyo/internal/domain/entities"
	"reeyo/internal/repository"
)

var tracer = otel.Tracer("reeyo/repository/memory")

// EntityStore is the single authoritative in-memory collection for one
// entity kind. It is populated from an EntitySource and only changes through
// Load and Update.
//
// Items keep their source order; index maps an identifier to its slot so
// updates never reorder the collection.
//
// Go Learning Note — Generic Types:
// EntityStore[T] is written once and instantiated for Customer, Rider and
// Vendor. The constraint entities.Entity lets the store ask any T for its ID
// and status without reflection or type switches.
type EntityStore[T entities.Entity] struct {
	mu       sync.RWMutex
	kind     entities.Kind
	source   repository.EntitySource[T]
	items    []T
	index    map[string]int
	loadedAt time.Time
}

// NewEntityStore creates an empty store backed by source.
func NewEntityStore[T entities.Entity](kind entities.Kind, source repository.EntitySource[T]) *EntityStore[T] {
	return &EntityStore[T]{
		kind:   kind,
		source: source,
		index:  make(map[string]int),
	}
}

// Kind returns the entity kind held by the store.
func (s *EntityStore[T]) Kind() entities.Kind {
	return s.kind
}

// Load replaces the store contents with a fresh read from the source. On any
// failure the previous contents are kept and a *entities.LoadError returned.
// Like Update's hooks, each onCommit hook sees the new contents while the
// write guard is still held, and must neither retain items nor call back into
// the store.
func (s *EntityStore[T]) Load(ctx context.Context, onCommit ...func(items []T)) error {
	ctx, span := tracer.Start(ctx, "EntityStore.Load")
	defer span.End()
	span.SetAttributes(attribute.String("entity.kind", string(s.kind)))

	items, err := s.source.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return &entities.LoadError{Kind: s.kind, Err: err}
	}

	index := make(map[string]int, len(items))
	for i, item := range items {
		id := item.EntityID()
		if id == "" {
			return &entities.LoadError{Kind: s.kind, Err: fmt.Errorf("record %d has no id", i)}
		}
		if _, dup := index[id]; dup {
			return &entities.LoadError{Kind: s.kind, Err: fmt.Errorf("duplicate id %q", id)}
		}
		if !s.kind.HasStatus(item.EntityStatus()) {
			return &entities.LoadError{Kind: s.kind, Err: fmt.Errorf("record %q has invalid status %q", id, item.EntityStatus())}
		}
		index[id] = i
	}

	s.mu.Lock()
	s.items = append([]T(nil), items...)
	s.index = index
	s.loadedAt = time.Now()
	for _, hook := range onCommit {
		hook(s.items)
	}
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("entity.count", len(items)))
	log.Printf("[STORE] loaded %d %s", len(items), s.kind.Plural())
	return nil
}

// LoadedAt returns when the store was last populated (zero before the first
// successful load).
func (s *EntityStore[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Len returns the number of entities held.
func (s *EntityStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// List returns a copy of every entity in store order.
func (s *EntityStore[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = entities.Clone(item)
	}
	return out
}

// Get returns a copy of the entity with the given id.
func (s *EntityStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, &entities.NotFoundError{Kind: s.kind, ID: id}
	}
	return entities.Clone(s.items[i]), nil
}

// Read runs fn while holding the read guard, so everything fn observes
// (including state kept consistent by Update's commit hooks) belongs to one
// logical version of the store. items is the store's own slice: fn must not
// retain or modify it (or anything it references), nor call Update.
func (s *EntityStore[T]) Read(fn func(items []T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.items)
}

// WithEntity is Read for a single identifier.
func (s *EntityStore[T]) WithEntity(id string, fn func(entity T, ok bool)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		var zero T
		fn(zero, false)
		return
	}
	fn(entities.Clone(s.items[i]), true)
}

// Update applies mutate to a copy of the entity with the given id and commits
// the copy only if mutate succeeds, so a failed mutation leaves nothing
// behind. Unknown ids return *entities.NotFoundError. Each onCommit hook runs
// with the committed value while the write guard is still held; hooks must
// not call back into the store.
func (s *EntityStore[T]) Update(ctx context.Context, id string, mutate func(entity *T) error, onCommit ...func(T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	i, ok := s.index[id]
	if !ok {
		return zero, &entities.NotFoundError{Kind: s.kind, ID: id}
	}

	next := entities.Clone(s.items[i])
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if next.EntityID() != id {
		return zero, &entities.ValidationError{Field: "id", Reason: "identifiers are immutable"}
	}
	if !s.kind.HasStatus(next.EntityStatus()) {
		return zero, &entities.ValidationError{Field: "status", Reason: fmt.Sprintf("%q is not a %s status", next.EntityStatus(), s.kind)}
	}

	s.items[i] = next
	for _, hook := range onCommit {
		hook(entities.Clone(next))
	}
	return entities.Clone(next), nil
}
