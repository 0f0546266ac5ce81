package services

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"reeyo/internal/domain/entities"
	"reeyo/internal/repository/memory"
)

var tracer = otel.Tracer("reeyo/services")

// StatusAll is the status filter value that matches every status.
const StatusAll = "All"

// Filter narrows a collection. The zero value matches everything.
type Filter struct {
	Search string `form:"search" json:"search,omitempty"`
	Status string `form:"status" json:"status,omitempty"`
}

// Validate rejects a status filter that is neither empty, "All", nor a
// status of kind.
func (f Filter) Validate(kind entities.Kind) error {
	if f.Status == "" || f.Status == StatusAll || kind.HasStatus(f.Status) {
		return nil
	}
	return &entities.ValidationError{
		Field:  "status",
		Reason: "must be " + strconv.Quote(StatusAll) + " or one of the " + string(kind) + " statuses",
	}
}

func (f Filter) matches(e entities.Entity) bool {
	if f.Status != "" && f.Status != StatusAll && e.EntityStatus() != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, field := range e.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SortField names what a list is ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByName      SortField = "name"
	SortByID        SortField = "id"
)

// Ordering is a sort field plus direction. Ties on the field are always
// broken by ascending id so results are deterministic.
type Ordering struct {
	Field      SortField `json:"sort"`
	Descending bool      `json:"descending"`
}

// DefaultOrdering is newest first.
func DefaultOrdering() Ordering {
	return Ordering{Field: SortByCreatedAt, Descending: true}
}

// ParseOrdering reads the sort and order query parameters. An empty sort
// means created_at; an empty order means descending for created_at and
// ascending otherwise.
func ParseOrdering(sort, order string) (Ordering, error) {
	o := Ordering{Field: SortField(sort)}
	switch o.Field {
	case "":
		o.Field = SortByCreatedAt
	case SortByCreatedAt, SortByName, SortByID:
	default:
		return Ordering{}, &entities.ValidationError{Field: "sort", Reason: `must be "created_at", "name" or "id"`}
	}

	switch strings.ToLower(order) {
	case "":
		o.Descending = o.Field == SortByCreatedAt
	case "asc":
		o.Descending = false
	case "desc":
		o.Descending = true
	default:
		return Ordering{}, &entities.ValidationError{Field: "order", Reason: `must be "asc" or "desc"`}
	}
	return o, nil
}

// Comparator returns the comparison function implementing o.
func Comparator[T entities.Entity](o Ordering) func(a, b T) int {
	return func(a, b T) int {
		var c int
		switch o.Field {
		case SortByName:
			c = strings.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName()))
		case SortByID:
			c = compareIDs(a.EntityID(), b.EntityID())
		default:
			c = a.Created().Compare(b.Created())
		}
		if o.Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return compareIDs(a.EntityID(), b.EntityID())
	}
}

// compareIDs orders numeric ids numerically ("9" before "10") and anything
// else lexically.
func compareIDs(a, b string) int {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		return cmp.Compare(ai, bi)
	}
	return strings.Compare(a, b)
}

// Query filters and sorts cloned items into a new slice. items is never
// modified.
func Query[T entities.Entity](items []T, f Filter, o Ordering) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.matches(item) {
			out = append(out, entities.Clone(item))
		}
	}
	slices.SortStableFunc(out, Comparator[T](o))
	return out
}

// QueryService derives list views from one entity store. Results are
// computed on every call from the store's current contents.
type QueryService[T entities.Entity] struct {
	store *memory.EntityStore[T]
}

// NewQueryService creates a query service over store.
func NewQueryService[T entities.Entity](store *memory.EntityStore[T]) *QueryService[T] {
	return &QueryService[T]{store: store}
}

// Kind returns the kind of the underlying store.
func (s *QueryService[T]) Kind() entities.Kind {
	return s.store.Kind()
}

// Query returns the filtered, ordered view of the store.
func (s *QueryService[T]) Query(ctx context.Context, f Filter, o Ordering) ([]T, error) {
	return s.QueryWith(ctx, f, o, nil)
}

// QueryWith is Query that also runs alongside against the same version of
// the store, so anything alongside reads (a detail panel snapshot, say) is
// consistent with the returned rows. alongside receives the number of
// entities in the store before filtering.
func (s *QueryService[T]) QueryWith(ctx context.Context, f Filter, o Ordering, alongside func(stored int)) ([]T, error) {
	_, span := tracer.Start(ctx, "QueryService.Query")
	defer span.End()
	span.SetAttributes(
		attribute.String("entity.kind", string(s.store.Kind())),
		attribute.String("query.status", f.Status),
		attribute.String("query.sort", string(o.Field)),
	)

	if err := f.Validate(s.store.Kind()); err != nil {
		return nil, err
	}

	var out []T
	s.store.Read(func(items []T) {
		out = Query(items, f, o)
		if alongside != nil {
			alongside(len(items))
		}
	})
	span.SetAttributes(attribute.Int("query.results", len(out)))
	return out, nil
}

// StatusCounts returns how many entities currently hold each status. Every
// status of the kind is present, zero counts included.
func (s *QueryService[T]) StatusCounts(ctx context.Context) map[string]int {
	counts := make(map[string]int)
	for _, status := range s.store.Kind().Statuses() {
		counts[status] = 0
	}
	s.store.Read(func(items []T) {
		for _, item := range items {
			counts[item.EntityStatus()]++
		}
	})
	return counts
}
