package services

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"reeyo/internal/domain/entities"
	"reeyo/internal/repository"
	"reeyo/internal/repository/memory"
	"reeyo/internal/simulate"
)

// DetailResolver fetches the child records shown in the detail view of one
// selected entity. D is the kind's bundle type.
type DetailResolver[T entities.Entity, D any] struct {
	store *memory.EntityStore[T]
	sim   *simulate.Simulator
	fetch func(ctx context.Context, id string) (D, error)
}

// Kind returns the kind whose details are resolved.
func (r *DetailResolver[T, D]) Kind() entities.Kind {
	return r.store.Kind()
}

// Fetch resolves the bundle for id. An id missing from the store is a
// *entities.NotFoundError; an existing entity without children resolves to
// empty collections. The simulated detail latency is cancellable via ctx.
func (r *DetailResolver[T, D]) Fetch(ctx context.Context, id string) (D, error) {
	ctx, span := tracer.Start(ctx, "DetailResolver.Fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("entity.kind", string(r.store.Kind())),
		attribute.String("entity.id", id),
	)

	var zero D
	if _, err := r.store.Get(ctx, id); err != nil {
		return zero, err
	}
	if err := r.sim.Detail(ctx, r.store.Kind()); err != nil {
		span.RecordError(err)
		return zero, err
	}
	details, err := r.fetch(ctx, id)
	if err != nil {
		span.RecordError(err)
		return zero, errors.Wrapf(err, "fetch %s %s details", r.store.Kind(), id)
	}
	return details, nil
}

// WithEntity exposes the store's current value for id under its read guard.
func (r *DetailResolver[T, D]) WithEntity(id string, fn func(entity T, ok bool)) {
	r.store.WithEntity(id, fn)
}

func newestFirst[R any](items []R, created func(R) int64) {
	slices.SortStableFunc(items, func(a, b R) int {
		ca, cb := created(a), created(b)
		switch {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		}
		return 0
	})
}

// NewCustomerDetailResolver resolves order history and saved addresses.
func NewCustomerDetailResolver(store *memory.EntityStore[entities.Customer], src repository.OrderSource, sim *simulate.Simulator) *DetailResolver[entities.Customer, entities.CustomerDetails] {
	return &DetailResolver[entities.Customer, entities.CustomerDetails]{
		store: store,
		sim:   sim,
		fetch: func(ctx context.Context, id string) (entities.CustomerDetails, error) {
			orders, err := src.OrdersByCustomer(ctx, id)
			if err != nil {
				return entities.CustomerDetails{}, err
			}
			addresses, err := src.AddressesByCustomer(ctx, id)
			if err != nil {
				return entities.CustomerDetails{}, err
			}
			orders = append([]entities.Order{}, orders...)
			newestFirst(orders, func(o entities.Order) int64 { return o.CreatedAt.UnixNano() })
			return entities.CustomerDetails{
				Orders:    orders,
				Addresses: append([]entities.Address{}, addresses...),
			}, nil
		},
	}
}

// NewRiderDetailResolver resolves delivery earnings and their total.
func NewRiderDetailResolver(store *memory.EntityStore[entities.Rider], src repository.EarningSource, sim *simulate.Simulator) *DetailResolver[entities.Rider, entities.RiderDetails] {
	return &DetailResolver[entities.Rider, entities.RiderDetails]{
		store: store,
		sim:   sim,
		fetch: func(ctx context.Context, id string) (entities.RiderDetails, error) {
			earnings, err := src.EarningsByRider(ctx, id)
			if err != nil {
				return entities.RiderDetails{}, err
			}
			earnings = append([]entities.Earning{}, earnings...)
			newestFirst(earnings, func(e entities.Earning) int64 { return e.CreatedAt.UnixNano() })

			var total int64
			for _, e := range earnings {
				total += e.Amount
			}
			return entities.RiderDetails{Earnings: earnings, TotalEarnings: total}, nil
		},
	}
}

// NewVendorDetailResolver resolves the payout history, newest first.
func NewVendorDetailResolver(store *memory.EntityStore[entities.Vendor], src repository.PayoutSource, sim *simulate.Simulator) *DetailResolver[entities.Vendor, entities.VendorDetails] {
	return &DetailResolver[entities.Vendor, entities.VendorDetails]{
		store: store,
		sim:   sim,
		fetch: func(ctx context.Context, id string) (entities.VendorDetails, error) {
			payouts, err := src.PayoutsByVendor(ctx, id)
			if err != nil {
				return entities.VendorDetails{}, err
			}
			payouts = append([]entities.Payout{}, payouts...)
			newestFirst(payouts, func(p entities.Payout) int64 { return p.CreatedAt.UnixNano() })

			var total int64
			for _, p := range payouts {
				total += p.Amount
			}
			return entities.VendorDetails{Payouts: payouts, TotalPayouts: total}, nil
		},
	}
}
