package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"reeyo/internal/domain/entities"
	"reeyo/internal/repository"
	"reeyo/internal/repository/memory"
	"reeyo/internal/simulate"
)

// ErrMutationInProgress is returned when another write to the same entity
// has not finished yet.
var ErrMutationInProgress = errors.New("another change to this record is in progress")

// DefaultMutationLockTTL bounds how long an abandoned mutation can block an
// entity.
const DefaultMutationLockTTL = 30 * time.Second

// MutationDeps are the collaborators shared by every mutation applier.
type MutationDeps struct {
	Locks   repository.LockManager
	Sim     *simulate.Simulator
	Audit   *NotificationService
	LockTTL time.Duration
}

// MutationApplier changes entities of one kind. Every write is validated
// before it is attempted, serialised per entity, committed all-or-nothing
// and then handed to the observers while the store's write guard is held.
//
// Go Learning Note — Pointer Constraints:
// PT is constrained to *T plus the mutating methods, which lets generic code
// call SetStatus on a *Customer without knowing it is a Customer.
type MutationApplier[T entities.Entity, PT entities.StatusMutable[T]] struct {
	store     *memory.EntityStore[T]
	deps      MutationDeps
	observers []func(T)
}

// NewMutationApplier creates an applier. observers run with every committed
// value; they must not call back into the store.
func NewMutationApplier[T entities.Entity, PT entities.StatusMutable[T]](store *memory.EntityStore[T], deps MutationDeps, observers ...func(T)) *MutationApplier[T, PT] {
	if deps.LockTTL <= 0 {
		deps.LockTTL = DefaultMutationLockTTL
	}
	return &MutationApplier[T, PT]{store: store, deps: deps, observers: observers}
}

// Kind returns the kind being mutated.
func (m *MutationApplier[T, PT]) Kind() entities.Kind {
	return m.store.Kind()
}

// SetStatus changes the entity's status. The value must belong to the
// kind's enumeration.
func (m *MutationApplier[T, PT]) SetStatus(ctx context.Context, id, status string) (T, error) {
	return m.Apply(ctx, id, "set_status", func(e PT) error {
		return e.SetStatus(status)
	}, describeStatus[T])
}

// Apply runs mutate against the entity with the given id. Unknown ids and
// invalid changes fail before any lock or latency. An injected failure or a
// concurrent write leaves the store untouched.
func (m *MutationApplier[T, PT]) Apply(ctx context.Context, id, action string, mutate func(PT) error, describe func(before, after T) string) (T, error) {
	ctx, span := tracer.Start(ctx, "MutationApplier.Apply")
	defer span.End()
	kind := m.store.Kind()
	span.SetAttributes(
		attribute.String("entity.kind", string(kind)),
		attribute.String("entity.id", id),
		attribute.String("mutation.action", action),
	)

	var zero T
	before, err := m.store.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	trial := entities.Clone(before)
	if err := mutate(PT(&trial)); err != nil {
		return zero, err
	}

	key := fmt.Sprintf("%s:%s", kind, id)
	token, acquired, err := m.deps.Locks.AcquireLock(ctx, key, m.deps.LockTTL)
	if err != nil {
		return zero, errors.Wrapf(err, "lock %s", key)
	}
	if !acquired {
		return zero, ErrMutationInProgress
	}
	defer m.deps.Locks.ReleaseLock(context.WithoutCancel(ctx), key, token)

	if err := m.deps.Sim.Mutation(ctx, kind); err != nil {
		span.RecordError(err)
		return zero, err
	}

	var committedFrom T
	updated, err := m.store.Update(ctx, id, func(e *T) error {
		committedFrom = *e
		return mutate(PT(e))
	}, m.observers...)
	if err != nil {
		span.RecordError(err)
		return zero, err
	}

	if m.deps.Audit != nil {
		m.deps.Audit.NotifyChange(ctx, kind, id, action, describe(committedFrom, updated))
	}
	return updated, nil
}

func describeStatus[T entities.Entity](before, after T) string {
	return fmt.Sprintf("status %s -> %s", before.EntityStatus(), after.EntityStatus())
}

func toggleStatus[PT interface{ ToggleStatus() }](e PT) error {
	e.ToggleStatus()
	return nil
}

// CustomerMutations adds the customer-only writes.
type CustomerMutations struct {
	*MutationApplier[entities.Customer, *entities.Customer]
}

// NewCustomerMutations creates the customer applier.
func NewCustomerMutations(store *memory.EntityStore[entities.Customer], deps MutationDeps, observers ...func(entities.Customer)) *CustomerMutations {
	return &CustomerMutations{NewMutationApplier[entities.Customer, *entities.Customer](store, deps, observers...)}
}

// ToggleStatus flips Active and Blocked.
func (m *CustomerMutations) ToggleStatus(ctx context.Context, id string) (entities.Customer, error) {
	return m.Apply(ctx, id, "toggle_status", toggleStatus[*entities.Customer], describeStatus[entities.Customer])
}

// RiderMutations adds the rider-only writes.
type RiderMutations struct {
	*MutationApplier[entities.Rider, *entities.Rider]
}

// NewRiderMutations creates the rider applier.
func NewRiderMutations(store *memory.EntityStore[entities.Rider], deps MutationDeps, observers ...func(entities.Rider)) *RiderMutations {
	return &RiderMutations{NewMutationApplier[entities.Rider, *entities.Rider](store, deps, observers...)}
}

// ToggleStatus flips Online and Offline.
func (m *RiderMutations) ToggleStatus(ctx context.Context, id string) (entities.Rider, error) {
	return m.Apply(ctx, id, "toggle_status", toggleStatus[*entities.Rider], describeStatus[entities.Rider])
}

// SetVerificationFlag sets license_verified or vehicle_verified.
func (m *RiderMutations) SetVerificationFlag(ctx context.Context, id string, flag entities.RiderFlag, value bool) (entities.Rider, error) {
	return m.Apply(ctx, id, "set_verification", func(r *entities.Rider) error {
		return r.SetFlag(flag, value)
	}, func(before, after entities.Rider) string {
		was, _ := before.Flag(flag)
		now, _ := after.Flag(flag)
		return fmt.Sprintf("%s %t -> %t", flag, was, now)
	})
}

// VendorMutations adds the vendor-only writes.
type VendorMutations struct {
	*MutationApplier[entities.Vendor, *entities.Vendor]
}

// NewVendorMutations creates the vendor applier.
func NewVendorMutations(store *memory.EntityStore[entities.Vendor], deps MutationDeps, observers ...func(entities.Vendor)) *VendorMutations {
	return &VendorMutations{NewMutationApplier[entities.Vendor, *entities.Vendor](store, deps, observers...)}
}

// SetCommissionRate sets the commission percentage; 0 and 100 are allowed.
func (m *VendorMutations) SetCommissionRate(ctx context.Context, id string, rate float64) (entities.Vendor, error) {
	return m.Apply(ctx, id, "set_commission", func(v *entities.Vendor) error {
		return v.SetCommissionRate(rate)
	}, func(before, after entities.Vendor) string {
		return "commission_rate " + formatRate(before.CommissionRate) + " -> " + formatRate(after.CommissionRate)
	})
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
