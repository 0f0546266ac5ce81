// Package app assembles the dashboard: fixture-backed stores, the services
// over them and the per-session detail panels. The HTTP server, the dashctl
// CLI and the integration tests all build the same App.
package app

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"reeyo/internal/config"
	"reeyo/internal/domain/entities"
	"reeyo/internal/fixtures"
	"reeyo/internal/repository/memory"
	"reeyo/internal/services"
	"reeyo/internal/simulate"
	"reeyo/internal/view"
	"reeyo/pkg/utils"
)

// Collection groups everything serving one entity kind.
type Collection[T entities.Entity, D any] struct {
	Store   *memory.EntityStore[T]
	Query   *services.QueryService[T]
	Export  *services.ExportService[T]
	Details *services.DetailResolver[T, D]
	Panels  *view.Hub[T, D]
}

func newCollection[T entities.Entity, D any](
	store *memory.EntityStore[T],
	details func(*memory.EntityStore[T]) *services.DetailResolver[T, D],
	columns []utils.Column[T],
	cfg *config.Config,
	opts []view.Option,
) Collection[T, D] {
	query := services.NewQueryService(store)
	resolver := details(store)
	return Collection[T, D]{
		Store:   store,
		Query:   query,
		Export:  services.NewExportService(query, columns),
		Details: resolver,
		Panels:  view.NewHub[T, D](resolver, cfg.Sessions.PanelTTL, opts...),
	}
}

// App is the assembled dashboard.
type App struct {
	Config    *config.Config
	Simulator *simulate.Simulator
	Locks     *memory.LockManager
	Audit     *services.NotificationService
	Auth      *services.AuthService
	Overview  *services.OverviewService

	Customers Collection[entities.Customer, entities.CustomerDetails]
	Riders    Collection[entities.Rider, entities.RiderDetails]
	Vendors   Collection[entities.Vendor, entities.VendorDetails]

	CustomerMutations *services.CustomerMutations
	RiderMutations    *services.RiderMutations
	VendorMutations   *services.VendorMutations
}

// New builds an App from cfg. Stores start empty; call LoadAll.
func New(cfg *config.Config, opts ...view.Option) (*App, error) {
	data, err := loadDataset(cfg.Fixtures)
	if err != nil {
		return nil, err
	}

	auth, err := services.NewAuthService(
		cfg.Auth.AdminEmail,
		cfg.Auth.AdminPassword,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		cfg.Auth.BcryptCost,
	)
	if err != nil {
		return nil, err
	}

	sim := simulate.New(simulate.Latency{
		Load:     cfg.Simulation.LoadLatency,
		Detail:   cfg.Simulation.DetailLatency,
		Mutation: cfg.Simulation.MutationLatency,
	}, simulate.NewFaultInjector(cfg.Simulation.FailureRate, cfg.Simulation.Seed))
	provider := fixtures.NewProvider(data, sim)

	a := &App{
		Config:    cfg,
		Simulator: sim,
		Locks:     memory.NewLockManager(0),
		Audit:     services.NewNotificationService(cfg.Sessions.AuditLength),
		Auth:      auth,
	}

	a.Customers = newCollection(
		memory.NewEntityStore(entities.KindCustomer, provider.Customers()),
		func(s *memory.EntityStore[entities.Customer]) *services.DetailResolver[entities.Customer, entities.CustomerDetails] {
			return services.NewCustomerDetailResolver(s, provider, sim)
		},
		services.CustomerColumns, cfg, opts,
	)
	a.Riders = newCollection(
		memory.NewEntityStore(entities.KindRider, provider.Riders()),
		func(s *memory.EntityStore[entities.Rider]) *services.DetailResolver[entities.Rider, entities.RiderDetails] {
			return services.NewRiderDetailResolver(s, provider, sim)
		},
		services.RiderColumns, cfg, opts,
	)
	a.Vendors = newCollection(
		memory.NewEntityStore(entities.KindVendor, provider.Vendors()),
		func(s *memory.EntityStore[entities.Vendor]) *services.DetailResolver[entities.Vendor, entities.VendorDetails] {
			return services.NewVendorDetailResolver(s, provider, sim)
		},
		services.VendorColumns, cfg, opts,
	)

	deps := services.MutationDeps{
		Locks:   a.Locks,
		Sim:     sim,
		Audit:   a.Audit,
		LockTTL: cfg.Simulation.MutationLockTTL,
	}
	a.CustomerMutations = services.NewCustomerMutations(a.Customers.Store, deps, a.Customers.Panels.Mirror)
	a.RiderMutations = services.NewRiderMutations(a.Riders.Store, deps, a.Riders.Panels.Mirror)
	a.VendorMutations = services.NewVendorMutations(a.Vendors.Store, deps, a.Vendors.Panels.Mirror)

	a.Overview = services.NewOverviewService(a.Customers.Query, a.Riders.Query, a.Vendors.Query)
	return a, nil
}

// Reload repopulates the store of one kind. On failure the store keeps its
// previous contents and the failure is logged.
func (a *App) Reload(ctx context.Context, kind entities.Kind) error {
	var err error
	switch kind {
	case entities.KindCustomer:
		err = a.Customers.Store.Load(ctx, a.Customers.Panels.Refresh)
	case entities.KindRider:
		err = a.Riders.Store.Load(ctx, a.Riders.Panels.Refresh)
	case entities.KindVendor:
		err = a.Vendors.Store.Load(ctx, a.Vendors.Panels.Refresh)
	default:
		return errors.Errorf("unknown entity kind %q", kind)
	}
	if err != nil {
		a.Audit.NotifyLoadFailed(kind, err)
	}
	return err
}

// LoadAll loads every store, continuing past failures. It returns the first
// failure.
func (a *App) LoadAll(ctx context.Context) error {
	var first error
	for _, kind := range entities.Kinds {
		if err := a.Reload(ctx, kind); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close stops background work.
func (a *App) Close() {
	a.Locks.Stop()
}

func loadDataset(cfg config.FixturesConfig) (*fixtures.Dataset, error) {
	if cfg.Dir == "" {
		return fixtures.Embedded()
	}
	if _, err := os.Stat(cfg.Dir); err != nil {
		return nil, errors.Wrap(err, "fixtures directory")
	}
	return fixtures.Load(os.DirFS(cfg.Dir))
}
