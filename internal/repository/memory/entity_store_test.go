package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reeyo/internal/domain/entities"
	"reeyo/internal/repository"
)

func fixtureCustomers() []entities.Customer {
	return []entities.Customer{
		{ID: "1", Name: "Ama Manko", Email: "ama.manko@example.com", Phone: "677001122", Status: entities.CustomerStatusActive, CreatedAt: time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "4", Name: "Koffi Blaise", Email: "koffi.blaise@example.com", Phone: "688990011", Status: entities.CustomerStatusBlocked, CreatedAt: time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)},
	}
}

func staticSource(items []entities.Customer) repository.EntitySource[entities.Customer] {
	return repository.EntitySourceFunc[entities.Customer](func(ctx context.Context) ([]entities.Customer, error) {
		return append([]entities.Customer(nil), items...), nil
	})
}

func setupCustomerStore(t *testing.T) *EntityStore[entities.Customer] {
	t.Helper()
	store := NewEntityStore(entities.KindCustomer, staticSource(fixtureCustomers()))
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestEntityStore_LoadAndList(t *testing.T) {
	store := setupCustomerStore(t)

	items := store.List(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "4", items[1].ID)
	assert.False(t, store.LoadedAt().IsZero())
}

func TestEntityStore_ListReturnsCopies(t *testing.T) {
	store := setupCustomerStore(t)

	items := store.List(context.Background())
	items[0].Status = entities.CustomerStatusBlocked

	got, err := store.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, entities.CustomerStatusActive, got.Status)
}

func TestEntityStore_LoadFailureKeepsPreviousContents(t *testing.T) {
	calls := 0
	source := repository.EntitySourceFunc[entities.Customer](func(ctx context.Context) ([]entities.Customer, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("backend unreachable")
		}
		return fixtureCustomers(), nil
	})
	store := NewEntityStore[entities.Customer](entities.KindCustomer, source)
	ctx := context.Background()

	require.NoError(t, store.Load(ctx))
	err := store.Load(ctx)

	var loadErr *entities.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, entities.KindCustomer, loadErr.Kind)
	assert.Equal(t, 2, store.Len())
}

func TestEntityStore_FirstLoadFailureLeavesStoreEmpty(t *testing.T) {
	source := repository.EntitySourceFunc[entities.Customer](func(ctx context.Context) ([]entities.Customer, error) {
		return nil, errors.New("backend unreachable")
	})
	store := NewEntityStore[entities.Customer](entities.KindCustomer, source)

	err := store.Load(context.Background())

	var loadErr *entities.LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.List(context.Background()))
}

func TestEntityStore_LoadRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name  string
		items []entities.Customer
	}{
		{"duplicate id", []entities.Customer{{ID: "1", Status: "Active"}, {ID: "1", Status: "Active"}}},
		{"missing id", []entities.Customer{{Status: "Active"}}},
		{"status outside enum", []entities.Customer{{ID: "1", Status: "Deleted"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewEntityStore(entities.KindCustomer, staticSource(tt.items))
			var loadErr *entities.LoadError
			assert.ErrorAs(t, store.Load(context.Background()), &loadErr)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestEntityStore_GetUnknownID(t *testing.T) {
	store := setupCustomerStore(t)

	_, err := store.Get(context.Background(), "99")

	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "99", notFound.ID)
}

func TestEntityStore_UpdateCommitsAndRunsHooks(t *testing.T) {
	store := setupCustomerStore(t)
	var hooked []entities.Customer

	updated, err := store.Update(context.Background(), "1", func(c *entities.Customer) error {
		return c.SetStatus("Blocked")
	}, func(c entities.Customer) { hooked = append(hooked, c) })

	require.NoError(t, err)
	assert.Equal(t, entities.CustomerStatusBlocked, updated.Status)
	require.Len(t, hooked, 1)
	assert.Equal(t, entities.CustomerStatusBlocked, hooked[0].Status)

	got, _ := store.Get(context.Background(), "1")
	assert.Equal(t, entities.CustomerStatusBlocked, got.Status)
}

func TestEntityStore_UpdateIsAllOrNothing(t *testing.T) {
	store := setupCustomerStore(t)
	hookCalled := false

	_, err := store.Update(context.Background(), "1", func(c *entities.Customer) error {
		c.Name = "half written"
		return c.SetStatus("Deleted")
	}, func(entities.Customer) { hookCalled = true })

	var validation *entities.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.False(t, hookCalled)

	got, _ := store.Get(context.Background(), "1")
	assert.Equal(t, "Ama Manko", got.Name)
	assert.Equal(t, entities.CustomerStatusActive, got.Status)
}

func TestEntityStore_UpdateRejectsIdentifierChange(t *testing.T) {
	store := setupCustomerStore(t)

	_, err := store.Update(context.Background(), "1", func(c *entities.Customer) error {
		c.ID = "2"
		return nil
	})

	var validation *entities.ValidationError
	require.ErrorAs(t, err, &validation)
	_, err = store.Get(context.Background(), "1")
	assert.NoError(t, err)
}

func TestEntityStore_UpdateUnknownIDIsNotFound(t *testing.T) {
	store := setupCustomerStore(t)

	_, err := store.Update(context.Background(), "42", func(c *entities.Customer) error { return nil })

	var notFound *entities.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEntityStore_WithEntity(t *testing.T) {
	store := setupCustomerStore(t)

	store.WithEntity("4", func(c entities.Customer, ok bool) {
		assert.True(t, ok)
		assert.Equal(t, "Koffi Blaise", c.Name)
	})
	store.WithEntity("nope", func(c entities.Customer, ok bool) {
		assert.False(t, ok)
	})
}

func TestEntityStore_ConcurrentReadsAndUpdates(t *testing.T) {
	store := setupCustomerStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, "1", func(c *entities.Customer) error {
				c.ToggleStatus()
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			for _, c := range store.List(ctx) {
				assert.True(t, entities.KindCustomer.HasStatus(string(c.Status)))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 2, store.Len())
}

func TestEntityStore_VendorCopiesDoNotShareOperatingHours(t *testing.T) {
	source := repository.EntitySourceFunc[entities.Vendor](func(context.Context) ([]entities.Vendor, error) {
		return []entities.Vendor{{
			ID: "v1", RestaurantName: "Chez Wou", Status: entities.VendorStatusActive,
			OperatingHours: map[string]string{"mon": "08:00-22:00"},
		}}, nil
	})
	store := NewEntityStore(entities.KindVendor, source)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	got, err := store.Get(ctx, "v1")
	require.NoError(t, err)
	got.OperatingHours["mon"] = "closed"
	store.List(ctx)[0].OperatingHours["tue"] = "closed"
	store.WithEntity("v1", func(v entities.Vendor, _ bool) { v.OperatingHours["wed"] = "closed" })

	var committed entities.Vendor
	updated, err := store.Update(ctx, "v1", func(v *entities.Vendor) error {
		return v.SetCommissionRate(10)
	}, func(v entities.Vendor) { committed = v })
	require.NoError(t, err)
	updated.OperatingHours["thu"] = "closed"
	committed.OperatingHours["fri"] = "closed"

	fresh, err := store.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"mon": "08:00-22:00"}, fresh.OperatingHours)
}

func TestEntityStore_LoadHooksSeeNewContents(t *testing.T) {
	store := NewEntityStore(entities.KindCustomer, staticSource(fixtureCustomers()))

	var seen []string
	require.NoError(t, store.Load(context.Background(), func(items []entities.Customer) {
		for _, c := range items {
			seen = append(seen, c.ID)
		}
	}))

	assert.Equal(t, []string{"1", "4"}, seen)
}

func TestEntityStore_LoadHooksSkippedOnFailure(t *testing.T) {
	failing := repository.EntitySourceFunc[entities.Customer](func(context.Context) ([]entities.Customer, error) {
		return nil, errors.New("source down")
	})
	store := NewEntityStore(entities.KindCustomer, failing)

	called := false
	err := store.Load(context.Background(), func([]entities.Customer) { called = true })

	assert.Error(t, err)
	assert.False(t, called)
}
