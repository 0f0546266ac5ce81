package fixtures

import (
	"context"
	"maps"

	"reeyo/internal/domain/entities"
	"reeyo/internal/repository"
	"reeyo/internal/simulate"
)

// Provider serves a Dataset through the repository source interfaces. Entity
// loads go through the simulator (latency + injected failures); child
// lookups are plain filters, the detail resolver applies their latency.
//
// Every call returns fresh slices, so stores never alias the dataset.
type Provider struct {
	data *Dataset
	sim  *simulate.Simulator
}

// NewProvider wraps data. sim may be nil.
func NewProvider(data *Dataset, sim *simulate.Simulator) *Provider {
	return &Provider{data: data, sim: sim}
}

// Customers returns the customer collection source.
func (p *Provider) Customers() repository.EntitySource[entities.Customer] {
	return repository.EntitySourceFunc[entities.Customer](func(ctx context.Context) ([]entities.Customer, error) {
		if err := p.sim.Load(ctx, entities.KindCustomer); err != nil {
			return nil, err
		}
		return append([]entities.Customer(nil), p.data.Customers...), nil
	})
}

// Riders returns the rider collection source.
func (p *Provider) Riders() repository.EntitySource[entities.Rider] {
	return repository.EntitySourceFunc[entities.Rider](func(ctx context.Context) ([]entities.Rider, error) {
		if err := p.sim.Load(ctx, entities.KindRider); err != nil {
			return nil, err
		}
		return append([]entities.Rider(nil), p.data.Riders...), nil
	})
}

// Vendors returns the vendor collection source.
func (p *Provider) Vendors() repository.EntitySource[entities.Vendor] {
	return repository.EntitySourceFunc[entities.Vendor](func(ctx context.Context) ([]entities.Vendor, error) {
		if err := p.sim.Load(ctx, entities.KindVendor); err != nil {
			return nil, err
		}
		out := make([]entities.Vendor, len(p.data.Vendors))
		for i, v := range p.data.Vendors {
			v.OperatingHours = maps.Clone(v.OperatingHours)
			out[i] = v
		}
		return out, nil
	})
}

func (p *Provider) OrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	return filter(p.data.Orders, func(o entities.Order) bool { return o.CustomerID == customerID }), nil
}

func (p *Provider) AddressesByCustomer(ctx context.Context, customerID string) ([]entities.Address, error) {
	return filter(p.data.Addresses, func(a entities.Address) bool { return a.CustomerID == customerID }), nil
}

func (p *Provider) EarningsByRider(ctx context.Context, riderID string) ([]entities.Earning, error) {
	return filter(p.data.Earnings, func(e entities.Earning) bool { return e.RiderID == riderID }), nil
}

func (p *Provider) PayoutsByVendor(ctx context.Context, vendorID string) ([]entities.Payout, error) {
	return filter(p.data.Payouts, func(po entities.Payout) bool { return po.VendorID == vendorID }), nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

var (
	_ repository.OrderSource   = (*Provider)(nil)
	_ repository.EarningSource = (*Provider)(nil)
	_ repository.PayoutSource  = (*Provider)(nil)
)
