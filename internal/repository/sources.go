package repository

import (
	"context"

	"reeyo/internal/domain/entities"
)

//go:generate mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks

// OrderSource supplies the child records shown for a customer.
type OrderSource interface {
	OrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	AddressesByCustomer(ctx context.Context, customerID string) ([]entities.Address, error)
}

// EarningSource supplies the child records shown for a rider.
type EarningSource interface {
	EarningsByRider(ctx context.Context, riderID string) ([]entities.Earning, error)
}

// PayoutSource supplies the child records shown for a vendor.
type PayoutSource interface {
	PayoutsByVendor(ctx context.Context, vendorID string) ([]entities.Payout, error)
}
