package fixtures

import (
	"maps"

	"github.com/pkg/errors"

	"reeyo/internal/domain/entities"
)

type customerRecord struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Phone         string `yaml:"phone"`
	Email         string `yaml:"email"`
	TotalOrders   int    `yaml:"total_orders"`
	Status        string `yaml:"status"`
	City          string `yaml:"city"`
	LoyaltyPoints int    `yaml:"loyalty_points"`
	CreatedAt     string `yaml:"created_at"`
}

func (r customerRecord) entity() (entities.Customer, error) {
	status, err := entities.ParseCustomerStatus(r.Status)
	if err != nil {
		return entities.Customer{}, err
	}
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		TotalOrders:   r.TotalOrders,
		Status:        status,
		City:          r.City,
		LoyaltyPoints: r.LoyaltyPoints,
		CreatedAt:     created,
	}, nil
}

type riderRecord struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Phone           string  `yaml:"phone"`
	Email           string  `yaml:"email"`
	VehicleType     string  `yaml:"vehicle_type"`
	Status          string  `yaml:"status"`
	Availability    string  `yaml:"availability"`
	TotalDeliveries int     `yaml:"total_deliveries"`
	Rating          float64 `yaml:"rating"`
	LicenseVerified bool    `yaml:"license_verified"`
	VehicleVerified bool    `yaml:"vehicle_verified"`
	City            string  `yaml:"city"`
	CreatedAt       string  `yaml:"created_at"`
}

func (r riderRecord) entity() (entities.Rider, error) {
	status, err := entities.ParseRiderStatus(r.Status)
	if err != nil {
		return entities.Rider{}, err
	}
	switch entities.RiderAvailability(r.Availability) {
	case entities.RiderAvailable, entities.RiderOnDelivery, entities.RiderNotAvailable:
	default:
		return entities.Rider{}, errors.Errorf("availability %q is not recognised", r.Availability)
	}
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entities.Rider{}, err
	}
	return entities.Rider{
		ID:              r.ID,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		VehicleType:     r.VehicleType,
		Status:          status,
		Availability:    entities.RiderAvailability(r.Availability),
		TotalDeliveries: r.TotalDeliveries,
		Rating:          r.Rating,
		LicenseVerified: r.LicenseVerified,
		VehicleVerified: r.VehicleVerified,
		City:            r.City,
		CreatedAt:       created,
	}, nil
}

type vendorRecord struct {
	ID             string            `yaml:"id"`
	RestaurantName string            `yaml:"restaurant_name"`
	ContactPerson  string            `yaml:"contact_person"`
	Phone          string            `yaml:"phone"`
	Email          string            `yaml:"email"`
	CommissionRate float64           `yaml:"commission_rate"`
	City           string            `yaml:"city"`
	Rating         float64           `yaml:"rating"`
	Status         string            `yaml:"status"`
	CreatedAt      string            `yaml:"created_at"`
	OperatingHours map[string]string `yaml:"operating_hours"`
}

func (r vendorRecord) entity() (entities.Vendor, error) {
	status, err := entities.ParseVendorStatus(r.Status)
	if err != nil {
		return entities.Vendor{}, err
	}
	if err := entities.ValidateCommissionRate(r.CommissionRate); err != nil {
		return entities.Vendor{}, err
	}
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entities.Vendor{}, err
	}
	return entities.Vendor{
		ID:             r.ID,
		RestaurantName: r.RestaurantName,
		ContactPerson:  r.ContactPerson,
		Phone:          r.Phone,
		Email:          r.Email,
		CommissionRate: r.CommissionRate,
		City:           r.City,
		Rating:         r.Rating,
		Status:         status,
		CreatedAt:      created,
		OperatingHours: maps.Clone(r.OperatingHours),
	}, nil
}

type orderFile struct {
	Orders    []orderRecord   `yaml:"orders"`
	Addresses []addressRecord `yaml:"addresses"`
}

type orderRecord struct {
	ID         string `yaml:"id"`
	CustomerID string `yaml:"customer_id"`
	CreatedAt  string `yaml:"created_at"`
	VendorName string `yaml:"vendor_name"`
	OrderTotal int64  `yaml:"order_total"`
	Status     string `yaml:"status"`
}

func (r orderRecord) entity() (entities.Order, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entities.Order{}, err
	}
	return entities.Order{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		VendorName: r.VendorName,
		OrderTotal: r.OrderTotal,
		Status:     r.Status,
		CreatedAt:  created,
	}, nil
}

type addressRecord struct {
	ID          string `yaml:"id"`
	CustomerID  string `yaml:"customer_id"`
	AddressLine string `yaml:"address_line"`
	City        string `yaml:"city"`
	IsDefault   bool   `yaml:"is_default"`
}

func (r addressRecord) entity() entities.Address {
	return entities.Address{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		AddressLine: r.AddressLine,
		City:        r.City,
		IsDefault:   r.IsDefault,
	}
}

type earningRecord struct {
	ID         string `yaml:"id"`
	RiderID    string `yaml:"rider_id"`
	DeliveryID string `yaml:"delivery_id"`
	Amount     int64  `yaml:"amount"`
	CreatedAt  string `yaml:"created_at"`
}

func (r earningRecord) entity() (entities.Earning, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entities.Earning{}, err
	}
	return entities.Earning{
		ID:         r.ID,
		RiderID:    r.RiderID,
		DeliveryID: r.DeliveryID,
		Amount:     r.Amount,
		CreatedAt:  created,
	}, nil
}

type payoutRecord struct {
	ID        string `yaml:"id"`
	VendorID  string `yaml:"vendor_id"`
	Amount    int64  `yaml:"amount"`
	Status    string `yaml:"status"`
	CreatedAt string `yaml:"created_at"`
}

func (r payoutRecord) entity() (entities.Payout, error) {
	switch entities.PayoutStatus(r.Status) {
	case entities.PayoutCompleted, entities.PayoutPending:
	default:
		return entities.Payout{}, errors.Errorf("payout status %q is not recognised", r.Status)
	}
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entities.Payout{}, err
	}
	return entities.Payout{
		ID:        r.ID,
		VendorID:  r.VendorID,
		Amount:    r.Amount,
		Status:    entities.PayoutStatus(r.Status),
		CreatedAt: created,
	}, nil
}
