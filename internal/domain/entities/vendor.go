package entities

import (
	"fmt"
	"maps"
	"math"
	"time"
)

// VendorStatus is the onboarding/operating state of a restaurant.
type VendorStatus string

const (
	VendorStatusActive    VendorStatus = "Active"
	VendorStatusPending   VendorStatus = "Pending"
	VendorStatusSuspended VendorStatus = "Suspended"
)

var vendorStatuses = []VendorStatus{VendorStatusActive, VendorStatusPending, VendorStatusSuspended}

// ParseVendorStatus validates a raw status string.
func ParseVendorStatus(raw string) (VendorStatus, error) {
	return parseStatus(raw, vendorStatuses)
}

// Commission rate bounds, in percent.
const (
	MinCommissionRate = 0.0
	MaxCommissionRate = 100.0
)

// Vendor is a restaurant selling through the platform.
type Vendor struct {
	ID             string            `json:"id"`
	RestaurantName string            `json:"restaurant_name"`
	ContactPerson  string            `json:"contact_person"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	CommissionRate float64           `json:"commission_rate"`
	City           string            `json:"city"`
	Rating         float64           `json:"rating"`
	Status         VendorStatus      `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	OperatingHours map[string]string `json:"operating_hours,omitempty"`
}

func (v Vendor) EntityKind() Kind     { return KindVendor }
func (v Vendor) EntityID() string     { return v.ID }
func (v Vendor) EntityStatus() string { return string(v.Status) }
func (v Vendor) DisplayName() string  { return v.RestaurantName }
func (v Vendor) Created() time.Time   { return v.CreatedAt }
func (v Vendor) SearchFields() []string {
	return []string{v.RestaurantName, v.ContactPerson, v.Email}
}

// Clone copies the vendor along with its operating hours.
func (v Vendor) Clone() Vendor {
	v.OperatingHours = maps.Clone(v.OperatingHours)
	return v
}

// SetStatus validates and applies a new vendor status.
func (v *Vendor) SetStatus(status string) error {
	parsed, err := ParseVendorStatus(status)
	if err != nil {
		return err
	}
	v.Status = parsed
	return nil
}

// ValidateCommissionRate checks 0 <= rate <= 100.
func ValidateCommissionRate(rate float64) error {
	if math.IsNaN(rate) || rate < MinCommissionRate || rate > MaxCommissionRate {
		return &ValidationError{
			Field:  "commission_rate",
			Reason: fmt.Sprintf("must be between %g and %g", MinCommissionRate, MaxCommissionRate),
		}
	}
	return nil
}

// SetCommissionRate validates and applies a new commission rate.
func (v *Vendor) SetCommissionRate(rate float64) error {
	if err := ValidateCommissionRate(rate); err != nil {
		return err
	}
	v.CommissionRate = rate
	return nil
}
