package entities

import "time"

// RiderStatus is whether a delivery rider is connected to the platform.
//
// Go Learning Note — Typed String Enums:
// A named string type plus constants gives readable JSON and lets the compiler
// catch accidental mixing of, say, a RiderStatus with a VendorStatus.
type RiderStatus string

const (
	RiderStatusOnline  RiderStatus = "Online"
	RiderStatusOffline RiderStatus = "Offline"
)

var riderStatuses = []RiderStatus{RiderStatusOnline, RiderStatusOffline}

// ParseRiderStatus validates a raw status string.
func ParseRiderStatus(raw string) (RiderStatus, error) {
	return parseStatus(raw, riderStatuses)
}

// RiderAvailability is the dispatch state shown next to the status.
type RiderAvailability string

const (
	RiderAvailable    RiderAvailability = "Available"
	RiderOnDelivery   RiderAvailability = "On Delivery"
	RiderNotAvailable RiderAvailability = "Not Available"
)

// RiderFlag names one of the rider's document verification flags.
type RiderFlag string

const (
	RiderFlagLicense RiderFlag = "license_verified"
	RiderFlagVehicle RiderFlag = "vehicle_verified"
)

// Rider is a delivery partner.
type Rider struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	VehicleType     string            `json:"vehicle_type"`
	Status          RiderStatus       `json:"status"`
	Availability    RiderAvailability `json:"availability"`
	TotalDeliveries int               `json:"total_deliveries"`
	Rating          float64           `json:"rating"`
	LicenseVerified bool              `json:"license_verified"`
	VehicleVerified bool              `json:"vehicle_verified"`
	City            string            `json:"city"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (r Rider) EntityKind() Kind       { return KindRider }
func (r Rider) EntityID() string       { return r.ID }
func (r Rider) EntityStatus() string   { return string(r.Status) }
func (r Rider) DisplayName() string    { return r.Name }
func (r Rider) Created() time.Time     { return r.CreatedAt }
func (r Rider) SearchFields() []string { return []string{r.Name, r.Email, r.Phone} }

// SetStatus validates and applies a new connection status.
func (r *Rider) SetStatus(status string) error {
	parsed, err := ParseRiderStatus(status)
	if err != nil {
		return err
	}
	r.Status = parsed
	return nil
}

// ToggleStatus flips between Online and Offline.
func (r *Rider) ToggleStatus() {
	if r.Status == RiderStatusOnline {
		r.Status = RiderStatusOffline
		return
	}
	r.Status = RiderStatusOnline
}

// SetFlag sets one verification flag. Unknown flag names are rejected.
func (r *Rider) SetFlag(flag RiderFlag, value bool) error {
	switch flag {
	case RiderFlagLicense:
		r.LicenseVerified = value
	case RiderFlagVehicle:
		r.VehicleVerified = value
	default:
		return &ValidationError{Field: "flag", Reason: "must be one of " + joinQuoted([]string{string(RiderFlagLicense), string(RiderFlagVehicle)})}
	}
	return nil
}

// Flag returns the current value of a verification flag.
func (r Rider) Flag(flag RiderFlag) (bool, bool) {
	switch flag {
	case RiderFlagLicense:
		return r.LicenseVerified, true
	case RiderFlagVehicle:
		return r.VehicleVerified, true
	}
	return false, false
}
