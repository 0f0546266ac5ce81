package entities

import "time"

// Order is a past order placed by a customer.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	VendorName string    `json:"vendor_name"`
	OrderTotal int64     `json:"order_total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Address is a saved delivery address of a customer.
type Address struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	IsDefault   bool   `json:"is_default"`
}

// Earning is the rider's share of one delivery.
type Earning struct {
	ID         string    `json:"id"`
	RiderID    string    `json:"rider_id"`
	DeliveryID string    `json:"delivery_id"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// PayoutStatus is the settlement state of a vendor payout.
type PayoutStatus string

const (
	PayoutCompleted PayoutStatus = "Completed"
	PayoutPending   PayoutStatus = "Pending"
)

// Payout is a settlement transferred to a vendor.
type Payout struct {
	ID        string       `json:"id"`
	VendorID  string       `json:"vendor_id"`
	Amount    int64        `json:"amount"`
	Status    PayoutStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// CustomerDetails is the drill-down bundle for one customer.
type CustomerDetails struct {
	Orders    []Order   `json:"orders"`
	Addresses []Address `json:"addresses"`
}

// RiderDetails is the drill-down bundle for one rider.
type RiderDetails struct {
	Earnings      []Earning `json:"earnings"`
	TotalEarnings int64     `json:"total_earnings"`
}

// VendorDetails is the drill-down bundle for one vendor. Payouts are newest
// first.
type VendorDetails struct {
	Payouts      []Payout `json:"payouts"`
	TotalPayouts int64    `json:"total_payouts"`
}
