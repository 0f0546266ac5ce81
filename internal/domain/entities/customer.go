package entities

import "time"

// CustomerStatus is the account state of a customer.
type CustomerStatus string

const (
	CustomerStatusActive  CustomerStatus = "Active"
	CustomerStatusBlocked CustomerStatus = "Blocked"
)

var customerStatuses = []CustomerStatus{CustomerStatusActive, CustomerStatusBlocked}

// ParseCustomerStatus validates a raw status string.
func ParseCustomerStatus(raw string) (CustomerStatus, error) {
	return parseStatus(raw, customerStatuses)
}

// Customer is a platform end user who places orders.
type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	TotalOrders   int            `json:"total_orders"`
	Status        CustomerStatus `json:"status"`
	City          string         `json:"city"`
	LoyaltyPoints int            `json:"loyalty_points"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (c Customer) EntityKind() Kind       { return KindCustomer }
func (c Customer) EntityID() string       { return c.ID }
func (c Customer) EntityStatus() string   { return string(c.Status) }
func (c Customer) DisplayName() string    { return c.Name }
func (c Customer) Created() time.Time     { return c.CreatedAt }
func (c Customer) SearchFields() []string { return []string{c.Name, c.Email, c.Phone} }

// SetStatus validates and applies a new account status.
func (c *Customer) SetStatus(status string) error {
	parsed, err := ParseCustomerStatus(status)
	if err != nil {
		return err
	}
	c.Status = parsed
	return nil
}

// ToggleStatus flips between Active and Blocked.
func (c *Customer) ToggleStatus() {
	if c.Status == CustomerStatusActive {
		c.Status = CustomerStatusBlocked
		return
	}
	c.Status = CustomerStatusActive
}
