package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatuses(t *testing.T) {
	assert.Equal(t, []string{"Active", "Blocked"}, KindCustomer.Statuses())
	assert.Equal(t, []string{"Online", "Offline"}, KindRider.Statuses())
	assert.Equal(t, []string{"Active", "Pending", "Suspended"}, KindVendor.Statuses())

	assert.True(t, KindVendor.HasStatus("Pending"))
	assert.False(t, KindCustomer.HasStatus("Pending"))
	assert.False(t, KindCustomer.HasStatus("active"), "statuses are case-sensitive")
	assert.Equal(t, "riders", KindRider.Plural())
}

func TestSetStatusRejectsValuesOutsideTheEnumeration(t *testing.T) {
	c := Customer{ID: "1", Status: CustomerStatusActive}

	err := c.SetStatus("Deleted")

	var validation *ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "status", validation.Field)
	assert.Contains(t, err.Error(), `"Active", "Blocked"`)
	assert.Equal(t, CustomerStatusActive, c.Status)

	require.NoError(t, c.SetStatus("Blocked"))
	assert.Equal(t, CustomerStatusBlocked, c.Status)
}

func TestToggleStatus(t *testing.T) {
	c := Customer{Status: CustomerStatusBlocked}
	c.ToggleStatus()
	assert.Equal(t, CustomerStatusActive, c.Status)
	c.ToggleStatus()
	assert.Equal(t, CustomerStatusBlocked, c.Status)

	r := Rider{Status: RiderStatusOffline}
	r.ToggleStatus()
	assert.Equal(t, RiderStatusOnline, r.Status)
	r.ToggleStatus()
	assert.Equal(t, RiderStatusOffline, r.Status)
}

func TestRiderFlags(t *testing.T) {
	r := Rider{LicenseVerified: true}

	require.NoError(t, r.SetFlag(RiderFlagVehicle, true))
	require.NoError(t, r.SetFlag(RiderFlagLicense, false))
	assert.False(t, r.LicenseVerified)
	assert.True(t, r.VehicleVerified)

	value, ok := r.Flag(RiderFlagVehicle)
	assert.True(t, ok)
	assert.True(t, value)

	_, ok = r.Flag("insurance_verified")
	assert.False(t, ok)

	var validation *ValidationError
	require.True(t, errors.As(r.SetFlag("insurance_verified", true), &validation))
	assert.Equal(t, "flag", validation.Field)
}

func TestCommissionRateBounds(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"fractional", 12.5, false},
		{"negative", -1, true},
		{"above hundred", 101, true},
		{"not a number", math.NaN(), true},
		{"infinite", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vendor{CommissionRate: 15}
			err := v.SetCommissionRate(tt.rate)
			if tt.wantErr {
				var validation *ValidationError
				require.True(t, errors.As(err, &validation))
				assert.Equal(t, "commission_rate", validation.Field)
				assert.Equal(t, 15.0, v.CommissionRate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rate, v.CommissionRate)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `vendor "v9" not found`, (&NotFoundError{Kind: KindVendor, ID: "v9"}).Error())

	cause := errors.New("connection refused")
	loadErr := &LoadError{Kind: KindRider, Err: cause}
	assert.Equal(t, "load riders: connection refused", loadErr.Error())
	assert.ErrorIs(t, loadErr, cause)
}

func TestCloneCopiesVendorOperatingHours(t *testing.T) {
	v := Vendor{ID: "v1", OperatingHours: map[string]string{"mon": "08:00-22:00"}}

	c := Clone(v)
	c.OperatingHours["mon"] = "closed"

	assert.Equal(t, "08:00-22:00", v.OperatingHours["mon"])
	assert.Nil(t, Clone(Vendor{}).OperatingHours)

	customer := Customer{ID: "1", Status: CustomerStatusActive}
	assert.Equal(t, customer, Clone(customer))
}
