package services

import (
	"reeyo/internal/domain/entities"
	"reeyo/pkg/utils"
)

// CustomerColumns are the columns of the customer export.
var CustomerColumns = []utils.Column[entities.Customer]{
	{Key: "name", Value: func(c entities.Customer) string { return c.Name }},
	{Key: "phone", Value: func(c entities.Customer) string { return c.Phone }},
	{Key: "email", Value: func(c entities.Customer) string { return c.Email }},
	{Key: "total_orders", Value: func(c entities.Customer) string { return utils.FormatInt(c.TotalOrders) }},
	{Key: "status", Value: func(c entities.Customer) string { return string(c.Status) }},
	{Key: "city", Value: func(c entities.Customer) string { return c.City }},
	{Key: "loyalty_points", Value: func(c entities.Customer) string { return utils.FormatInt(c.LoyaltyPoints) }},
}

// RiderColumns are the columns of the rider export.
var RiderColumns = []utils.Column[entities.Rider]{
	{Key: "name", Value: func(r entities.Rider) string { return r.Name }},
	{Key: "phone", Value: func(r entities.Rider) string { return r.Phone }},
	{Key: "email", Value: func(r entities.Rider) string { return r.Email }},
	{Key: "vehicle_type", Value: func(r entities.Rider) string { return r.VehicleType }},
	{Key: "status", Value: func(r entities.Rider) string { return string(r.Status) }},
	{Key: "total_deliveries", Value: func(r entities.Rider) string { return utils.FormatInt(r.TotalDeliveries) }},
	{Key: "rating", Value: func(r entities.Rider) string { return utils.FormatFloat(r.Rating) }},
	{Key: "city", Value: func(r entities.Rider) string { return r.City }},
}

// VendorColumns are the columns of the vendor export.
var VendorColumns = []utils.Column[entities.Vendor]{
	{Key: "restaurant_name", Value: func(v entities.Vendor) string { return v.RestaurantName }},
	{Key: "contact_person", Value: func(v entities.Vendor) string { return v.ContactPerson }},
	{Key: "phone", Value: func(v entities.Vendor) string { return v.Phone }},
	{Key: "email", Value: func(v entities.Vendor) string { return v.Email }},
	{Key: "commission_rate", Value: func(v entities.Vendor) string { return utils.FormatFloat(v.CommissionRate) }},
	{Key: "city", Value: func(v entities.Vendor) string { return v.City }},
	{Key: "rating", Value: func(v entities.Vendor) string { return utils.FormatFloat(v.Rating) }},
	{Key: "status", Value: func(v entities.Vendor) string { return string(v.Status) }},
}
