// Package entities defines the records managed by the admin dashboard:
// customers, riders and vendors, plus the child records (orders, addresses,
// earnings, payouts) fetched on demand for a selected entity.
//
// Entities are plain value types. Stores hand out copies made with Clone, so
// a caller holding a Customer or a Vendor (whose operating hours are a map)
// can never observe or cause a half-applied mutation.
package entities

import (
	"slices"
	"time"
)

// Kind names one entity collection.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindRider    Kind = "rider"
	KindVendor   Kind = "vendor"
)

// Kinds lists every managed collection in display order.
var Kinds = []Kind{KindCustomer, KindRider, KindVendor}

// Plural returns the collection name used in URLs and file names.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Statuses returns the fixed status enumeration for the kind.
func (k Kind) Statuses() []string {
	switch k {
	case KindCustomer:
		return stringsOf(customerStatuses)
	case KindRider:
		return stringsOf(riderStatuses)
	case KindVendor:
		return stringsOf(vendorStatuses)
	}
	return nil
}

// HasStatus reports whether status belongs to the kind's enumeration.
func (k Kind) HasStatus(status string) bool {
	return slices.Contains(k.Statuses(), status)
}

// Entity is implemented by every record held in an entity store.
//
// Go Learning Note — Value Receivers:
// All Entity methods use value receivers, so both Customer and *Customer
// satisfy the interface. Mutating methods (SetStatus and friends) use pointer
// receivers and are only reachable through the StatusMutable constraint.
type Entity interface {
	EntityKind() Kind
	EntityID() string
	EntityStatus() string
	// DisplayName is the primary human label (name or restaurant name).
	DisplayName() string
	Created() time.Time
	// SearchFields are matched case-insensitively by free-text search.
	SearchFields() []string
}

// StatusMutable is the pointer constraint used by generic mutation code:
// PT is *T and knows how to validate and apply a status change.
type StatusMutable[T any] interface {
	*T
	Entity
	SetStatus(status string) error
}

// Cloner is implemented by entities with reference-typed fields that a plain
// assignment would share.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns a copy of e that shares no mutable state with it.
func Clone[T Entity](e T) T {
	if c, ok := any(e).(Cloner[T]); ok {
		return c.Clone()
	}
	return e
}

func stringsOf[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// parseStatus validates raw against allowed and returns the typed value.
func parseStatus[S ~string](raw string, allowed []S) (S, error) {
	for _, s := range allowed {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: "must be one of " + joinQuoted(stringsOf(allowed))}
}
