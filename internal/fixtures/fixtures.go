// Package fixtures holds the static dataset that stands in for the backend:
// the customers, riders and vendors shown on the management screens and the
// child records fetched for their detail views. The YAML files under data/
// are embedded in the binary; a directory with the same file names can be
// used instead.
package fixtures

import (
	"embed"
	"io/fs"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"reeyo/internal/domain/entities"
)

//go:embed data/*.yaml
var embedded embed.FS

// Dataset is a fully decoded and validated fixture set.
type Dataset struct {
	Customers []entities.Customer
	Riders    []entities.Rider
	Vendors   []entities.Vendor
	Orders    []entities.Order
	Addresses []entities.Address
	Earnings  []entities.Earning
	Payouts   []entities.Payout
}

// Embedded decodes the fixture set compiled into the binary.
func Embedded() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "fixtures: open embedded data")
	}
	return Load(sub)
}

// Load decodes the fixture files found at the root of fsys.
func Load(fsys fs.FS) (*Dataset, error) {
	var (
		customers []customerRecord
		riders    []riderRecord
		vendors   []vendorRecord
		orders    orderFile
		earnings  []earningRecord
		payouts   []payoutRecord
	)
	files := []struct {
		name string
		out  any
	}{
		{"customers.yaml", &customers},
		{"riders.yaml", &riders},
		{"vendors.yaml", &vendors},
		{"orders.yaml", &orders},
		{"earnings.yaml", &earnings},
		{"payouts.yaml", &payouts},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.out); err != nil {
			return nil, err
		}
	}

	ds := &Dataset{}
	for _, r := range customers {
		c, err := r.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "fixtures: customers.yaml record %q", r.ID)
		}
		ds.Customers = append(ds.Customers, c)
	}
	for _, r := range riders {
		rd, err := r.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "fixtures: riders.yaml record %q", r.ID)
		}
		ds.Riders = append(ds.Riders, rd)
	}
	for _, r := range vendors {
		v, err := r.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "fixtures: vendors.yaml record %q", r.ID)
		}
		ds.Vendors = append(ds.Vendors, v)
	}
	for _, r := range orders.Orders {
		o, err := r.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "fixtures: orders.yaml order %q", r.ID)
		}
		ds.Orders = append(ds.Orders, o)
	}
	for _, r := range orders.Addresses {
		ds.Addresses = append(ds.Addresses, r.entity())
	}
	for _, r := range earnings {
		e, err := r.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "fixtures: earnings.yaml record %q", r.ID)
		}
		ds.Earnings = append(ds.Earnings, e)
	}
	for _, r := range payouts {
		p, err := r.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "fixtures: payouts.yaml record %q", r.ID)
		}
		ds.Payouts = append(ds.Payouts, p)
	}
	return ds, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return errors.Wrapf(err, "fixtures: open %s", name)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return errors.Wrapf(err, "fixtures: decode %s", name)
	}
	return nil
}

// Fixture timestamps are either full RFC 3339 instants or bare dates.
func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errors.Errorf("created_at %q is neither RFC 3339 nor a date", raw)
	}
	return t, nil
}
