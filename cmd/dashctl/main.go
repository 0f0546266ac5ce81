// Command dashctl queries and exports the dashboard collections from the
// command line, using the same stores and services as the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"reeyo/internal/app"
	"reeyo/internal/config"
	"reeyo/internal/domain/entities"
	"reeyo/internal/services"
)

type cli struct {
	Fixtures string `type:"path" help:"Directory of fixture YAML files replacing the embedded set."`
	Fast     bool   `help:"Disable simulated latency."`

	Query  queryCmd  `cmd:"" help:"Print the filtered, sorted records of a collection."`
	Export exportCmd `cmd:"" help:"Write a collection as CSV."`
	Stats  statsCmd  `cmd:"" help:"Print status counts for every collection."`
}

type ListFlags struct {
	Kind   string `arg:"" enum:"customers,riders,vendors" help:"Collection: customers, riders or vendors."`
	Search string `short:"s" help:"Case-insensitive substring matched against names, email and phone."`
	Status string `default:"All" help:"Status filter, or All."`
	Sort   string `default:"created_at" enum:"created_at,name,id" help:"Sort field."`
	Order  string `help:"asc or desc (default: desc for created_at, asc otherwise)."`
}

func (f ListFlags) query() (services.Filter, services.Ordering, error) {
	ordering, err := services.ParseOrdering(f.Sort, f.Order)
	if err != nil {
		return services.Filter{}, services.Ordering{}, err
	}
	return services.Filter{Search: f.Search, Status: f.Status}, ordering, nil
}

type queryCmd struct {
	ListFlags `embed:""`
	Format string `default:"json" enum:"json,yaml" help:"Output format."`
}

type exportCmd struct {
	ListFlags `embed:""`
	Output string `short:"o" type:"path" help:"Output file (defaults to reeyo_<kind>.csv, - for stdout)."`
}

type statsCmd struct{}

func main() {
	var root cli
	ctx := kong.Parse(&root,
		kong.Name("dashctl"),
		kong.Description("Query and export the Reeyo admin collections."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&root))
}

func (c *cli) build(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.Fixtures != "" {
		cfg.Fixtures.Dir = c.Fixtures
	}
	if c.Fast {
		cfg.Simulation.LoadLatency = 0
		cfg.Simulation.DetailLatency = 0
		cfg.Simulation.MutationLatency = 0
	}

	a, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := a.LoadAll(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (cmd *queryCmd) Run(root *cli) error {
	ctx := context.Background()
	filter, ordering, err := cmd.query()
	if err != nil {
		return err
	}
	a, err := root.build(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	var items any
	switch cmd.Kind {
	case entities.KindCustomer.Plural():
		items, err = a.Customers.Query.Query(ctx, filter, ordering)
	case entities.KindRider.Plural():
		items, err = a.Riders.Query.Query(ctx, filter, ordering)
	case entities.KindVendor.Plural():
		items, err = a.Vendors.Query.Query(ctx, filter, ordering)
	}
	if err != nil {
		return err
	}
	return encode(os.Stdout, cmd.Format, items)
}

func (cmd *exportCmd) Run(root *cli) error {
	ctx := context.Background()
	filter, ordering, err := cmd.query()
	if err != nil {
		return err
	}
	a, err := root.build(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	type exporter interface {
		Filename() string
		Export(ctx context.Context, w io.Writer, f services.Filter, o services.Ordering) (int, error)
	}
	var exp exporter
	switch cmd.Kind {
	case entities.KindCustomer.Plural():
		exp = a.Customers.Export
	case entities.KindRider.Plural():
		exp = a.Riders.Export
	case entities.KindVendor.Plural():
		exp = a.Vendors.Export
	}

	path := cmd.Output
	if path == "" {
		path = exp.Filename()
	}
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("dashctl: create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	n, err := exp.Export(ctx, w, filter, ordering)
	if err != nil {
		return err
	}
	if path != "-" {
		fmt.Fprintf(os.Stderr, "wrote %d %s to %s\n", n, cmd.Kind, path)
	}
	return nil
}

func (cmd *statsCmd) Run(root *cli) error {
	ctx := context.Background()
	a, err := root.build(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	counters := []services.StatusCounter{a.Customers.Query, a.Riders.Query, a.Vendors.Query}
	for _, counter := range counters {
		counts := counter.StatusCounts(ctx)
		statuses := make([]string, 0, len(counts))
		for status := range counts {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)

		fmt.Fprintf(os.Stdout, "%s:\n", counter.Kind().Plural())
		for _, status := range statuses {
			fmt.Fprintf(os.Stdout, "  %-10s %d\n", status, counts[status])
		}
	}
	return nil
}

func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
