// Package simulate stands in for the network between the dashboard and a
// real backend: it adds configurable latency to loads, detail fetches and
// writes, and can inject failures so error paths can be exercised.
package simulate

import (
	"context"
	"fmt"
	"time"

	"reeyo/internal/domain/entities"
)

// Latency holds the artificial delay applied to each class of operation.
type Latency struct {
	Load     time.Duration
	Detail   time.Duration
	Mutation time.Duration
}

// Simulator applies latency and fault injection. A nil *Simulator is valid
// and behaves as zero latency with no faults.
type Simulator struct {
	latency Latency
	faults  *FaultInjector
}

// New creates a Simulator. faults may be nil.
func New(latency Latency, faults *FaultInjector) *Simulator {
	return &Simulator{latency: latency, faults: faults}
}

// Faults exposes the injector so tests and operators can arm failures.
func (s *Simulator) Faults() *FaultInjector {
	if s == nil {
		return nil
	}
	return s.faults
}

// Load waits out the load latency and then checks for an injected fault.
func (s *Simulator) Load(ctx context.Context, kind entities.Kind) error {
	return s.run(ctx, s.delay(func(l Latency) time.Duration { return l.Load }), LoadOp(kind))
}

// Detail waits out the detail latency and then checks for an injected fault.
func (s *Simulator) Detail(ctx context.Context, kind entities.Kind) error {
	return s.run(ctx, s.delay(func(l Latency) time.Duration { return l.Detail }), DetailOp(kind))
}

// Mutation waits out the write latency and then checks for an injected fault.
func (s *Simulator) Mutation(ctx context.Context, kind entities.Kind) error {
	return s.run(ctx, s.delay(func(l Latency) time.Duration { return l.Mutation }), MutationOp(kind))
}

func (s *Simulator) delay(pick func(Latency) time.Duration) time.Duration {
	if s == nil {
		return 0
	}
	return pick(s.latency)
}

func (s *Simulator) run(ctx context.Context, d time.Duration, op string) error {
	if err := Sleep(ctx, d); err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	return s.faults.Check(op)
}

// Sleep blocks for d or until ctx is done, whichever comes first.
//
// Go Learning Note — time.NewTimer vs time.After:
// time.After leaks its timer until it fires. With a cancellable wait the
// timer may be abandoned early, so NewTimer + Stop releases it right away.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadOp, DetailOp and MutationOp name the fault injection points.
func LoadOp(kind entities.Kind) string     { return fmt.Sprintf("load.%s", kind) }
func DetailOp(kind entities.Kind) string   { return fmt.Sprintf("details.%s", kind) }
func MutationOp(kind entities.Kind) string { return fmt.Sprintf("mutate.%s", kind) }
