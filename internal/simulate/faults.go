package simulate

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
)

// ErrInjectedFailure is returned (wrapped with the operation name) whenever
// the injector decides an operation should fail.
var ErrInjectedFailure = errors.New("simulated backend failure")

// FaultInjector decides whether a simulated operation fails. Failures can be
// armed for a specific operation a fixed number of times, or drawn at random
// with a configured rate. A nil *FaultInjector never fails.
type FaultInjector struct {
	mu    sync.Mutex
	rate  float64
	rng   *rand.Rand
	armed map[string]int
}

// NewFaultInjector creates an injector failing each operation with
// probability rate (0 disables random failures).
func NewFaultInjector(rate float64, seed int64) *FaultInjector {
	return &FaultInjector{
		rate:  rate,
		rng:   rand.New(rand.NewSource(seed)),
		armed: make(map[string]int),
	}
}

// Arm makes the next n calls for op fail.
func (f *FaultInjector) Arm(op string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 {
		delete(f.armed, op)
		return
	}
	f.armed[op] = n
}

// Reset clears every armed failure.
func (f *FaultInjector) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.armed = make(map[string]int)
}

// Check returns a wrapped ErrInjectedFailure if op should fail now.
func (f *FaultInjector) Check(op string) error {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if n, ok := f.armed[op]; ok {
		if n <= 1 {
			delete(f.armed, op)
		} else {
			f.armed[op] = n - 1
		}
		return errors.Wrap(ErrInjectedFailure, op)
	}
	if f.rate > 0 && f.rng.Float64() < f.rate {
		return errors.Wrap(ErrInjectedFailure, op)
	}
	return nil
}
