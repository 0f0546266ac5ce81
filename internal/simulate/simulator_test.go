package simulate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reeyo/internal/domain/entities"
)

func TestNilSimulatorIsNoop(t *testing.T) {
	var sim *Simulator
	ctx := context.Background()

	assert.NoError(t, sim.Load(ctx, entities.KindCustomer))
	assert.NoError(t, sim.Detail(ctx, entities.KindRider))
	assert.NoError(t, sim.Mutation(ctx, entities.KindVendor))
	assert.Nil(t, sim.Faults())
}

func TestArmedFaultFailsExactlyNTimes(t *testing.T) {
	faults := NewFaultInjector(0, 1)
	sim := New(Latency{}, faults)
	ctx := context.Background()

	faults.Arm(MutationOp(entities.KindVendor), 2)

	for i := 0; i < 2; i++ {
		err := sim.Mutation(ctx, entities.KindVendor)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInjectedFailure))
		assert.Contains(t, err.Error(), "mutate.vendor")
	}
	assert.NoError(t, sim.Mutation(ctx, entities.KindVendor))
	assert.NoError(t, sim.Mutation(ctx, entities.KindCustomer))
}

func TestResetClearsArmedFaults(t *testing.T) {
	faults := NewFaultInjector(0, 1)
	faults.Arm(LoadOp(entities.KindRider), 5)
	faults.Reset()

	assert.NoError(t, faults.Check(LoadOp(entities.KindRider)))
}

func TestRateOneAlwaysFails(t *testing.T) {
	faults := NewFaultInjector(1, 7)
	for i := 0; i < 10; i++ {
		assert.ErrorIs(t, faults.Check("any.op"), ErrInjectedFailure)
	}
}

func TestSleepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleepWaitsForDuration(t *testing.T) {
	start := time.Now()
	require.NoError(t, Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
