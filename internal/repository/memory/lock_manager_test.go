package memory

import (
	"context"
	"testing"
	"time"
)

func TestLockManager_AcquireRelease(t *testing.T) {
	lm := NewLockManager(10 * time.Millisecond)
	defer lm.Stop()
	ctx := context.Background()

	token, ok, err := lm.AcquireLock(ctx, "vendor:v1", time.Second)
	if err != nil || !ok || token == "" {
		t.Fatalf("expected first acquire to succeed, got token=%q ok=%v err=%v", token, ok, err)
	}

	if _, ok, _ = lm.AcquireLock(ctx, "vendor:v1", time.Second); ok {
		t.Error("expected second acquire of held key to fail")
	}

	if _, ok, _ = lm.AcquireLock(ctx, "vendor:v2", time.Second); !ok {
		t.Error("expected a different key to be acquirable")
	}

	if err := lm.ReleaseLock(ctx, "vendor:v1", token); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if locked, _ := lm.IsLocked(ctx, "vendor:v1"); locked {
		t.Error("expected key to be free after release")
	}
}

func TestLockManager_ExpiredLockIsFree(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	lm := NewLockManager(time.Hour, WithClock(func() time.Time { return now }))
	defer lm.Stop()
	ctx := context.Background()

	lm.AcquireLock(ctx, "rider:101", 5*time.Second)
	if lm.Held() != 1 {
		t.Fatalf("expected one held lock, got %d", lm.Held())
	}

	now = now.Add(5 * time.Second)

	if locked, _ := lm.IsLocked(ctx, "rider:101"); locked {
		t.Error("expected expired lock to report unlocked")
	}
	if lm.Held() != 0 {
		t.Errorf("expected no held locks, got %d", lm.Held())
	}
	if _, ok, _ := lm.AcquireLock(ctx, "rider:101", time.Second); !ok {
		t.Error("expected expired lock to be re-acquirable")
	}
}

func TestLockManager_StaleReleaseKeepsNewHolder(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	lm := NewLockManager(time.Hour, WithClock(func() time.Time { return now }))
	defer lm.Stop()
	ctx := context.Background()

	first, _, _ := lm.AcquireLock(ctx, "vendor:v1", time.Second)
	now = now.Add(2 * time.Second)
	second, ok, _ := lm.AcquireLock(ctx, "vendor:v1", time.Minute)
	if !ok {
		t.Fatal("expected the expired lock to be taken over")
	}

	if err := lm.ReleaseLock(ctx, "vendor:v1", first); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if locked, _ := lm.IsLocked(ctx, "vendor:v1"); !locked {
		t.Fatal("a release with an expired token must not free the new holder")
	}

	lm.ReleaseLock(ctx, "vendor:v1", second)
	if locked, _ := lm.IsLocked(ctx, "vendor:v1"); locked {
		t.Error("expected the holder's own release to free the key")
	}
}

func TestLockManager_SweepDropsExpiredEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	lm := NewLockManager(time.Hour, WithClock(func() time.Time { return now }))
	defer lm.Stop()
	ctx := context.Background()

	lm.AcquireLock(ctx, "vendor:v1", time.Second)
	lm.AcquireLock(ctx, "vendor:v2", time.Minute)
	now = now.Add(2 * time.Second)
	lm.Sweep()

	lm.mu.Lock()
	_, v1 := lm.leases["vendor:v1"]
	_, v2 := lm.leases["vendor:v2"]
	lm.mu.Unlock()
	if v1 || !v2 {
		t.Errorf("expected only vendor:v2 to survive the sweep, got v1=%v v2=%v", v1, v2)
	}
}

func TestLockManager_CancelledContext(t *testing.T) {
	lm := NewLockManager(0)
	defer lm.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok, err := lm.AcquireLock(ctx, "customer:1", time.Second); ok || err == nil {
		t.Errorf("expected cancelled acquire to fail, got ok=%v err=%v", ok, err)
	}
}

func TestLockManager_StopIsIdempotent(t *testing.T) {
	lm := NewLockManager(0)
	lm.Stop()
	lm.Stop()
}
