package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	token string
	until time.Time
}

// LockManager hands out short-lived, TTL-bounded locks keyed by entity
// ("vendor:v1"). The mutation applier holds one for the duration of a
// simulated write so two writes to the same entity never interleave; writes
// to different entities proceed in parallel.
//
// An expired lock is treated as free, so a writer that never releases (for
// example a cancelled request) blocks others for at most the TTL. Every
// acquisition gets its own token and only that token releases it, so a
// writer whose lock already expired cannot free the next holder's.
type LockManager struct {
	mu     sync.Mutex
	leases map[string]lease
	now    func() time.Time

	stop chan struct{}
	once sync.Once
}

// LockOption configures a LockManager.
type LockOption func(*LockManager)

// WithClock replaces time.Now, letting tests expire locks without sleeping.
func WithClock(now func() time.Time) LockOption {
	return func(lm *LockManager) { lm.now = now }
}

// NewLockManager creates a LockManager and starts the goroutine that sweeps
// expired entries every sweep interval (one second if sweep <= 0).
//
// Go Learning Note — Background Goroutines:
// Every goroutine started by a constructor needs a way to stop; Stop closes
// the channel the sweeper selects on.
func NewLockManager(sweep time.Duration, opts ...LockOption) *LockManager {
	if sweep <= 0 {
		sweep = time.Second
	}
	lm := &LockManager{
		leases: make(map[string]lease),
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(lm)
	}
	go lm.run(sweep)
	return lm
}

// live must be called with mu held.
func (lm *LockManager) live(key string, at time.Time) (lease, bool) {
	l, ok := lm.leases[key]
	return l, ok && at.Before(l.until)
}

// AcquireLock takes key for ttl and returns the token that releases it. It
// returns ok=false if key is held and has not expired.
func (lm *LockManager) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	lm.mu.Lock()
	defer lm.mu.Unlock()

	at := lm.now()
	if _, held := lm.live(key, at); held {
		return "", false, nil
	}
	token := uuid.NewString()
	lm.leases[key] = lease{token: token, until: at.Add(ttl)}
	return token, true, nil
}

// ReleaseLock frees key before its TTL if token still owns it. Releasing a
// free key, or one re-acquired under another token, is a no-op.
func (lm *LockManager) ReleaseLock(_ context.Context, key, token string) error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.leases[key]; ok && l.token == token {
		delete(lm.leases, key)
	}
	return nil
}

// IsLocked reports whether key is currently held.
func (lm *LockManager) IsLocked(_ context.Context, key string) (bool, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	_, held := lm.live(key, lm.now())
	return held, nil
}

// Held returns how many unexpired locks exist right now.
func (lm *LockManager) Held() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	at, n := lm.now(), 0
	for key := range lm.leases {
		if _, held := lm.live(key, at); held {
			n++
		}
	}
	return n
}

// Sweep drops expired entries. The background goroutine calls it on every
// tick; it is exported for tests driven by WithClock.
func (lm *LockManager) Sweep() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	at := lm.now()
	for key := range lm.leases {
		if _, held := lm.live(key, at); !held {
			delete(lm.leases, key)
		}
	}
}

func (lm *LockManager) run(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			lm.Sweep()
		case <-lm.stop:
			return
		}
	}
}

// Stop ends the sweeper goroutine. It is safe to call more than once.
func (lm *LockManager) Stop() {
	lm.once.Do(func() { close(lm.stop) })
}
