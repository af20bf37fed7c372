// Package flakiness simulates the latency and failure modes of a remote
// authentication/ingestion backend. The session manager and catalog
// submission path run every "remote" effect through a Policy, so tests can
// swap in a deterministic one and the demo keeps its lifelike jitter.
package flakiness

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/beautyfind/beautyfind/config"
	"github.com/beautyfind/beautyfind/internal/errs"
)

// Policy draws artificial delays and injects transient failures.
type Policy struct {
	enabled     bool
	minDelay    time.Duration
	maxDelay    time.Duration
	failureRate float64
	cancelRate  float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPolicy builds a policy from configuration.
func NewPolicy(cfg config.FlakinessConfig) *Policy {
	minDelay := time.Duration(cfg.MinDelayMs) * time.Millisecond
	maxDelay := time.Duration(cfg.MaxDelayMs) * time.Millisecond
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Policy{
		enabled:     cfg.Enabled,
		minDelay:    minDelay,
		maxDelay:    maxDelay,
		failureRate: cfg.FailureRate,
		cancelRate:  cfg.CancelRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Disabled returns a policy with no delay and no failures, for tests.
func Disabled() *Policy {
	return NewPolicy(config.FlakinessConfig{})
}

// AlwaysFailing returns a policy that fails every round trip, for tests.
func AlwaysFailing() *Policy {
	return NewPolicy(config.FlakinessConfig{Enabled: true, FailureRate: 1, CancelRate: 1})
}

func (p *Policy) roll() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64()
}

func (p *Policy) delay() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	span := p.maxDelay - p.minDelay
	if span <= 0 {
		return p.minDelay
	}
	return p.minDelay + time.Duration(p.rng.Int63n(int64(span)))
}

func (p *Policy) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), errs.KindTransient, "request cancelled")
	case <-timer.C:
		return nil
	}
}

// Request models one generic backend round trip: a bounded random delay and
// a small chance of a transient network error.
func (p *Policy) Request(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	if err := p.sleep(ctx, p.delay()); err != nil {
		return err
	}
	if p.roll() < p.failureRate {
		return errs.Transient("Network error. Please try again.")
	}
	return nil
}

// OAuth models the consent popup of a social sign-in: a longer fixed wait
// and an independent chance that the user cancels.
func (p *Policy) OAuth(ctx context.Context, provider string) error {
	if !p.enabled {
		return nil
	}
	if err := p.sleep(ctx, p.maxDelay); err != nil {
		return err
	}
	if p.roll() < p.cancelRate {
		return errs.Transient("%s sign-in was cancelled", provider)
	}
	return nil
}
