package flakiness

import (
	"context"
	"testing"
	"time"

	"github.com/beautyfind/beautyfind/config"
	"github.com/beautyfind/beautyfind/internal/errs"
)

func TestDisabledPolicyNeverFails(t *testing.T) {
	p := Disabled()
	for i := 0; i < 100; i++ {
		if err := p.Request(context.Background()); err != nil {
			t.Fatalf("disabled Request failed: %v", err)
		}
		if err := p.OAuth(context.Background(), "google"); err != nil {
			t.Fatalf("disabled OAuth failed: %v", err)
		}
	}
}

func TestAlwaysFailingPolicy(t *testing.T) {
	p := AlwaysFailing()

	err := p.Request(context.Background())
	if !errs.IsKind(err, errs.KindTransient) {
		t.Errorf("Request err = %v, want transient", err)
	}

	err = p.OAuth(context.Background(), "google")
	if !errs.IsKind(err, errs.KindTransient) {
		t.Errorf("OAuth err = %v, want transient", err)
	}
}

func TestRequestHonoursCancelledContext(t *testing.T) {
	p := NewPolicy(config.FlakinessConfig{Enabled: true, MinDelayMs: 5000, MaxDelayMs: 10000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := p.Request(ctx)
	if !errs.IsKind(err, errs.KindTransient) {
		t.Errorf("err = %v, want transient wrap of context error", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("cancelled request still waited %v", elapsed)
	}
}

func TestDelayStaysWithinBounds(t *testing.T) {
	p := NewPolicy(config.FlakinessConfig{Enabled: true, MinDelayMs: 10, MaxDelayMs: 20})
	for i := 0; i < 50; i++ {
		d := p.delay()
		if d < 10*time.Millisecond || d > 20*time.Millisecond {
			t.Fatalf("delay %v outside [10ms, 20ms]", d)
		}
	}
}
