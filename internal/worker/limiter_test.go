package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.burst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.burst)
	}

	l2 := NewLimiter(10, -1)
	if l2.burst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.burst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://api.sellerpulse.app/api/sellers/top"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different host gets its own bucket
	if err := limiter.Wait(ctx, "https://staging.sellerpulse.app/api/sellers/top"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 20 rps, burst 1: second request must wait ~50ms
	limiter := NewLimiter(20, 1)
	ctx := context.Background()
	url := "https://api.sellerpulse.app/api/sellers/top"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx, url); err != nil {
		t.Fatalf("second wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected second request throttled, waited only %v", elapsed)
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(1, 1)
	url := "https://api.sellerpulse.app/api/sellers/top"

	if !limiter.Allow(url) {
		t.Error("first request within burst should be allowed")
	}
	if limiter.Allow(url) {
		t.Error("second immediate request should be throttled")
	}
}

func TestLimiter_BadURL(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if err := limiter.Wait(context.Background(), "://bad"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}
