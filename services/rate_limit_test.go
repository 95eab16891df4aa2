package services

import (
	"testing"
	"time"
)

func newTestLimiter(maxRequests int, window, block time.Duration) *RateLimitService {
	return &RateLimitService{
		windows: make(map[string]*rateWindow),
		configs: map[string]*RateLimitConfig{
			"test": {
				EndpointType: "test",
				MaxRequests:  maxRequests,
				WindowSize:   window,
				BlockTime:    block,
			},
		},
	}
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	svc := newTestLimiter(3, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := svc.IsAllowed("1.2.3.4", "test")
		if !allowed {
			t.Fatalf("request %d denied under limit", i+1)
		}
	}
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	svc := newTestLimiter(2, time.Minute, time.Minute)

	svc.IsAllowed("1.2.3.4", "test")
	svc.IsAllowed("1.2.3.4", "test")

	allowed, resetAt := svc.IsAllowed("1.2.3.4", "test")
	if allowed {
		t.Fatal("request over limit allowed")
	}
	if !resetAt.After(time.Now()) {
		t.Error("block reset time not in the future")
	}

	// Other clients are unaffected.
	if allowed, _ := svc.IsAllowed("5.6.7.8", "test"); !allowed {
		t.Error("unrelated client blocked")
	}
}

func TestRateLimitWindowExpiry(t *testing.T) {
	svc := newTestLimiter(1, 10*time.Millisecond, 0)

	svc.IsAllowed("1.2.3.4", "test")

	// Force the window into the past instead of sleeping.
	svc.mutex.Lock()
	svc.windows["test:1.2.3.4"].windowStart = time.Now().Add(-time.Minute)
	svc.windows["test:1.2.3.4"].blockedUntil = time.Time{}
	svc.mutex.Unlock()

	if allowed, _ := svc.IsAllowed("1.2.3.4", "test"); !allowed {
		t.Error("request denied after window expiry")
	}
}

func TestRateLimitUnknownEndpoint(t *testing.T) {
	svc := newTestLimiter(1, time.Minute, time.Minute)

	for i := 0; i < 10; i++ {
		if allowed, _ := svc.IsAllowed("1.2.3.4", "unconfigured"); !allowed {
			t.Fatal("unconfigured endpoint type was limited")
		}
	}
}
