package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name              string
		requestsPerSecond float64
		expectUnlimited   bool
	}{
		{name: "unlimited_zero", requestsPerSecond: 0, expectUnlimited: true},
		{name: "unlimited_negative", requestsPerSecond: -1, expectUnlimited: true},
		{name: "limited_one_per_second", requestsPerSecond: 1},
		{name: "limited_fractional", requestsPerSecond: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := New(tt.requestsPerSecond)

			limit := limiter.Limit()
			if tt.expectUnlimited {
				if limit != 0 {
					t.Errorf("Limit() = %f, want 0 for unlimited", limit)
				}
			} else if limit != tt.requestsPerSecond {
				t.Errorf("Limit() = %f, want %f", limit, tt.requestsPerSecond)
			}
		})
	}
}

func TestWaitUnlimitedDoesNotBlock(t *testing.T) {
	limiter := New(0)

	start := time.Now()
	for range 10 {
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
		t.Fatalf("unlimited limiter blocked for %v", elapsed)
	}
}

func TestWaitPacesRequests(t *testing.T) {
	limiter := New(10) // 100ms between requests

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait() error = %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("second Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("second Wait() returned after %v, want ~100ms", elapsed)
	}
}

func TestWaitContextCancellation(t *testing.T) {
	limiter := New(1)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Fatal("Wait() expected an error after context timeout")
	}
}
