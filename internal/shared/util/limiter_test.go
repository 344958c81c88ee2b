package util

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Wait(t *testing.T) {
	// 100 runs/sec, burst of 1
	l := NewLimiter(100, 1)

	ctx := context.Background()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	start := time.Now()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("Wait returned too early after burst was spent")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	// 1 run/sec so the second Wait would block well past the deadline.
	l := NewLimiter(1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if err := l.Wait(ctx); err == nil {
		t.Error("expected Wait to fail once the context deadline passed")
	}
}
