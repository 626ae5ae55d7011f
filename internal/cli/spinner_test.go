package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner(context.Background(), "drawing")
	if s.Cancelled() {
		t.Error("fresh spinner should not report cancellation")
	}
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "drawing")
	s.Start()

	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation after parent context cancel")
	}
	s.Stop()
}

func TestSpinnerDoubleStop(t *testing.T) {
	s := newSpinner(context.Background(), "drawing")
	s.Start()
	s.Stop()
	s.Stop() // must not panic
}
