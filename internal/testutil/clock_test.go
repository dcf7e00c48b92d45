package testutil

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	clk := NewManualClock(start)

	if !clk.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", clk.Now(), start)
	}

	clk.Advance(90 * time.Minute)
	if !clk.Now().Equal(start.Add(90 * time.Minute)) {
		t.Errorf("Now() after Advance = %v", clk.Now())
	}

	later := start.Add(48 * time.Hour)
	clk.Set(later)
	if !clk.Now().Equal(later) {
		t.Errorf("Now() after Set = %v", clk.Now())
	}

	// Frozen between calls: two reads see the same instant.
	if !clk.Now().Equal(clk.Now()) {
		t.Error("clock must not tick on its own")
	}
}
