package clock

import (
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3*3600))
	c := NewFixed(at)
	if !c.Now().Equal(at) {
		t.Fatalf("expected %v, got %v", at, c.Now())
	}
	if c.Now().Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", c.Now().Location())
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := NewSystem().Now()
	if got.Before(before.Add(-time.Second)) || got.After(time.Now().Add(time.Second)) {
		t.Fatalf("system clock out of range: %v", got)
	}
}
