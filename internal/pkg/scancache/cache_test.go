package scancache

import (
	"testing"
	"time"
)

func TestSeenMarksAndDeduplicates(t *testing.T) {
	c := New(time.Minute)

	if c.Seen("emp-1|2026-03-14") {
		t.Error("first Seen returned true")
	}
	if !c.Seen("emp-1|2026-03-14") {
		t.Error("second Seen returned false")
	}
	if c.Seen("emp-2|2026-03-14") {
		t.Error("Seen for a different key returned true")
	}
}

func TestSeenExpires(t *testing.T) {
	c := New(10 * time.Millisecond)

	if c.Seen("emp-1|2026-03-14") {
		t.Error("first Seen returned true")
	}
	time.Sleep(20 * time.Millisecond)
	if c.Seen("emp-1|2026-03-14") {
		t.Error("Seen after TTL returned true")
	}
}

func TestForget(t *testing.T) {
	c := New(time.Minute)

	c.Seen("emp-1|2026-03-14")
	c.Forget("emp-1|2026-03-14")
	if c.Seen("emp-1|2026-03-14") {
		t.Error("Seen after Forget returned true")
	}
}

func TestSweep(t *testing.T) {
	c := New(time.Minute)

	c.Seen("stale")
	c.Seen("fresh")
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	c.sweep(time.Now().Add(2 * time.Minute))
	if c.Len() != 0 {
		t.Errorf("Len() after full sweep = %d, want 0", c.Len())
	}
}
