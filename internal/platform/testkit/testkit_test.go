package testkit

import (
	"testing"
	"time"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	haystack := "alpha beta gamma"
	MustContain(t, haystack, "beta")
	MustNotContain(t, haystack, "delta")
}

func TestEpochIsUTC(t *testing.T) {
	t.Parallel()
	if Epoch.Location() != time.UTC || Epoch.IsZero() {
		t.Fatalf("Epoch should be a fixed UTC instant, got %v", Epoch)
	}
}
