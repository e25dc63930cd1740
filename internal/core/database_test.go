// Ruthwik | 2026
// database_test.go

package core

import (
	"testing"
	"time"
)

func TestJitteredDuration(t *testing.T) {
	if got := jitteredDuration(0); got != 0 {
		t.Errorf("jitteredDuration(0) = %v, want 0", got)
	}

	if got := jitteredDuration(-time.Second); got != -time.Second {
		t.Errorf("jitteredDuration(-1s) = %v, want -1s", got)
	}

	base := 7 * time.Hour
	for range 100 {
		got := jitteredDuration(base)
		if got < base || got >= base+time.Hour {
			t.Fatalf("jitteredDuration(%v) = %v, outside [%v, %v)",
				base, got, base, base+time.Hour)
		}
	}
}
