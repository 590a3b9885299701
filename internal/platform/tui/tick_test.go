package tui

import (
	"math"
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first frame", time.Time{}, t0, 0},
		{"one frame at 60fps", t0, t0.Add(16 * time.Millisecond), 0.016},
		{"slow frame", t0, t0.Add(250 * time.Millisecond), 0.25},
		{"clock went backwards", t0, t0.Add(-time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.prev, tc.now); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("frameDelta() = %v, expected %v", got, tc.want)
			}
		})
	}
}
