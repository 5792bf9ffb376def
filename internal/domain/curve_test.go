package domain

import (
	"testing"
	"time"
)

func TestCurve_Anchors(t *testing.T) {
	totals := []time.Duration{time.Minute, 90 * time.Minute, 24*time.Hour + 59*time.Minute, 125 * time.Second}

	for _, total := range totals {
		t.Run(total.String(), func(t *testing.T) {
			if got := Curve(0, total); got != 0 {
				t.Errorf("Curve(0) = %v, want 0", got)
			}
			if got := Curve(total/2, total); got != 80 {
				t.Errorf("Curve(total/2) = %v, want 80", got)
			}
			if got := Curve(total, total); got != 100 {
				t.Errorf("Curve(total) = %v, want 100", got)
			}
			if got := Curve(2*total, total); got != 100 {
				t.Errorf("Curve(2*total) = %v, want 100", got)
			}
		})
	}
}

func TestCurve_Phases(t *testing.T) {
	total := 100 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"quarter", 25 * time.Second, 40},
		{"final ramp start", 85 * time.Second, 85},
		{"final ramp middle", 92500 * time.Millisecond, 92.5},
		{"negative elapsed", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Curve(tt.elapsed, total)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Curve(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestCurve_PlateauStaysInBand(t *testing.T) {
	total := 60 * time.Second
	for e := total / 2; e < total*85/100; e += 10 * time.Millisecond {
		got := Curve(e, total)
		if got < 78 || got > 82 {
			t.Fatalf("Curve(%v) = %v, want within [78, 82]", e, got)
		}
	}
}

func TestCurve_ZeroTotal(t *testing.T) {
	if got := Curve(time.Second, 0); got != 100 {
		t.Errorf("Curve with zero total = %v, want 100", got)
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		prev, next, want float64
	}{
		{0, 10, 10},
		{50, 40, 50},
		{81.5, 78.2, 81.5},
		{99, 120, 100},
		{0, -5, 0},
	}

	for _, tt := range tests {
		if got := ClampProgress(tt.prev, tt.next); got != tt.want {
			t.Errorf("ClampProgress(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
		}
	}
}

func TestClampProgress_SequenceIsMonotonic(t *testing.T) {
	total := 40 * time.Second
	prev := 0.0
	for e := time.Duration(0); e <= total; e += 37 * time.Millisecond {
		next := ClampProgress(prev, Curve(e, total))
		if next < prev {
			t.Fatalf("progress regressed at %v: %v -> %v", e, prev, next)
		}
		prev = next
	}
	prev = ClampProgress(prev, Curve(total, total))
	if prev != 100 {
		t.Errorf("final progress = %v, want 100", prev)
	}
}
