package domain

import (
	"testing"
	"time"
)

func TestSettings_SetHour(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{"24", 24, true},
		{"25", 24, true},
		{"100", 24, true},
		{"-4", 0, true},
		{"", 0, true},
		{" 7 ", 7, true},
		{"2.9", 2, true},
		{"abc", 5, false},
		{"NaN", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Settings{Hours: 5}
			ok := s.SetHour(tt.input)
			if ok != tt.wantOK {
				t.Errorf("SetHour(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if s.Hours != tt.want {
				t.Errorf("SetHour(%q) Hours = %d, want %d", tt.input, s.Hours, tt.want)
			}
		})
	}
}

func TestSettings_SetMinute(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"0", 0, true},
		{"59", 59, true},
		{"60", 59, true},
		{"1e3", 59, true},
		{"x1", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Settings{Minutes: 12}
			ok := s.SetMinute(tt.input)
			if ok != tt.wantOK {
				t.Errorf("SetMinute(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if s.Minutes != tt.want {
				t.Errorf("SetMinute(%q) Minutes = %d, want %d", tt.input, s.Minutes, tt.want)
			}
		})
	}
}

func TestSettings_TotalDuration(t *testing.T) {
	s := Settings{Hours: 1, Minutes: 30}
	if got := s.TotalDuration(); got != 90*time.Minute {
		t.Errorf("TotalDuration() = %v, want 90m", got)
	}

	s = Settings{Minutes: 1}
	if got := s.TotalDuration(); got.Milliseconds() != 60000 {
		t.Errorf("TotalDuration() = %dms, want 60000ms", got.Milliseconds())
	}
}

func TestSettings_Reset(t *testing.T) {
	s := Settings{Hours: 2, Minutes: 15, Mode: ModeTimed, Variant: VariantUpdate, Locale: "ja"}
	s.Reset()

	if s.Hours != 0 || s.Minutes != 0 {
		t.Errorf("Reset() left %dh%dm", s.Hours, s.Minutes)
	}
	if s.Mode != ModeTimed || s.Variant != VariantUpdate || s.Locale != "ja" {
		t.Error("Reset() should keep mode, variant and locale")
	}
}

func TestParseMode(t *testing.T) {
	for _, in := range []string{"loop", "LOOP", "infinite"} {
		if m, err := ParseMode(in); err != nil || m != ModeLoop {
			t.Errorf("ParseMode(%q) = %v, %v; want loop", in, m, err)
		}
	}
	for _, in := range []string{"timed", "timing"} {
		if m, err := ParseMode(in); err != nil || m != ModeTimed {
			t.Errorf("ParseMode(%q) = %v, %v; want timed", in, m, err)
		}
	}
	if _, err := ParseMode("forever"); err == nil {
		t.Error("ParseMode(forever) should fail")
	}
}
