package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Input bounds for the timed-mode duration fields.
const (
	MaxHours   = 24
	MaxMinutes = 59
)

// Settings holds the user-editable parameters read when a run starts.
type Settings struct {
	Hours   int
	Minutes int
	Mode    Mode
	Variant DisplayVariant
	Locale  string
}

// DefaultSettings returns loop mode with a zero timed duration.
func DefaultSettings() Settings {
	return Settings{
		Mode:    ModeLoop,
		Variant: FallbackVariant,
	}
}

// SetHour parses input and stores it clamped to [0, MaxHours].
// Non-numeric input is rejected and the previous value is kept.
func (s *Settings) SetHour(input string) bool {
	v, ok := parseField(input)
	if !ok {
		return false
	}
	s.Hours = clampInt(v, 0, MaxHours)
	return true
}

// SetMinute parses input and stores it clamped to [0, MaxMinutes].
// Non-numeric input is rejected and the previous value is kept.
func (s *Settings) SetMinute(input string) bool {
	v, ok := parseField(input)
	if !ok {
		return false
	}
	s.Minutes = clampInt(v, 0, MaxMinutes)
	return true
}

// TotalDuration returns the timed-mode run length.
func (s Settings) TotalDuration() time.Duration {
	return time.Duration(s.Hours)*time.Hour + time.Duration(s.Minutes)*time.Minute
}

// Reset zeroes the timed duration. Mode, variant and locale are kept.
func (s *Settings) Reset() {
	s.Hours = 0
	s.Minutes = 0
}

// parseField accepts integers and decimals (truncated). An empty field reads as 0.
func parseField(input string) (int, bool) {
	in := strings.TrimSpace(input)
	if in == "" {
		return 0, true
	}
	if n, err := strconv.Atoi(in); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < 0 {
		return 0, true
	}
	return int(f), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
