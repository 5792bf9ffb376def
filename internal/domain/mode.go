package domain

import (
	"fmt"
	"strings"
)

// Mode selects how long a run lasts.
type Mode string

const (
	// ModeLoop repeats a fixed internal cycle forever.
	ModeLoop Mode = "loop"
	// ModeTimed runs for the user-configured hours and minutes, then stops.
	ModeTimed Mode = "timed"
)

// ValidModes lists all supported mode values.
var ValidModes = []Mode{ModeLoop, ModeTimed}

// ParseMode validates a mode name. "infinite" and "timing" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loop", "infinite":
		return ModeLoop, nil
	case "timed", "timing":
		return ModeTimed, nil
	}
	return "", fmt.Errorf("%w %q: must be one of loop, timed", ErrInvalidMode, s)
}

// LabelKey returns the translation key for the mode's button label.
func (m Mode) LabelKey() string {
	return "mode." + string(m)
}
