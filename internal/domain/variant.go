package domain

import (
	"fmt"
	"strings"
)

// DisplayVariant is one of the fixed visual presentations of the fake screen.
type DisplayVariant string

const (
	// VariantFailure is the blue crash screen (variant A).
	VariantFailure DisplayVariant = "bsod"
	// VariantUpdate is the blue "working on updates" screen (variant B).
	VariantUpdate DisplayVariant = "windows-update"
	// VariantAltUpdate is the black logo-and-bar update screen (variant C).
	VariantAltUpdate DisplayVariant = "mac-update"
)

// Variants lists every variant in display order.
var Variants = []DisplayVariant{VariantFailure, VariantUpdate, VariantAltUpdate}

// FallbackVariant is used for any platform without a dedicated mapping.
const FallbackVariant = VariantAltUpdate

// DetectVariant maps a platform identifier to the variant that looks native on it.
func DetectVariant(platformID string) DisplayVariant {
	id := strings.ToLower(platformID)
	switch {
	// "darwin" contains "win".
	case strings.Contains(id, "darwin"):
		return VariantAltUpdate
	case strings.Contains(id, "win"):
		return VariantFailure
	case strings.Contains(id, "mac"), strings.Contains(id, "ios"):
		return VariantAltUpdate
	default:
		return FallbackVariant
	}
}

// ParseVariant accepts a variant name, its 1-based position or its letter (a, b, c).
func ParseVariant(s string) (DisplayVariant, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, v := range Variants {
		if in == string(v) || in == fmt.Sprint(i+1) || in == string(rune('a'+i)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of bsod, windows-update, mac-update", ErrInvalidVariant, s)
}

// Index returns the 0-based display position, or -1 for an unknown variant.
func (v DisplayVariant) Index() int {
	for i, known := range Variants {
		if v == known {
			return i
		}
	}
	return -1
}

// Label returns a human-readable name.
func (v DisplayVariant) Label() string {
	switch v {
	case VariantFailure:
		return "Crash screen"
	case VariantUpdate:
		return "Update screen"
	case VariantAltUpdate:
		return "Alternate-OS update"
	default:
		return "Unknown"
	}
}
