package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Default plan inputs used when a field is missing or not a number.
const (
	DefaultHours    = 2
	DefaultDeadline = 7
)

// Upper bounds for the plan inputs. Larger values are treated as invalid.
const (
	MaxHours    = 24
	MaxDeadline = 365
)

// combiningDiacritics is the U+0300..U+036F block: acute, grave, tilde, cedilla and friends.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize decomposes s, drops combining diacritics and lowercases the result,
// so "Revisão", "REVISAO" and "revisao" all compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// The chain only fails on invalid UTF-8; fall back to case folding alone.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseHours parses the hours-per-day field.
// Missing, non-numeric, non-finite, non-positive or above MaxHours values
// yield DefaultHours.
func ParseHours(raw string) float64 {
	v, ok := parsePositive(raw)
	if !ok || v > MaxHours {
		return DefaultHours
	}
	return v
}

// ParseDeadline parses the deadline field as a whole number of days.
// Fractions are truncated; anything below one day or above MaxDeadline
// yields DefaultDeadline.
func ParseDeadline(raw string) int {
	v, ok := parsePositive(raw)
	if !ok || v < 1 || v >= MaxDeadline+1 {
		return DefaultDeadline
	}
	return int(v)
}

func parsePositive(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
