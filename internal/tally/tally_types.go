package tally

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies which side of the tally a vote counts toward.
type Kind int

const (
	Positive Kind = iota
	Negative
)

// String returns the lowercase name used in flags and log fields.
func (k Kind) String() string {
	switch k {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "positive"/"negative" (and the +/- shorthands) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "pos", "+", "up":
		return Positive, nil
	case "negative", "neg", "-", "down":
		return Negative, nil
	}
	return 0, fmt.Errorf("unknown vote kind %q", s)
}

// Stats is the derived view of a tally. It is recomputed on every read and
// never stored alongside the counters.
type Stats struct {
	Total              uint64
	Positive           uint64
	Negative           uint64
	PositivePercentage float64
	NegativePercentage float64
}

// Percentage returns the share for k.
func (s Stats) Percentage(k Kind) float64 {
	if k == Negative {
		return s.NegativePercentage
	}
	return s.PositivePercentage
}

// Count returns the counter for k.
func (s Stats) Count(k Kind) uint64 {
	if k == Negative {
		return s.Negative
	}
	return s.Positive
}

// FormatPercent renders a percentage with one decimal place, e.g. "75.0%".
// Ties round up, so 0.25 renders as "0.3%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", math.Floor(p*10+0.5)/10)
}
