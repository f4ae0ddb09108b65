package metrics

import "fmt"

// Level is a coarse categorical reading for a metric category.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// ParseLevel converts a string into a Level
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return Level(s), nil
	case "":
		return "", nil
	default:
		return "", &ValidationError{Field: "level", Message: fmt.Sprintf("unknown level %q, must be low, medium or high", s)}
	}
}

type measurementKind int

const (
	kindAbsent measurementKind = iota
	kindNumeric
	kindLevel
)

// Measurement is a single metric reading: a numeric value, a categorical
// level, or absent. Exactly one of the three holds at a time, so scoring
// precedence (numeric over level over absent) is checked by construction
// rather than by key-presence probing.
type Measurement struct {
	kind  measurementKind
	value float64
	lvl   Level
}

// Number creates a numeric Measurement
func Number(v float64) Measurement {
	return Measurement{kind: kindNumeric, value: v}
}

// AtLevel creates a categorical Measurement
func AtLevel(l Level) Measurement {
	if l == "" {
		return Measurement{}
	}
	return Measurement{kind: kindLevel, lvl: l}
}

// None creates an absent Measurement
func None() Measurement {
	return Measurement{}
}

// IsNone reports whether no reading was provided
func (m Measurement) IsNone() bool {
	return m.kind == kindAbsent
}

// Value returns the numeric reading, if one was provided
func (m Measurement) Value() (float64, bool) {
	return m.value, m.kind == kindNumeric
}

// Level returns the categorical reading, if one was provided
func (m Measurement) Level() (Level, bool) {
	return m.lvl, m.kind == kindLevel
}

// String returns a human-readable rendering for tables and logs
func (m Measurement) String() string {
	switch m.kind {
	case kindNumeric:
		return fmt.Sprintf("%g", m.value)
	case kindLevel:
		return string(m.lvl)
	default:
		return "-"
	}
}
