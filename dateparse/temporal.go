// Package dateparse parses numerically-formatted date strings from
// biodiversity occurrence records into partial temporal values.
//
// It is a numerical parser: it does not handle dates that spell out part of
// the value as text (e.g. "January 1 1980"). Months are numerical starting
// at 1 for January. The same input can be valid under several regional
// conventions (day-first vs month-first); the parser resolves this
// deterministically and reports a confidence grade instead of guessing.
package dateparse

import (
	"time"
)

// Precision indicates the finest calendar or clock field a Temporal
// actually carries.
type Precision string

const (
	PrecisionYear   Precision = "year"
	PrecisionMonth  Precision = "month"
	PrecisionDay    Precision = "day"
	PrecisionHour   Precision = "hour"
	PrecisionMinute Precision = "minute"
	PrecisionSecond Precision = "second"
)

func precisionOrder(p Precision) int {
	switch p {
	case PrecisionYear:
		return 0
	case PrecisionMonth:
		return 1
	case PrecisionDay:
		return 2
	case PrecisionHour:
		return 3
	case PrecisionMinute:
		return 4
	case PrecisionSecond:
		return 5
	default:
		return -1
	}
}

// hasPrecisionLevel reports whether a value of precision current provides
// the field named by level.
func hasPrecisionLevel(current, level Precision) bool {
	return precisionOrder(current) >= precisionOrder(level)
}

// Temporal is a partial date/time value: a wall-clock time.Time of which
// only the fields up to Precision are meaningful. HasOffset records whether
// the source carried an explicit UTC offset; the offset itself lives in
// Value's location. The zero Temporal carries no fields at all.
type Temporal struct {
	Value     time.Time
	Precision Precision
	HasOffset bool
}

// IsZero reports whether the value carries no fields.
func (t Temporal) IsZero() bool {
	return t.Precision == ""
}

// ResolutionRank counts how many of year, month and day the value provides.
// It is the measure used to compare two values for specificity.
func (t Temporal) ResolutionRank() int {
	switch t.Precision {
	case "":
		return 0
	case PrecisionYear:
		return 1
	case PrecisionMonth:
		return 2
	default:
		return 3
	}
}

// Equal reports whether two values describe the same thing: identical
// precision, identical offset presence (and offset, when present), and
// identical fields down to that precision.
func (t Temporal) Equal(o Temporal) bool {
	if t.Precision != o.Precision || t.HasOffset != o.HasOffset {
		return false
	}
	if t.HasOffset {
		_, toff := t.Value.Zone()
		_, ooff := o.Value.Zone()
		if toff != ooff {
			return false
		}
	}
	a, b := t.Value, o.Value
	if t.IsZero() {
		return true
	}
	if a.Year() != b.Year() {
		return false
	}
	if hasPrecisionLevel(t.Precision, PrecisionMonth) && a.Month() != b.Month() {
		return false
	}
	if hasPrecisionLevel(t.Precision, PrecisionDay) && a.Day() != b.Day() {
		return false
	}
	if hasPrecisionLevel(t.Precision, PrecisionHour) && a.Hour() != b.Hour() {
		return false
	}
	if hasPrecisionLevel(t.Precision, PrecisionMinute) && a.Minute() != b.Minute() {
		return false
	}
	if hasPrecisionLevel(t.Precision, PrecisionSecond) && a.Second() != b.Second() {
		return false
	}
	return true
}

const (
	formatYear           = "2006"
	formatYearMonth      = "2006-01"
	formatDate           = "2006-01-02"
	formatDateHour       = "2006-01-02T15"
	formatDateMinute     = "2006-01-02T15:04"
	formatDateSecond     = "2006-01-02T15:04:05"
	formatDateSecondZone = "2006-01-02T15:04:05-07:00"
)

// String renders the canonical ISO-style form of the value, down to its
// precision. Parsing the returned string with the matching hint yields an
// equal value.
func (t Temporal) String() string {
	switch t.Precision {
	case "":
		return ""
	case PrecisionYear:
		return t.Value.Format(formatYear)
	case PrecisionMonth:
		return t.Value.Format(formatYearMonth)
	case PrecisionDay:
		return t.Value.Format(formatDate)
	case PrecisionHour:
		return t.Value.Format(formatDateHour)
	case PrecisionMinute:
		return t.Value.Format(formatDateMinute)
	default:
		if t.HasOffset {
			return t.Value.Format(formatDateSecondZone)
		}
		return t.Value.Format(formatDateSecond)
	}
}
