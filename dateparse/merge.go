package dateparse

import "time"

// BestResolution merges two temporal values of possibly different
// resolution into the more specific one, provided they do not contradict.
// A nil input yields the other value; contradictory values yield nil.
// e.g. 2005-01 and 2005-01-01 merge to 2005-01-01.
func BestResolution(a, b *Temporal) *Temporal {
	if a == nil || a.IsZero() {
		return b
	}
	if b == nil || b.IsZero() {
		return a
	}

	// If both provide a field, it must match.
	if a.Value.Year() != b.Value.Year() {
		return nil
	}
	if hasPrecisionLevel(a.Precision, PrecisionMonth) && hasPrecisionLevel(b.Precision, PrecisionMonth) &&
		a.Value.Month() != b.Value.Month() {
		return nil
	}
	if hasPrecisionLevel(a.Precision, PrecisionDay) && hasPrecisionLevel(b.Precision, PrecisionDay) &&
		a.Value.Day() != b.Value.Day() {
		return nil
	}

	if a.ResolutionRank() > b.ResolutionRank() {
		return a
	}
	return b
}

// SameYearMonthDay reports whether two values represent the same complete
// calendar date. Values that are absent or provide less than a full
// year-month-day are never the same date.
func SameYearMonthDay(a, b *Temporal) bool {
	if a == nil || b == nil {
		return false
	}
	if a.ResolutionRank() != 3 || b.ResolutionRank() != 3 {
		return false
	}
	return a.Value.Year() == b.Value.Year() &&
		a.Value.Month() == b.Value.Month() &&
		a.Value.Day() == b.Value.Day()
}

// ToTime projects a temporal value onto an absolute instant, filling
// unspecified finer fields with the canonical start of the period: a
// year-month becomes the first day of that month, a year the first of
// January. An explicit offset is honored unless ignoreOffset is set;
// everything else is taken as UTC. It reports false when the value provides
// no usable field.
func ToTime(t *Temporal, ignoreOffset bool) (time.Time, bool) {
	if t == nil || t.IsZero() {
		return time.Time{}, false
	}
	if t.HasOffset && !ignoreOffset {
		// the offset is encoded in the value's location
		return t.Value, true
	}
	v := t.Value
	switch {
	case hasPrecisionLevel(t.Precision, PrecisionHour):
		return time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC), true
	case t.Precision == PrecisionDay:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), true
	case t.Precision == PrecisionMonth:
		return time.Date(v.Year(), v.Month(), 1, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Date(v.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
}
