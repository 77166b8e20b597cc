package dateparse

import (
	"fmt"
	"strings"
	"time"
)

// matcher wraps a single catalog pattern: the concrete layouts expanded
// from it, the hint it is indexed under, an optional separator
// normalization table, and the pivot base year when the pattern expects a
// two-digit year.
type matcher struct {
	pattern    string
	hint       FormatHint
	normalizer map[rune]rune
	baseYear   int
	layouts    []layout
}

func newMatcher(row catalogRow, baseYear int) (*matcher, error) {
	layouts, err := compilePattern(row.pattern)
	if err != nil {
		return nil, err
	}
	m := &matcher{
		pattern:  row.pattern,
		hint:     row.hint,
		baseYear: baseYear,
		layouts:  layouts,
	}
	for _, l := range layouts {
		if l.twoDigitYear && baseYear == 0 {
			return nil, fmt.Errorf("pattern %q expects a two-digit year but no base year is bound", row.pattern)
		}
	}
	if row.alternates != "" {
		m.normalizer = make(map[rune]rune, len(row.alternates))
		for _, alt := range row.alternates {
			m.normalizer[alt] = row.canonical
		}
	}
	return m, nil
}

// tryMatch attempts the input against every layout of the pattern. A layout
// that does not fit is an expected outcome, not an error; nothing escapes
// this boundary.
func (m *matcher) tryMatch(input string) (Temporal, bool) {
	if m.normalizer != nil {
		input = strings.Map(func(r rune) rune {
			if canonical, ok := m.normalizer[r]; ok {
				return canonical
			}
			return r
		}, input)
	}
	for _, l := range m.layouts {
		t, err := time.Parse(l.goLayout, input)
		if err != nil {
			continue
		}
		if l.twoDigitYear {
			var ok bool
			if t, ok = pivotYear(t, m.baseYear); !ok {
				continue
			}
		}
		return Temporal{Value: t, Precision: l.precision, HasOffset: l.hasOffset}, true
	}
	return Temporal{}, false
}

// pivotYear re-anchors a two-digit year (already expanded by time.Parse's
// fixed 1969–2068 rule) into the 100-year window ending at the base year,
// so that the base year itself always maps to itself. It reports false when
// the re-anchored year invalidates the date (a leap day landing on a
// non-leap year).
func pivotYear(t time.Time, base int) (time.Time, bool) {
	yy := t.Year() % 100
	resolved := base - (((base-yy)%100)+100)%100
	shifted := time.Date(resolved, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if shifted.Month() != t.Month() || shifted.Day() != t.Day() {
		return time.Time{}, false
	}
	return shifted, true
}
