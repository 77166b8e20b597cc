package dateparse

import (
	"fmt"
	"strings"
)

// The catalog patterns use a compact DSL borrowed from the upstream
// biodiversity tooling:
//
//	uuuu  4-digit year      HH   2-digit hour
//	uu    2-digit year      mm   2-digit minute
//	MM/M  month             ss   2-digit second
//	dd/d  day               Z    offset as +hhmm
//	                        xxx  offset as +hh:mm
//
// Bracketed segments are optional, quoted characters are literals, any
// other character is a literal separator. Patterns are compiled once, at
// catalog construction, into one or more concrete Go time layouts.

// layout is one concrete expansion of a catalog pattern.
type layout struct {
	goLayout     string
	precision    Precision
	hasOffset    bool
	twoDigitYear bool
}

// expandOptional resolves every bracketed segment of a pattern into its
// present and absent variants, fuller variants first.
func expandOptional(pattern string) []string {
	open := strings.IndexByte(pattern, '[')
	if open < 0 {
		return []string{pattern}
	}
	depth := 1
	end := open + 1
	for ; end < len(pattern) && depth > 0; end++ {
		switch pattern[end] {
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	end-- // index of the matching ']'

	var variants []string
	for _, v := range expandOptional(pattern[open+1:end] + pattern[end+1:]) {
		variants = append(variants, pattern[:open]+v)
	}
	for _, v := range expandOptional(pattern[end+1:]) {
		variants = append(variants, pattern[:open]+v)
	}
	return variants
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// compileLayout translates a single bracket-free pattern variant into a Go
// time layout, recording the granularity the variant expresses.
func compileLayout(pattern string) (layout, error) {
	var b strings.Builder
	var l layout
	var sawYear, sawMonth, sawDay, sawHour, sawMinute, sawSecond bool

	rs := []rune(pattern)
	for i := 0; i < len(rs); {
		r := rs[i]
		if r == '\'' {
			end := i + 1
			for end < len(rs) && rs[end] != '\'' {
				end++
			}
			if end == len(rs) {
				return layout{}, fmt.Errorf("unterminated quote in pattern %q", pattern)
			}
			b.WriteString(string(rs[i+1 : end]))
			i = end + 1
			continue
		}
		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}
		run := i
		for run < len(rs) && rs[run] == r {
			run++
		}
		n := run - i
		switch r {
		case 'u':
			switch n {
			case 4:
				b.WriteString("2006")
			case 2:
				b.WriteString("06")
				l.twoDigitYear = true
			default:
				return layout{}, fmt.Errorf("unsupported year width %d in pattern %q", n, pattern)
			}
			sawYear = true
		case 'M':
			switch n {
			case 2:
				b.WriteString("01")
			case 1:
				b.WriteString("1")
			default:
				return layout{}, fmt.Errorf("unsupported month width %d in pattern %q", n, pattern)
			}
			sawMonth = true
		case 'd':
			switch n {
			case 2:
				b.WriteString("02")
			case 1:
				b.WriteString("2")
			default:
				return layout{}, fmt.Errorf("unsupported day width %d in pattern %q", n, pattern)
			}
			sawDay = true
		case 'H':
			if n != 2 {
				return layout{}, fmt.Errorf("unsupported hour width %d in pattern %q", n, pattern)
			}
			b.WriteString("15")
			sawHour = true
		case 'm':
			if n != 2 {
				return layout{}, fmt.Errorf("unsupported minute width %d in pattern %q", n, pattern)
			}
			b.WriteString("04")
			sawMinute = true
		case 's':
			if n != 2 {
				return layout{}, fmt.Errorf("unsupported second width %d in pattern %q", n, pattern)
			}
			b.WriteString("05")
			sawSecond = true
		case 'x':
			if n != 3 {
				return layout{}, fmt.Errorf("unsupported offset width %d in pattern %q", n, pattern)
			}
			b.WriteString("-07:00")
			l.hasOffset = true
		case 'Z':
			if n != 1 {
				return layout{}, fmt.Errorf("unsupported zone width %d in pattern %q", n, pattern)
			}
			b.WriteString("-0700")
			l.hasOffset = true
		default:
			return layout{}, fmt.Errorf("unknown pattern letter %q in pattern %q", r, pattern)
		}
		i = run
	}

	if !sawYear {
		return layout{}, fmt.Errorf("pattern %q has no year field", pattern)
	}
	switch {
	case sawSecond:
		l.precision = PrecisionSecond
	case sawMinute:
		l.precision = PrecisionMinute
	case sawHour:
		l.precision = PrecisionHour
	case sawDay:
		l.precision = PrecisionDay
	case sawMonth:
		l.precision = PrecisionMonth
	default:
		l.precision = PrecisionYear
	}
	l.goLayout = b.String()
	return l, nil
}

// compilePattern expands a pattern's optional segments and compiles every
// variant.
func compilePattern(pattern string) ([]layout, error) {
	var layouts []layout
	for _, v := range expandOptional(pattern) {
		l, err := compileLayout(v)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}
