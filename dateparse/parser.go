package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/crowmagnumb/parsers/parse"
)

// logger receives catalog-misconfiguration diagnostics. The library is
// silent by default; embedding applications can route the diagnostics with
// SetLogger.
var logger = zerolog.Nop()

// SetLogger replaces the logger used for catalog diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// NumericalParser parses numerically-formatted date strings. It is
// immutable after construction and safe for unlimited concurrent use.
type NumericalParser struct {
	byHint       map[FormatHint][]*matcher
	unambiguous  []*matcher
	multiParsers []*multiParser
}

// defaultParser is the shared catalog without two-digit-year support. It is
// built once and never mutated.
var defaultParser = mustBuildCatalog(0)

// New returns the default parser. Two-digit-year patterns are absent from
// its catalog; use NewWithBaseYear to enable them.
func New() *NumericalParser {
	return defaultParser
}

// NewWithBaseYear returns a parser that additionally resolves two-digit
// years against the 100-year window ending at baseYear. It fails when
// baseYear lies after the current calendar year.
func NewWithBaseYear(baseYear int) (*NumericalParser, error) {
	if baseYear > time.Now().Year() {
		return nil, fmt.Errorf("base year %d is after the current year", baseYear)
	}
	if baseYear <= 0 {
		return nil, fmt.Errorf("base year %d is not a usable year", baseYear)
	}
	return buildCatalog(baseYear)
}

func mustBuildCatalog(baseYear int) *NumericalParser {
	p, err := buildCatalog(baseYear)
	if err != nil {
		panic(err)
	}
	return p
}

// buildCatalog compiles the literal pattern tables into an immutable
// parser. Every matcher, including every ambiguity-group member, is also
// indexed under its own hint.
func buildCatalog(baseYear int) (*NumericalParser, error) {
	p := &NumericalParser{
		byHint: make(map[FormatHint][]*matcher),
	}

	register := func(m *matcher) {
		p.byHint[m.hint] = append(p.byHint[m.hint], m)
	}

	for _, row := range unambiguousRows {
		m, err := newMatcher(row, 0)
		if err != nil {
			return nil, err
		}
		p.unambiguous = append(p.unambiguous, m)
		register(m)
	}

	families := ambiguousFamilies
	if baseYear > 0 {
		families = append(append([]ambiguityFamily{}, families...), twoDigitYearFamilies...)
		for _, row := range twoDigitYearRows {
			m, err := newMatcher(row, baseYear)
			if err != nil {
				return nil, err
			}
			p.unambiguous = append(p.unambiguous, m)
			register(m)
		}
	}

	for _, family := range families {
		mp := &multiParser{}
		for i, row := range family.rows {
			m, err := newMatcher(row, baseYear)
			if err != nil {
				return nil, err
			}
			mp.matchers = append(mp.matchers, m)
			if i == family.preferred {
				mp.preferred = m
			}
			register(m)
		}
		p.multiParsers = append(p.multiParsers, mp)
	}

	return p, nil
}

// Parse interprets a free-form numeric date string without any format hint.
func (p *NumericalParser) Parse(input string) parse.Result[Temporal] {
	return p.ParseWithHint(input, HintNone)
}

// ParseWithHint interprets a free-form numeric date string. A recognized
// hint restricts the candidate patterns and bypasses ambiguity resolution;
// HintNone (or an unknown hint) tries the full catalog.
func (p *NumericalParser) ParseWithHint(input string, hint FormatHint) parse.Result[Temporal] {
	if strings.TrimSpace(input) == "" {
		return parse.Fail[Temporal]()
	}

	candidates, known := p.byHint[hint]
	if !known {
		candidates = p.unambiguous
	}

	// Definite pass: the first unambiguous pattern that fits wins outright.
	for _, m := range candidates {
		if t, ok := m.tryMatch(input); ok {
			return parse.Success(parse.Definite, t)
		}
	}

	// A hint restricts the search space; no fallback for hinted calls.
	if hint != HintNone {
		return parse.Fail[Temporal]()
	}

	// Ambiguity pass: evaluate every group, never stopping at the first
	// match, so that multiple valid readings are actually detected.
	possibleMatches := 0
	var lastParsed *Temporal
	var lastPreferred *Temporal
	// whether all results of a no-preference group represent the same value
	othersAllEqual := false

	for _, mp := range p.multiParsers {
		res := mp.evaluate(input)
		possibleMatches += res.count

		if res.count == 0 {
			continue
		}
		lastParsed = res.result()

		if othersAllEqual {
			// groups are expected to be non-overlapping by construction
			logger.Warn().
				Str("input", input).
				Msg("ambiguity group configuration issue: input produced more matches after an all-equal group")
		}
		othersAllEqual = false

		if res.preferred != nil {
			if lastPreferred != nil {
				logger.Warn().
					Str("input", input).
					Msg("ambiguity group configuration issue: input produced two preferred matches")
			}
			lastPreferred = res.preferred
		} else if len(res.others) > 1 {
			othersAllEqual = allEqual(res.others)
		}
	}

	// A single candidate across all groups is not ambiguous.
	if possibleMatches == 1 {
		return parse.Success(parse.Definite, *lastParsed)
	}
	if possibleMatches > 1 {
		// Different patterns agreeing on one value is not ambiguity either.
		if othersAllEqual {
			return parse.Success(parse.Definite, *lastParsed)
		}
		if lastPreferred != nil {
			return parse.Success(parse.Probable, *lastPreferred)
		}
	}

	logger.Debug().Str("input", input).Int("matches", possibleMatches).Msg("no unambiguous interpretation")
	return parse.Fail[Temporal]()
}

// isoYMD matches a strict year[-month[-day]] string: 2–4 digit year,
// 1–2 digit month and day.
var isoYMD = regexp.MustCompile(`^(\d{2,4})(?:-(\d{1,2})(?:-(\d{1,2}))?)?$`)

// ParseYMD interprets separately supplied year, month and day strings.
// Blank components are treated as absent. A day without a month fails
// immediately: a lone day-of-month is not a safe partial date. Success is
// always definite, since pre-split fields admit no ambiguity.
func ParseYMD(year, month, day string) parse.Result[Temporal] {
	if strings.TrimSpace(month) == "" && strings.TrimSpace(day) != "" {
		return parse.Fail[Temporal]()
	}
	return parseISO(joinYMD(year, month, day))
}

// ParseYMDInts is ParseYMD for already-numeric components; nil means
// absent.
func ParseYMDInts(year, month, day *int) parse.Result[Temporal] {
	if month == nil && day != nil {
		return parse.Fail[Temporal]()
	}
	str := func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	}
	return parseISO(joinYMD(str(year), str(month), str(day)))
}

// joinYMD joins the non-blank components in year-month-day order with a
// hyphen, skipping absent ones.
func joinYMD(year, month, day string) string {
	var parts []string
	for _, s := range []string{year, month, day} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, string(charHyphen))
}

// parseISO runs the dedicated strict ISO-style matcher used by the
// year/month/day entry points.
func parseISO(input string) parse.Result[Temporal] {
	groups := isoYMD.FindStringSubmatch(input)
	if groups == nil {
		return parse.Fail[Temporal]()
	}

	year, err := strconv.Atoi(groups[1])
	if err != nil {
		return parse.Fail[Temporal]()
	}
	precision := PrecisionYear
	month, day := 1, 1

	if groups[2] != "" {
		month, err = strconv.Atoi(groups[2])
		if err != nil || month < 1 || month > 12 {
			return parse.Fail[Temporal]()
		}
		precision = PrecisionMonth
	}
	if groups[3] != "" {
		day, err = strconv.Atoi(groups[3])
		if err != nil || day < 1 || day > daysInMonth(year, time.Month(month)) {
			return parse.Fail[Temporal]()
		}
		precision = PrecisionDay
	}

	t := Temporal{
		Value:     time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Precision: precision,
	}
	return parse.Success(parse.Definite, t)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
