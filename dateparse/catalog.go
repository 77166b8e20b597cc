package dateparse

// The pattern catalog is deliberately plain data: literal rows compiled
// once into immutable matchers. Keeping it a table makes the supported
// formats auditable without reading the resolution algorithm.

// ISO 8601 specifies a Unicode minus, with a hyphen as an alternative.
const (
	charHyphen = '-' // '-'
	charMinus  = '−' // '−'
)

// catalogRow is one literal entry of the catalog. Any character of
// alternates found in the input is rewritten to canonical before matching.
type catalogRow struct {
	pattern    string
	hint       FormatHint
	canonical  rune
	alternates string
}

// unambiguousRows are tried in order during the definite pass; a match here
// admits exactly one reading.
var unambiguousRows = []catalogRow{
	{pattern: "uuuuMMdd", hint: HintYMD},
	{pattern: "uuuu-M-d[ HH:mm:ss]", hint: HintYMDT, canonical: charHyphen, alternates: string(charMinus) + "."},
	{pattern: "uuuu-M-d'T'HH[:mm[:ss]]", hint: HintYMDT},
	{pattern: "uuuu-M-d'T'HHmm[ss]", hint: HintYMDT},
	{pattern: "uuuu-M-d'T'HH:mm:ssZ", hint: HintYMDT},
	{pattern: "uuuu-M-d'T'HH:mm:ssxxx", hint: HintYMDT}, // covers 1978-12-21T02:12:43+01:00
	{pattern: "uuuu-M-d'T'HH:mm:ss'Z'", hint: HintYMDT},
	{pattern: "uuuu-M", hint: HintYearMonth},
	{pattern: "uuuu", hint: HintYear},
	{pattern: "uuuu年MM月dd日", hint: HintHan},
	{pattern: "uuuu年M月d日", hint: HintHan},
}

// ambiguityFamily groups the rows competing for one input shape.
// preferred indexes the regionally conventional member, -1 when the family
// has no safe tiebreak.
type ambiguityFamily struct {
	rows      []catalogRow
	preferred int
}

// ambiguousFamilies captures the day-first vs month-first conventions. Only
// the dotted family carries a preference (DE, DK, NO all read it
// day-first); the slash family is split between DMY (FR, GB, ES) and MDY
// (US) usage, so no preference is safe there.
var ambiguousFamilies = []ambiguityFamily{
	{
		rows: []catalogRow{
			{pattern: "d.M.uuuu", hint: HintDMY},
			{pattern: "M.d.uuuu", hint: HintMDY},
		},
		preferred: 0,
	},
	{
		rows: []catalogRow{
			{pattern: "d/M/uuuu", hint: HintDMY, canonical: '/', alternates: string(charHyphen) + string(charMinus)},
			{pattern: "M/d/uuuu", hint: HintMDY, canonical: '/', alternates: string(charHyphen) + string(charMinus)},
		},
		preferred: -1,
	},
	{
		rows: []catalogRow{
			{pattern: "ddMMuuuu", hint: HintDMY},
			{pattern: "MMdduuuu", hint: HintMDY},
		},
		preferred: -1,
	},
	// not officially used anywhere, but seen in the wild
	{
		rows: []catalogRow{
			{pattern: `d\M\uuuu`, hint: HintDMY, canonical: '\\', alternates: "_"},
			{pattern: `M\d\uuuu`, hint: HintMDY, canonical: '\\', alternates: "_"},
		},
		preferred: -1,
	},
}

// twoDigitYearFamilies mirror ambiguousFamilies with two-digit years. They
// are only usable when a base year is bound, so they exist solely in
// parsers built with NewWithBaseYear.
var twoDigitYearFamilies = []ambiguityFamily{
	{
		rows: []catalogRow{
			{pattern: "d.M.uu", hint: HintDMY},
			{pattern: "M.d.uu", hint: HintMDY},
		},
		preferred: 0,
	},
	{
		rows: []catalogRow{
			{pattern: "d/M/uu", hint: HintDMY, canonical: '/', alternates: string(charHyphen) + string(charMinus)},
			{pattern: "M/d/uu", hint: HintMDY, canonical: '/', alternates: string(charHyphen) + string(charMinus)},
		},
		preferred: -1,
	},
	{
		rows: []catalogRow{
			{pattern: "ddMMuu", hint: HintDMY},
			{pattern: "MMdduu", hint: HintMDY},
		},
		preferred: -1,
	},
	{
		rows: []catalogRow{
			{pattern: `d\M\uu`, hint: HintDMY, canonical: '\\', alternates: "_"},
			{pattern: `M\d\uu`, hint: HintMDY, canonical: '\\', alternates: "_"},
		},
		preferred: -1,
	},
}

// twoDigitYearRows are the unambiguous two-digit-year patterns, likewise
// restricted to base-year parsers.
var twoDigitYearRows = []catalogRow{
	{pattern: "uu年M月d日", hint: HintHan},
}
