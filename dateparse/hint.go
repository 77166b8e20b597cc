package dateparse

// FormatHint narrows the candidate patterns for a parse call. A hinted call
// only tries the patterns registered under that hint and never falls back
// to ambiguity resolution.
type FormatHint string

const (
	HintNone      FormatHint = "NONE"
	HintYear      FormatHint = "Y"
	HintYearMonth FormatHint = "YM"
	HintYMD       FormatHint = "YMD"
	HintYMDT      FormatHint = "YMDT"
	HintDMY       FormatHint = "DMY"
	HintMDY       FormatHint = "MDY"
	HintHan       FormatHint = "HAN"
)

// HintFromString maps the external tag strings to format hints. Unknown or
// empty tags behave as HintNone.
func HintFromString(s string) FormatHint {
	switch s {
	case "year":
		return HintYear
	case "year-month":
		return HintYearMonth
	case "year-month-day":
		return HintYMD
	case "year-month-day-time":
		return HintYMDT
	case "day-month-year":
		return HintDMY
	case "month-day-year":
		return HintMDY
	case "han-calendar-style":
		return HintHan
	default:
		return HintNone
	}
}
