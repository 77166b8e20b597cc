// Package geo validates latitude/longitude strings from occurrence
// records. It parses leniently, rounds to a sane precision and flags
// anything suspicious as issues on the result rather than failing hard.
package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/crowmagnumb/parsers/parse"
)

// Issues flagged by ParseLatLng.
const (
	IssueCoordinateInvalid    parse.Issue = "COORDINATE_INVALID"
	IssueCoordinateRounded    parse.Issue = "COORDINATE_ROUNDED"
	IssueZeroCoordinate       parse.Issue = "ZERO_COORDINATE"
	IssuePresumedSwapped      parse.Issue = "PRESUMED_SWAPPED_COORDINATE"
	IssueCoordinateOutOfRange parse.Issue = "COORDINATE_OUT_OF_RANGE"
)

// LatLng is a decimal coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// ParseLatLng interprets string representations of a latitude and a
// longitude. Values are rounded to 5 decimals (about 1 m) before any range
// logic; 0,0 is accepted but graded Possible; a latitude outside ±90 whose
// pair would be valid swapped fails with a swapped payload for inspection.
func ParseLatLng(latitude, longitude string) parse.Result[LatLng] {
	if strings.TrimSpace(latitude) == "" && strings.TrimSpace(longitude) == "" {
		return parse.Fail[LatLng]()
	}
	lat, latOK := ParseDouble(latitude)
	lng, lngOK := ParseDouble(longitude)
	if !latOK || !lngOK {
		return parse.Fail[LatLng](IssueCoordinateInvalid)
	}

	var issues []parse.Issue
	lat, latRounded := roundTo5Decimals(lat)
	lng, lngRounded := roundTo5Decimals(lng)
	if latRounded || lngRounded {
		issues = append(issues, IssueCoordinateRounded)
	}

	// 0,0 is too suspicious to trust outright
	if lat == 0 && lng == 0 {
		issues = append(issues, IssueZeroCoordinate)
		return parse.Success(parse.Possible, LatLng{}, issues...)
	}

	if lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180 {
		return parse.Success(parse.Definite, LatLng{Lat: lat, Lng: lng}, issues...)
	}

	// If the latitude is out of range but the pair would be valid with the
	// axes exchanged, assume swapped coordinates. Whether to trust the
	// swapped value is a decision for the caller.
	if lat > 90 || lat < -90 {
		if lng >= -90 && lng <= 90 && lat >= -180 && lat <= 180 {
			issues = append(issues, IssuePresumedSwapped)
			return parse.FailWithPayload(LatLng{Lat: lat, Lng: lng}, issues...)
		}
	}

	issues = append(issues, IssueCoordinateOutOfRange)
	return parse.Fail[LatLng](issues...)
}

// ParseDouble interprets a free-form numeric string, tolerating surrounding
// whitespace and a comma used as the decimal separator. It reports false
// for anything that is not a finite number.
func ParseDouble(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// roundTo5Decimals quantizes to five decimal places, reporting whether any
// precision was actually dropped. Decimal arithmetic avoids the false
// "rounded" reports binary floats would produce.
func roundTo5Decimals(v float64) (float64, bool) {
	var d apd.Decimal
	if _, err := d.SetFloat64(v); err != nil {
		return v, false
	}
	ctx := apd.BaseContext.WithPrecision(25)
	ctx.Rounding = apd.RoundHalfUp
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, &d, -5); err != nil {
		return v, false
	}
	rounded, err := q.Float64()
	if err != nil {
		return v, false
	}
	return rounded, q.Cmp(&d) != 0
}
