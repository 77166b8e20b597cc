package dateparse_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/crowmagnumb/parsers/dateparse"
)

func temporal(value time.Time, p dateparse.Precision) *dateparse.Temporal {
	return &dateparse.Temporal{Value: value, Precision: p}
}

func TestBestResolution(t *testing.T) {
	yearOnly := temporal(date(2003, 1, 1), dateparse.PrecisionYear)
	yearMonth := temporal(date(2003, 2, 1), dateparse.PrecisionMonth)
	fullDate := temporal(date(2003, 2, 15), dateparse.PrecisionDay)

	tests := []struct {
		name string
		a, b *dateparse.Temporal
		want *dateparse.Temporal
	}{
		{"both absent", nil, nil, nil},
		{"left absent", nil, fullDate, fullDate},
		{"right absent", fullDate, nil, fullDate},
		{"higher resolution wins", yearMonth, fullDate, fullDate},
		{"higher resolution wins reversed", fullDate, yearMonth, fullDate},
		{"year extends to full date", yearOnly, fullDate, fullDate},
		{
			name: "month conflict",
			a:    fullDate,
			b:    temporal(date(2003, 3, 15), dateparse.PrecisionDay),
			want: nil,
		},
		{
			name: "year conflict",
			a:    yearOnly,
			b:    temporal(date(2004, 2, 1), dateparse.PrecisionMonth),
			want: nil,
		},
		{
			name: "day conflict",
			a:    fullDate,
			b:    temporal(date(2003, 2, 16), dateparse.PrecisionDay),
			want: nil,
		},
		{
			name: "rank tie returns the second value",
			a: &dateparse.Temporal{
				Value:     time.Date(2003, 2, 15, 10, 0, 0, 0, time.UTC),
				Precision: dateparse.PrecisionHour,
			},
			b:    fullDate,
			want: fullDate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateparse.BestResolution(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BestResolution mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSameYearMonthDay(t *testing.T) {
	fullDate := temporal(date(2003, 1, 1), dateparse.PrecisionDay)
	tests := []struct {
		name string
		a, b *dateparse.Temporal
		want bool
	}{
		{"same date", fullDate, temporal(date(2003, 1, 1), dateparse.PrecisionDay), true},
		{"different date", fullDate, temporal(date(2003, 1, 2), dateparse.PrecisionDay), false},
		// an incomplete side can never represent the same date
		{"left incomplete", temporal(date(2003, 1, 1), dateparse.PrecisionYear), fullDate, false},
		{"right incomplete", fullDate, temporal(date(2003, 1, 1), dateparse.PrecisionMonth), false},
		{"left absent", nil, fullDate, false},
		{"both absent", nil, nil, false},
		{
			name: "date-time matches its date",
			a:    fullDate,
			b: &dateparse.Temporal{
				Value:     time.Date(2003, 1, 1, 10, 22, 33, 0, time.UTC),
				Precision: dateparse.PrecisionSecond,
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateparse.SameYearMonthDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameYearMonthDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToTime(t *testing.T) {
	tests := []struct {
		name         string
		val          *dateparse.Temporal
		ignoreOffset bool
		want         time.Time
		wantOK       bool
	}{
		{"absent", nil, false, time.Time{}, false},
		{"zero value", &dateparse.Temporal{}, false, time.Time{}, false},
		{
			name:   "year projects to January first",
			val:    temporal(date(2003, 1, 1), dateparse.PrecisionYear),
			want:   time.Date(2003, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "year-month projects to first of month",
			val:    temporal(date(2003, 2, 1), dateparse.PrecisionMonth),
			want:   time.Date(2003, 2, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "date projects to start of day",
			val:    temporal(date(2003, 2, 15), dateparse.PrecisionDay),
			want:   time.Date(2003, 2, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "date-time without offset is UTC",
			val: &dateparse.Temporal{
				Value:     time.Date(2003, 2, 15, 10, 22, 33, 0, time.UTC),
				Precision: dateparse.PrecisionSecond,
			},
			want:   time.Date(2003, 2, 15, 10, 22, 33, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "explicit offset honored",
			val: &dateparse.Temporal{
				Value:     time.Date(1978, 12, 21, 2, 12, 43, 0, time.FixedZone("", 3600)),
				Precision: dateparse.PrecisionSecond,
				HasOffset: true,
			},
			want:   time.Date(1978, 12, 21, 1, 12, 43, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "explicit offset suppressed",
			val: &dateparse.Temporal{
				Value:     time.Date(1978, 12, 21, 2, 12, 43, 0, time.FixedZone("", 3600)),
				Precision: dateparse.PrecisionSecond,
				HasOffset: true,
			},
			ignoreOffset: true,
			want:         time.Date(1978, 12, 21, 2, 12, 43, 0, time.UTC),
			wantOK:       true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dateparse.ToTime(tt.val, tt.ignoreOffset)
			if ok != tt.wantOK {
				t.Fatalf("ToTime() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ToTime() = %v, want %v", got, tt.want)
			}
		})
	}
}
