package dateparse_test

import (
	"testing"
	"time"

	"github.com/crowmagnumb/parsers/dateparse"
)

func TestResolutionRank(t *testing.T) {
	tests := []struct {
		name string
		val  dateparse.Temporal
		want int
	}{
		{"zero value", dateparse.Temporal{}, 0},
		{"year", dateparse.Temporal{Value: date(2003, 1, 1), Precision: dateparse.PrecisionYear}, 1},
		{"year-month", dateparse.Temporal{Value: date(2003, 2, 1), Precision: dateparse.PrecisionMonth}, 2},
		{"full date", dateparse.Temporal{Value: date(2003, 2, 15), Precision: dateparse.PrecisionDay}, 3},
		{"date-time", dateparse.Temporal{
			Value:     time.Date(2003, 2, 15, 10, 22, 33, 0, time.UTC),
			Precision: dateparse.PrecisionSecond,
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.ResolutionRank(); got != tt.want {
				t.Errorf("ResolutionRank() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTemporalEqual(t *testing.T) {
	ymd := dateparse.Temporal{Value: date(2003, 2, 15), Precision: dateparse.PrecisionDay}
	tests := []struct {
		name string
		a, b dateparse.Temporal
		want bool
	}{
		{"same date", ymd, dateparse.Temporal{Value: date(2003, 2, 15), Precision: dateparse.PrecisionDay}, true},
		{"different day", ymd, dateparse.Temporal{Value: date(2003, 2, 16), Precision: dateparse.PrecisionDay}, false},
		{"different precision", ymd, dateparse.Temporal{Value: date(2003, 2, 15), Precision: dateparse.PrecisionMonth}, false},
		{
			name: "same month ignores finer fields",
			a:    dateparse.Temporal{Value: date(2003, 2, 1), Precision: dateparse.PrecisionMonth},
			b:    dateparse.Temporal{Value: date(2003, 2, 27), Precision: dateparse.PrecisionMonth},
			want: true,
		},
		{
			name: "offset presence matters",
			a: dateparse.Temporal{
				Value:     time.Date(2003, 2, 15, 10, 0, 0, 0, time.UTC),
				Precision: dateparse.PrecisionSecond,
			},
			b: dateparse.Temporal{
				Value:     time.Date(2003, 2, 15, 10, 0, 0, 0, time.UTC),
				Precision: dateparse.PrecisionSecond,
				HasOffset: true,
			},
			want: false,
		},
		{
			name: "different offsets",
			a: dateparse.Temporal{
				Value:     time.Date(2003, 2, 15, 10, 0, 0, 0, time.FixedZone("", 3600)),
				Precision: dateparse.PrecisionSecond,
				HasOffset: true,
			},
			b: dateparse.Temporal{
				Value:     time.Date(2003, 2, 15, 10, 0, 0, 0, time.FixedZone("", 7200)),
				Precision: dateparse.PrecisionSecond,
				HasOffset: true,
			},
			want: false,
		},
		{"both zero", dateparse.Temporal{}, dateparse.Temporal{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTemporalString(t *testing.T) {
	tests := []struct {
		name string
		val  dateparse.Temporal
		want string
	}{
		{"zero value", dateparse.Temporal{}, ""},
		{"year", dateparse.Temporal{Value: date(2003, 1, 1), Precision: dateparse.PrecisionYear}, "2003"},
		{"year-month", dateparse.Temporal{Value: date(2003, 2, 1), Precision: dateparse.PrecisionMonth}, "2003-02"},
		{"full date", dateparse.Temporal{Value: date(2003, 2, 15), Precision: dateparse.PrecisionDay}, "2003-02-15"},
		{"hour", dateparse.Temporal{
			Value:     time.Date(2003, 2, 15, 10, 0, 0, 0, time.UTC),
			Precision: dateparse.PrecisionHour,
		}, "2003-02-15T10"},
		{"minute", dateparse.Temporal{
			Value:     time.Date(2003, 2, 15, 10, 22, 0, 0, time.UTC),
			Precision: dateparse.PrecisionMinute,
		}, "2003-02-15T10:22"},
		{"second", dateparse.Temporal{
			Value:     time.Date(2003, 2, 15, 10, 22, 33, 0, time.UTC),
			Precision: dateparse.PrecisionSecond,
		}, "2003-02-15T10:22:33"},
		{"second with offset", dateparse.Temporal{
			Value:     time.Date(1978, 12, 21, 2, 12, 43, 0, time.FixedZone("", 3600)),
			Precision: dateparse.PrecisionSecond,
			HasOffset: true,
		}, "1978-12-21T02:12:43+01:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
