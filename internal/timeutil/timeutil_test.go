package timeutil

import (
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{
			name: "J2000 epoch",
			t:    time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
		},
		{
			name: "start of 1999",
			t:    time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 2451179.5,
		},
		{
			name: "february date uses prior-year branch",
			t:    time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			want: 2461072.5,
		},
		{
			name: "leap day 2000",
			t:    time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC),
			want: 2451603.5,
		},
		{
			name: "fractional day",
			t:    time.Date(2000, time.January, 1, 18, 0, 0, 0, time.UTC),
			want: 2451545.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.t)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDay(%v) = %f, want %f", tt.t, got, tt.want)
			}
		})
	}
}

func TestJulianCentury(t *testing.T) {
	if got := JulianCentury(2451545.0); got != 0 {
		t.Errorf("JulianCentury(J2000) = %v, want 0", got)
	}
	// One Julian century after J2000.
	if got := JulianCentury(2451545.0 + 36525.0); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("JulianCentury(J2000+36525d) = %v, want 1", got)
	}
}

func TestNormalize360(t *testing.T) {
	cases := map[float64]float64{
		0:     0,
		370:   10,
		-30:   330,
		720:   0,
		359.5: 359.5,
	}
	for in, want := range cases {
		if got := Normalize360(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFixedZone(t *testing.T) {
	tests := []struct {
		offsetHours float64
		wantSeconds int
	}{
		{7.0, 7 * 3600},
		{5.75, 20700},
		{-3.5, -12600},
		{0, 0},
	}

	for _, tt := range tests {
		zone := FixedZone(tt.offsetHours)
		_, off := time.Date(2026, time.January, 1, 0, 0, 0, 0, zone).Zone()
		if off != tt.wantSeconds {
			t.Errorf("FixedZone(%v) offset = %d s, want %d s", tt.offsetHours, off, tt.wantSeconds)
		}
	}
}

func TestClockInstant(t *testing.T) {
	zone := FixedZone(7)

	got := ClockInstant(2026, time.February, 1, 12.5, zone)
	want := time.Date(2026, time.February, 1, 12, 30, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("ClockInstant(12.5) = %v, want %v", got, want)
	}

	// Hours past 24 roll into the next day.
	got = ClockInstant(2026, time.February, 1, 25.25, zone)
	want = time.Date(2026, time.February, 2, 1, 15, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("ClockInstant(25.25) = %v, want %v", got, want)
	}

	// Negative hours borrow from the previous day.
	got = ClockInstant(2026, time.February, 1, -0.5, zone)
	want = time.Date(2026, time.January, 31, 23, 30, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("ClockInstant(-0.5) = %v, want %v", got, want)
	}
}
