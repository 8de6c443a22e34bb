package solver

import (
	"math"
	"testing"
)

func TestHourAngle(t *testing.T) {
	tests := []struct {
		name        string
		altitude    float64
		latitude    float64
		declination float64
		want        float64
		tol         float64
	}{
		{
			// Equator at equinox: the horizon crossing is exactly a
			// quarter turn from the meridian.
			name:     "equator equinox horizon",
			altitude: 0, latitude: 0, declination: 0,
			want: 90, tol: 1e-9,
		},
		{
			// With the refraction-corrected horizon altitude the angle
			// grows by the same 0.8333 degrees.
			name:     "equator equinox apparent horizon",
			altitude: -0.8333, latitude: 0, declination: 0,
			want: 90.8333, tol: 1e-6,
		},
		{
			name:     "dawn angle at tropical latitude",
			altitude: -20, latitude: -6.9179131, declination: -17.128,
			want: 113.45, tol: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HourAngle(tt.altitude, tt.latitude, tt.declination)
			if !ok {
				t.Fatalf("HourAngle(%v, %v, %v) unexpectedly unreachable", tt.altitude, tt.latitude, tt.declination)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("HourAngle() = %.6f, want %.6f ± %v", got, tt.want, tt.tol)
			}
		})
	}
}

func TestHourAngleUnreachable(t *testing.T) {
	tests := []struct {
		name        string
		altitude    float64
		latitude    float64
		declination float64
	}{
		{
			// Midnight sun: at 78°N in June the Sun never dips to the
			// horizon.
			name:     "polar day sunset",
			altitude: -0.8333, latitude: 78.0, declination: 23.2,
		},
		{
			// Polar night: the Sun never climbs to the horizon either.
			name:     "polar night sunrise",
			altitude: -0.8333, latitude: 78.0, declination: -23.2,
		},
		{
			name:     "dawn angle never reached in arctic summer",
			altitude: -20, latitude: 70.0, declination: 23.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h, ok := HourAngle(tt.altitude, tt.latitude, tt.declination); ok {
				t.Errorf("HourAngle(%v, %v, %v) = %v, want unreachable", tt.altitude, tt.latitude, tt.declination, h)
			}
		})
	}
}

func TestSolarNoon(t *testing.T) {
	// Greenwich with a zeroed equation of time is exactly noon.
	if got := SolarNoon(0, 0, 0); got != 12.0 {
		t.Errorf("SolarNoon(0,0,0) = %v, want 12", got)
	}

	// Bandung: east of the UTC+7 reference meridian, sundial behind the
	// clock in February.
	got := SolarNoon(-13.52, 107.6072436, 7.0)
	want := 12.0 + 13.52/60.0 - 107.6072436/15.0 + 7.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SolarNoon() = %v, want %v", got, want)
	}
	if got < 12.0 || got > 12.1 {
		t.Errorf("SolarNoon() = %v, expected a few minutes past 12h", got)
	}
}

func TestClockHours(t *testing.T) {
	if got := ClockHours(12.0, 90.0, BeforeNoon); got != 6.0 {
		t.Errorf("ClockHours(before) = %v, want 6", got)
	}
	if got := ClockHours(12.0, 90.0, AfterNoon); got != 18.0 {
		t.Errorf("ClockHours(after) = %v, want 18", got)
	}
}

func TestAsrAltitude(t *testing.T) {
	// When the Sun culminates in the zenith (latitude == declination) the
	// noon shadow vanishes and the Asr altitude is exactly 45 degrees.
	if got := AsrAltitude(20.0, 20.0); math.Abs(got-45.0) > 1e-9 {
		t.Errorf("AsrAltitude(zenith case) = %v, want 45", got)
	}

	// Bandung in early February.
	got := AsrAltitude(-6.9179131, -17.128)
	if math.Abs(got-40.27) > 0.05 {
		t.Errorf("AsrAltitude() = %.4f, want 40.27 ± 0.05", got)
	}

	// A larger latitude/declination gap lowers the Asr altitude.
	if hi, lo := AsrAltitude(10, 0), AsrAltitude(40, 0); hi <= lo {
		t.Errorf("AsrAltitude should fall as |lat-decl| grows: %.3f <= %.3f", hi, lo)
	}
}
