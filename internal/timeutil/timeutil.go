// Package timeutil holds the small time and angle helpers shared by the
// ephemeris, the hour-angle solver and the schedule assembler.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

// JulianDay returns the Julian Day for the given instant (UTC-based).
//
// Standard Gregorian-to-Julian conversion: January and February are
// treated as months 13 and 14 of the previous year.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	A := y / 100
	B := 2 - A + A/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// JulianCentury returns centuries since J2000.0 for the given Julian Day.
func JulianCentury(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// -----------------------------
// Degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// -----------------------------
// Fixed-offset zones and clock instants
// -----------------------------

// FixedZone builds a *time.Location for a raw UTC offset in (possibly
// fractional) hours, e.g. +7.0 for WIB or +5.75 for Kathmandu. Schedules
// carry the offset directly instead of consulting the tz database.
func FixedZone(offsetHours float64) *time.Location {
	seconds := int(math.Round(offsetHours * 3600))
	return time.FixedZone(fmt.Sprintf("UTC%+g", offsetHours), seconds)
}

// ClockInstant converts decimal hours since local midnight into an instant
// on the given calendar date in loc. Hours may be negative or exceed 24;
// the day rollover is carried into the result. The instant is rounded to
// the nearest second to avoid nanosecond noise.
func ClockInstant(year int, month time.Month, day int, hours float64, loc *time.Location) time.Time {
	base := time.Date(year, month, day, 0, 0, 0, 0, loc)
	sec := int64(math.Round(hours * 3600))
	return base.Add(time.Duration(sec) * time.Second)
}
