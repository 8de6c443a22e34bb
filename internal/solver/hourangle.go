// Package solver turns a target solar altitude into an hour angle and a
// local clock time. Unlike an iterative altitude-event search, the daily
// schedule only needs the closed-form solve: with the day's declination
// fixed, the altitude equation inverts directly through acos.
package solver

import (
	"math"

	"github.com/adzanid/salat/internal/timeutil"
)

// Side selects which meridian crossing a solved hour angle refers to.
type Side int

const (
	// BeforeNoon means the event precedes solar noon (rise-like).
	BeforeNoon Side = iota
	// AfterNoon means the event follows solar noon (set-like).
	AfterNoon
)

// HourAngle solves
//
//	sin(alt) = sin(lat)·sin(decl) + cos(lat)·cos(decl)·cos(H)
//
// for H in degrees. All inputs are degrees. ok is false when the Sun
// never reaches the requested altitude on that day at that latitude
// (polar day/night, or a degenerate Asr shadow ratio); the value is not
// clamped so callers must propagate the miss instead of inventing a time.
func HourAngle(altitude, latitude, declination float64) (float64, bool) {
	cosH := (timeutil.SinD(altitude) - timeutil.SinD(latitude)*timeutil.SinD(declination)) /
		(timeutil.CosD(latitude) * timeutil.CosD(declination))

	if cosH < -1 || cosH > 1 || math.IsNaN(cosH) {
		return 0, false
	}
	return timeutil.Rad2Deg(math.Acos(cosH)), true
}

// SolarNoon returns the local clock time of the Sun's meridian transit in
// decimal hours: 12h corrected by the equation of time, the observer's
// longitude, and the zone's UTC offset.
func SolarNoon(eqTimeMinutes, longitude, tzOffsetHours float64) float64 {
	return 12.0 - eqTimeMinutes/60.0 - longitude/15.0 + tzOffsetHours
}

// ClockHours converts a solved hour angle into decimal clock hours,
// subtracting from solar noon for rise-like events and adding for
// set-like ones.
func ClockHours(solarNoon, hourAngle float64, side Side) float64 {
	if side == BeforeNoon {
		return solarNoon - hourAngle/15.0
	}
	return solarNoon + hourAngle/15.0
}

// AsrAltitude returns the Sun altitude (degrees) at which an object's
// shadow equals its height plus the noon shadow, the Shafi'i rule:
// shadow ratio 1 + tan|lat − decl|, altitude atan(1/ratio). The result
// depends on latitude and declination, unlike the fixed twilight angles.
func AsrAltitude(latitude, declination float64) float64 {
	shadow := 1.0 + timeutil.TanD(math.Abs(latitude-declination))
	return timeutil.Rad2Deg(math.Atan(1.0 / shadow))
}
