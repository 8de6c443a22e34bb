// Package ephemeris computes the Sun's apparent declination and the
// equation of time for an instant, using the truncated NOAA/Meeus
// polynomial series. Accuracy is a fraction of an arcminute in
// declination and a fraction of a minute in the equation of time, which
// is plenty for minute-resolution prayer schedules.
package ephemeris

import (
	"math"
	"time"

	"github.com/adzanid/salat/internal/timeutil"
)

// State is the solar ephemeris for one instant. It is a pure function of
// the instant and never mutated after computation.
type State struct {
	JulianDay      float64
	JulianCentury  float64
	Declination    float64 // degrees, north positive
	EquationOfTime float64 // minutes, apparent minus mean solar time
}

// At evaluates the solar ephemeris at time t.
//
// The chain follows the NOAA spreadsheet / Meeus chapter 25: geometric
// mean longitude and anomaly, orbital eccentricity, equation of center,
// true and apparent longitude (with the Ω nutation/aberration term),
// mean and corrected obliquity, then declination and the five-term
// equation of time.
func At(t time.Time) State {
	jd := timeutil.JulianDay(t)
	T := timeutil.JulianCentury(jd)

	// Geometric mean longitude L0 (deg, normalized) and mean anomaly M (deg).
	L0 := timeutil.Normalize360(280.46646 + T*(36000.76983+T*0.0003032))
	M := 357.52911 + T*(35999.05029-0.0001537*T)

	// Eccentricity of Earth's orbit.
	e := 0.016708634 - T*(0.000042037+0.0000001267*T)

	// Equation of center.
	C := timeutil.SinD(M)*(1.914602-T*(0.004817+0.000014*T)) +
		timeutil.SinD(2*M)*(0.019993-0.000101*T) +
		timeutil.SinD(3*M)*0.000289

	trueLong := L0 + C

	// Apparent longitude: correct for nutation and aberration.
	omega := 125.04 - 1934.136*T
	lambda := trueLong - 0.00569 - 0.00478*timeutil.SinD(omega)

	// Mean obliquity of the ecliptic, then the Ω correction.
	eps0 := 23.0 + (26.0+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60.0)/60.0
	eps := eps0 + 0.00256*timeutil.CosD(omega)

	decl := timeutil.Rad2Deg(math.Asin(timeutil.SinD(eps) * timeutil.SinD(lambda)))

	// Equation of time, five-term NOAA expansion. The sum is in radians;
	// ×4×(180/π) converts to minutes of time.
	y := timeutil.TanD(eps / 2.0)
	y *= y

	eqTime := y*timeutil.SinD(2*L0) -
		2.0*e*timeutil.SinD(M) +
		4.0*e*y*timeutil.SinD(M)*timeutil.CosD(2*L0) -
		0.5*y*y*timeutil.SinD(4*L0) -
		1.25*e*e*timeutil.SinD(2*M)
	eqTime = 4.0 * timeutil.Rad2Deg(eqTime)

	return State{
		JulianDay:      jd,
		JulianCentury:  T,
		Declination:    decl,
		EquationOfTime: eqTime,
	}
}
