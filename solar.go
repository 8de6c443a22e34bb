package salat

import (
	"time"

	"github.com/adzanid/salat/internal/ephemeris"
	"github.com/adzanid/salat/internal/solver"
)

// SolarState is the Sun's ephemeris for one instant: Julian day/century
// plus the two quantities the schedule needs, apparent declination
// (degrees) and the equation of time (minutes).
type SolarState struct {
	JulianDay      float64
	JulianCentury  float64
	Declination    float64
	EquationOfTime float64
}

// ComputeSolarState evaluates the solar ephemeris at time t. It is a
// pure function of t and has no failure mode for any valid calendar
// date.
func ComputeSolarState(t time.Time) SolarState {
	return SolarState(ephemeris.At(t))
}

// SolveHourAngle returns the hour angle H (degrees) at which the Sun
// stands at targetAltitude for the given latitude and declination (all
// degrees). It returns ErrNeverReached when the Sun does not attain that
// altitude on the day in question, which callers must surface as an
// undefined time rather than substituting a default.
func SolveHourAngle(targetAltitude, latitude, declination float64) (float64, error) {
	h, ok := solver.HourAngle(targetAltitude, latitude, declination)
	if !ok {
		return 0, ErrNeverReached
	}
	return h, nil
}
