// Package horizon converts observer elevation into the horizon-dip angle
// and the discretized minute corrections used for sunrise and sunset.
package horizon

import "math"

// Dip returns the horizon-dip angle in degrees for an elevation in
// meters: 1.76·√elevation arcminutes. Non-positive elevations dip 0.
func Dip(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	return 1.76 * math.Sqrt(elevation) / 60.0
}

// FormulaMinutes is the continuous-formula minute correction: the dip
// angle converted to time at 4 minutes per degree, rounded.
func FormulaMinutes(elevation float64) int {
	return int(math.Round(Dip(elevation) * 4.0))
}

// tableSteps maps elevation thresholds (meters, inclusive lower bound) to
// fixed minute corrections. Kept sorted descending for the lookup below.
var tableSteps = []struct {
	floorMeters float64
	minutes     int
}{
	{2000, 6},
	{1700, 5},
	{1300, 4},
	{1000, 3},
	{700, 2},
	{250, 1},
	{0, 0},
}

// TableMinutes is the discretized minute correction published for common
// Indonesian elevations. It is monotonically non-decreasing in elevation;
// beyond 2500 m it grows by one minute per further 250 m.
func TableMinutes(elevation float64) int {
	if elevation >= 2500 {
		return 6 + int(math.Ceil((elevation-2500.0)/250.0))
	}
	for _, s := range tableSteps {
		if elevation >= s.floorMeters {
			return s.minutes
		}
	}
	return 0
}
