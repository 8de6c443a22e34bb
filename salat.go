// Package salat computes daily Islamic prayer times following the
// Indonesian Ministry of Religious Affairs (Kemenag/MABIMS) criteria.
//
// The public API is a handful of pure functions: the solar ephemeris,
// the hour-angle solver, and ComputeSchedule which assembles a full day
// of prayer instants for a location, date and UTC offset. Nothing is
// cached or shared between calls, so computing schedules for many
// (location, date) pairs in parallel needs no coordination.
//
// Currently implemented:
//   - Fajr/Sunrise/Dhuhr/Asr/Maghrib/Isha from sun-altitude targets
//   - Imsak, Dhuha, Half-Night and Last-Third derived instants
//   - Elevation correction for sunrise/sunset (formula or table dip)
//   - Configurable ihtiyati (precautionary) minute margins
package salat

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sun-altitude targets and fixed offsets of the Kemenag criteria.
const (
	// FajrAltitude is the Sun's altitude at dawn: 20 degrees below the
	// eastern horizon.
	FajrAltitude = -20.0

	// IshaAltitude is the Sun's altitude at nightfall: 18 degrees below
	// the western horizon.
	IshaAltitude = -18.0

	// HorizonAltitude is the altitude of the Sun's center when its upper
	// limb sits on a sea-level horizon, refraction included.
	HorizonAltitude = -0.8333

	// ImsakOffset is how long before Fajr the fast begins.
	ImsakOffset = 10 * time.Minute

	// DhuhaOffset is the fixed interval after sunrise at which Dhuha is
	// reported.
	DhuhaOffset = 33 * time.Minute
)

var (
	// ErrInvalidLocation is returned when a coordinate or elevation is out
	// of range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrNeverReached is returned when the Sun does not reach a requested
	// altitude on that date at that latitude.
	ErrNeverReached = errors.New("sun never reaches the requested altitude")
)

// Location is an observer's position. Construct it with NewLocation so
// the ranges are checked once, up front; the solvers assume valid input.
type Location struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Elevation float64 // meters above sea level
}

// NewLocation validates and builds a Location. Elevation is meters above
// sea level; pass 0 for sea level.
func NewLocation(lat, lon, elevation float64) (Location, error) {
	switch {
	case math.IsNaN(lat) || lat < -90 || lat > 90:
		return Location{}, fmt.Errorf("latitude %v outside [-90, 90]: %w", lat, ErrInvalidLocation)
	case math.IsNaN(lon) || lon < -180 || lon > 180:
		return Location{}, fmt.Errorf("longitude %v outside [-180, 180]: %w", lon, ErrInvalidLocation)
	case math.IsNaN(elevation) || elevation < 0:
		return Location{}, fmt.Errorf("elevation %v below sea level: %w", elevation, ErrInvalidLocation)
	}
	return Location{Latitude: lat, Longitude: lon, Elevation: elevation}, nil
}

// ElevationCorrection selects how observer elevation adjusts sunrise and
// sunset. The published discretized table is the default; the continuous
// dip formula and the table can disagree by a minute or two at the same
// elevation, so the choice is left to the caller.
type ElevationCorrection int

const (
	// CorrectionTable uses the published elevation-range → minutes table.
	CorrectionTable ElevationCorrection = iota
	// CorrectionFormula uses the continuous horizon-dip formula.
	CorrectionFormula
	// CorrectionNone ignores elevation entirely.
	CorrectionNone
)

func (c ElevationCorrection) String() string {
	switch c {
	case CorrectionTable:
		return "table"
	case CorrectionFormula:
		return "formula"
	case CorrectionNone:
		return "none"
	default:
		return fmt.Sprintf("ElevationCorrection(%d)", int(c))
	}
}

// ParseElevationCorrection maps "table", "formula" or "none" to the
// corresponding strategy.
func ParseElevationCorrection(s string) (ElevationCorrection, error) {
	switch s {
	case "table":
		return CorrectionTable, nil
	case "formula":
		return CorrectionFormula, nil
	case "none":
		return CorrectionNone, nil
	default:
		return CorrectionTable, fmt.Errorf("unknown elevation correction %q (use table, formula, or none)", s)
	}
}

// Adjustments are the per-prayer ihtiyati margins in minutes, applied to
// the raw astronomical times. The zero value disables ihtiyati.
type Adjustments struct {
	Fajr    int
	Sunrise int
	Dhuhr   int
	Asr     int
	Maghrib int
	Isha    int
}

// DefaultAdjustments returns the customary Kemenag margins: +2 minutes
// everywhere except Sunrise, which is nudged 2 minutes earlier.
func DefaultAdjustments() Adjustments {
	return Adjustments{Fajr: 2, Sunrise: -2, Dhuhr: 2, Asr: 2, Maghrib: 2, Isha: 2}
}

// Config selects the elevation-correction strategy and the ihtiyati
// margins for a schedule computation.
type Config struct {
	Correction  ElevationCorrection
	Adjustments Adjustments
}

// DefaultConfig is the official Kemenag setup: table-based elevation
// correction with the default ihtiyati margins.
func DefaultConfig() Config {
	return Config{Correction: CorrectionTable, Adjustments: DefaultAdjustments()}
}

// Instant is one named clock time of a schedule. Valid is false when the
// underlying hour-angle solve had no solution (the Sun never reached the
// target altitude); the Time field is then meaningless and must not be
// rendered as a real clock value.
type Instant struct {
	Time  time.Time
	Valid bool
}

// shift moves a valid instant by d and leaves an invalid one untouched.
func (i Instant) shift(d time.Duration) Instant {
	if !i.Valid {
		return i
	}
	i.Time = i.Time.Add(d)
	return i
}

// Schedule is one day's prayer times at one location. Any field may be
// invalid at extreme latitudes; a schedule with invalid fields is only
// partially ordered and callers must check Valid before comparing.
type Schedule struct {
	Date     time.Time // midnight of the computed day, in the schedule's zone
	Location Location

	Imsak     Instant
	Fajr      Instant
	Sunrise   Instant
	Dhuha     Instant
	Dhuhr     Instant
	Asr       Instant
	Maghrib   Instant
	Isha      Instant
	HalfNight Instant
	LastThird Instant
}
