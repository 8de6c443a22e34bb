package salat

import (
	"time"

	"github.com/adzanid/salat/internal/ephemeris"
	"github.com/adzanid/salat/internal/horizon"
	"github.com/adzanid/salat/internal/solver"
	"github.com/adzanid/salat/internal/timeutil"
)

// ComputeSchedule assembles the full prayer schedule for loc on the
// calendar date of `date`, in a fixed zone tzOffsetHours ahead of UTC.
// Only the year/month/day of `date` are used; its own zone is ignored.
//
// The computation is a single pass: ephemeris at local noon, one
// hour-angle solve per altitude target, elevation correction on sunrise
// and maghrib, then the ihtiyati margins and derived instants. Night
// fractions come from the *following* day's Fajr, computed with the same
// configuration, so the across-midnight difference is taken between
// absolute instants instead of wrapped clock floats.
func ComputeSchedule(loc Location, date time.Time, tzOffsetHours float64, cfg Config) Schedule {
	zone := timeutil.FixedZone(tzOffsetHours)
	year, month, day := date.Date()
	adj := cfg.Adjustments

	raw := solveDay(loc, year, month, day, tzOffsetHours, cfg, zone)

	s := Schedule{
		Date:     time.Date(year, month, day, 0, 0, 0, 0, zone),
		Location: loc,
	}

	s.Fajr = raw.fajr.shift(minutes(adj.Fajr))
	s.Imsak = s.Fajr.shift(-ImsakOffset)
	s.Sunrise = raw.sunrise.shift(minutes(adj.Sunrise))
	s.Dhuha = s.Sunrise.shift(DhuhaOffset)
	s.Dhuhr = raw.dhuhr.shift(minutes(adj.Dhuhr))
	s.Asr = raw.asr.shift(minutes(adj.Asr))
	s.Maghrib = raw.maghrib.shift(minutes(adj.Maghrib))
	s.Isha = raw.isha.shift(minutes(adj.Isha))

	// Tomorrow's Fajr anchors the night-fraction instants. time.Date
	// normalizes day+1 across month and year boundaries.
	next := time.Date(year, month, day+1, 0, 0, 0, 0, zone)
	ny, nm, nd := next.Date()
	nextFajr := solveDay(loc, ny, nm, nd, tzOffsetHours, cfg, zone).fajr.shift(minutes(adj.Fajr))

	if s.Maghrib.Valid && nextFajr.Valid {
		night := nextFajr.Time.Sub(s.Maghrib.Time)
		if night > 0 {
			s.HalfNight = Instant{Time: s.Maghrib.Time.Add(night / 2), Valid: true}
			s.LastThird = Instant{Time: s.Maghrib.Time.Add(night * 2 / 3), Valid: true}
		}
	}

	return s
}

func minutes(m int) time.Duration {
	return time.Duration(m) * time.Minute
}

// rawDay holds one date's unadjusted instants: elevation-corrected but
// before any ihtiyati margin.
type rawDay struct {
	fajr    Instant
	sunrise Instant
	dhuhr   Instant
	asr     Instant
	maghrib Instant
	isha    Instant
}

func solveDay(loc Location, year int, month time.Month, day int, tzOffsetHours float64, cfg Config, zone *time.Location) rawDay {
	// Declination and the equation of time move slowly enough that one
	// evaluation at local noon serves the whole day.
	noonLocal := time.Date(year, month, day, 12, 0, 0, 0, zone)
	st := ephemeris.At(noonLocal)
	noon := solver.SolarNoon(st.EquationOfTime, loc.Longitude, tzOffsetHours)

	var dip float64
	var corrMinutes int
	switch cfg.Correction {
	case CorrectionTable:
		dip = horizon.Dip(loc.Elevation)
		corrMinutes = horizon.TableMinutes(loc.Elevation)
	case CorrectionFormula:
		dip = horizon.Dip(loc.Elevation)
		corrMinutes = horizon.FormulaMinutes(loc.Elevation)
	}

	at := func(altitude float64, side solver.Side, extraMinutes int) Instant {
		h, ok := solver.HourAngle(altitude, loc.Latitude, st.Declination)
		if !ok {
			return Instant{}
		}
		hours := solver.ClockHours(noon, h, side) + float64(extraMinutes)/60.0
		return Instant{Time: timeutil.ClockInstant(year, month, day, hours, zone), Valid: true}
	}

	// From a height the visible horizon sits below the astronomical one,
	// so the rise/set target drops by the dip and the strategy's minute
	// value pulls sunrise earlier and pushes sunset later.
	horizonAlt := HorizonAltitude - dip

	return rawDay{
		fajr:    at(FajrAltitude, solver.BeforeNoon, 0),
		sunrise: at(horizonAlt, solver.BeforeNoon, -corrMinutes),
		dhuhr:   Instant{Time: timeutil.ClockInstant(year, month, day, noon, zone), Valid: true},
		asr:     at(solver.AsrAltitude(loc.Latitude, st.Declination), solver.AfterNoon, 0),
		maghrib: at(horizonAlt, solver.AfterNoon, corrMinutes),
		isha:    at(IshaAltitude, solver.AfterNoon, 0),
	}
}
