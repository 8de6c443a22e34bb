// salat-compare prints the engine's raw sunrise and sunset next to two
// independent implementations (go-sunrise and suncalc) over a run of
// days, with summary error statistics. Handy for spotting drift after
// touching the ephemeris constants.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sixdouglas/suncalc"

	"github.com/adzanid/salat"
	"github.com/adzanid/salat/internal/timeutil"
)

type signedStats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *signedStats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *signedStats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func (s *signedStats) report(label string) {
	fmt.Printf("\n%s (minutes, ours - theirs):\n", label)
	fmt.Printf("  count: %d\n", s.count)
	fmt.Printf("  min:   %.3f\n", s.min)
	fmt.Printf("  max:   %.3f\n", s.max)
	fmt.Printf("  mean:  %.3f\n", s.mean())
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		lat     = flag.Float64("lat", -6.9179131, "latitude in degrees (north positive)")
		lon     = flag.Float64("lon", 107.6072436, "longitude in degrees (east positive)")
		tz      = flag.Float64("tz", 7.0, "UTC offset in hours")
		startS  = flag.String("start", "", "start date in YYYY-MM-DD (optional, defaults to today)")
		days    = flag.Int("days", 30, "number of days to compare")
		verbose = flag.Bool("verbose", false, "print per-day rows instead of only the summary")
	)

	flag.Parse()

	loc, err := salat.NewLocation(*lat, *lon, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid location")
	}

	var start time.Time
	if *startS == "" {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		start, err = time.Parse("2006-01-02", *startS)
		if err != nil {
			log.Fatal().Err(err).Str("start", *startS).Msg("invalid -start")
		}
	}

	// Raw horizon crossings: no elevation correction, no ihtiyati.
	cfg := salat.Config{Correction: salat.CorrectionNone}
	zone := timeutil.FixedZone(*tz)

	var riseVsGoSunrise, setVsGoSunrise signedStats
	var riseVsSuncalc, setVsSuncalc signedStats

	for i := 0; i < *days; i++ {
		date := start.AddDate(0, 0, i)
		sched := salat.ComputeSchedule(loc, date, *tz, cfg)

		if !sched.Sunrise.Valid || !sched.Maghrib.Valid {
			log.Warn().Str("date", date.Format("2006-01-02")).Msg("no horizon crossing, skipping")
			continue
		}

		gsRise, gsSet := sunrise.SunriseSunset(*lat, *lon, date.Year(), date.Month(), date.Day())

		// suncalc keys its results off the instant, so hand it local noon
		// to keep all three on the same calendar day.
		noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, zone)
		scTimes := suncalc.GetTimes(noon, *lat, *lon)
		scRise := scTimes[suncalc.Sunrise].Value
		scSet := scTimes[suncalc.Sunset].Value

		dRiseGS := sched.Sunrise.Time.Sub(gsRise).Minutes()
		dSetGS := sched.Maghrib.Time.Sub(gsSet).Minutes()
		dRiseSC := sched.Sunrise.Time.Sub(scRise).Minutes()
		dSetSC := sched.Maghrib.Time.Sub(scSet).Minutes()

		riseVsGoSunrise.add(dRiseGS)
		setVsGoSunrise.add(dSetGS)
		riseVsSuncalc.add(dRiseSC)
		setVsSuncalc.add(dSetSC)

		if *verbose {
			fmt.Printf("%s  rise ours=%s gosunrise=%+.2f suncalc=%+.2f  set ours=%s gosunrise=%+.2f suncalc=%+.2f\n",
				date.Format("2006-01-02"),
				sched.Sunrise.Time.Format("15:04:05"), dRiseGS, dRiseSC,
				sched.Maghrib.Time.Format("15:04:05"), dSetGS, dSetSC)
		}
	}

	fmt.Println("=== salat-compare summary ===")
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("Start:   %s (%d days, UTC%+g)\n", start.Format("2006-01-02"), *days, *tz)

	riseVsGoSunrise.report("Sunrise vs go-sunrise")
	setVsGoSunrise.report("Sunset vs go-sunrise")
	riseVsSuncalc.report("Sunrise vs suncalc")
	setVsSuncalc.report("Sunset vs suncalc")
}
