package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adzanid/salat"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		lat        = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon        = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		elev       = flag.Float64("elev", 0, "elevation in meters above sea level")
		dateS      = flag.String("date", "", "date in YYYY-MM-DD (optional, defaults to today)")
		tz         = flag.Float64("tz", 7.0, "UTC offset in hours (e.g. 7 for WIB, 5.75 for Kathmandu)")
		correction = flag.String("correction", "table", "elevation correction: table, formula, or none")
		noIhtiyati = flag.Bool("no-ihtiyati", false, "disable the precautionary minute margins")
		jsonOut    = flag.Bool("json", false, "output result as JSON")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `salat – daily prayer times (Kemenag/MABIMS criteria)

Usage:
  salat [flags]

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *lat == 0 && *lon == 0 {
		log.Warn().Msg("lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
	}

	loc, err := salat.NewLocation(*lat, *lon, *elev)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid location")
	}

	var date time.Time
	if *dateS == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		date, err = time.Parse("2006-01-02", *dateS)
		if err != nil {
			log.Fatal().Err(err).Str("date", *dateS).Msg("invalid -date")
		}
	}

	strategy, err := salat.ParseElevationCorrection(*correction)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -correction")
	}

	cfg := salat.Config{Correction: strategy, Adjustments: salat.DefaultAdjustments()}
	if *noIhtiyati {
		cfg.Adjustments = salat.Adjustments{}
	}

	sched := salat.ComputeSchedule(loc, date, *tz, cfg)

	if *jsonOut {
		printJSON(sched, *tz, strategy)
	} else {
		printHuman(sched, *tz, strategy)
	}
}

// rows lists the schedule fields in display order.
func rows(sched salat.Schedule) []struct {
	Name    string
	Instant salat.Instant
} {
	return []struct {
		Name    string
		Instant salat.Instant
	}{
		{"Imsak", sched.Imsak},
		{"Fajr", sched.Fajr},
		{"Sunrise", sched.Sunrise},
		{"Dhuha", sched.Dhuha},
		{"Dhuhr", sched.Dhuhr},
		{"Asr", sched.Asr},
		{"Maghrib", sched.Maghrib},
		{"Isha", sched.Isha},
		{"Half night", sched.HalfNight},
		{"Last third", sched.LastThird},
	}
}

func printHuman(sched salat.Schedule, tz float64, strategy salat.ElevationCorrection) {
	fmt.Printf("Prayer times for lat=%.6f lon=%.6f elev=%.0fm\n",
		sched.Location.Latitude, sched.Location.Longitude, sched.Location.Elevation)
	fmt.Printf("Date: %s (UTC%+g, %s correction)\n\n", sched.Date.Format("2006-01-02"), tz, strategy)

	for _, r := range rows(sched) {
		if !r.Instant.Valid {
			fmt.Printf("%-11s —\n", r.Name+":")
			continue
		}
		clock := r.Instant.Time.Format("15:04")
		// Night instants roll past midnight; flag the day change.
		if d := r.Instant.Time.Day(); d != sched.Date.Day() {
			clock += " (+1d)"
		}
		fmt.Printf("%-11s %s\n", r.Name+":", clock)
	}
}

type jsonOutput struct {
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	Elevation  float64            `json:"elevation"`
	Date       string             `json:"date"` // YYYY-MM-DD
	TZOffset   float64            `json:"tz_offset_hours"`
	Correction string             `json:"correction"`
	Times      map[string]*string `json:"times"` // null when undefined
}

func printJSON(sched salat.Schedule, tz float64, strategy salat.ElevationCorrection) {
	out := jsonOutput{
		Latitude:   sched.Location.Latitude,
		Longitude:  sched.Location.Longitude,
		Elevation:  sched.Location.Elevation,
		Date:       sched.Date.Format("2006-01-02"),
		TZOffset:   tz,
		Correction: strategy.String(),
		Times:      make(map[string]*string),
	}

	for _, r := range rows(sched) {
		if !r.Instant.Valid {
			out.Times[r.Name] = nil
			continue
		}
		s := r.Instant.Time.Format(time.RFC3339)
		out.Times[r.Name] = &s
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("failed to encode JSON")
	}
}
