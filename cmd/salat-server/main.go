// salat-server exposes the schedule engine over a small JSON API:
//
//	GET /healthz
//	GET /v1/schedule?lat=-6.918&lon=107.607&elevation=708&date=2026-02-01&tz=7
//
// Optional query parameters: correction (table|formula|none) and
// ihtiyati=off to disable the precautionary margins.
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/adzanid/salat"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	r := gin.Default()
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/v1/schedule", scheduleHandler(cfg))

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

type scheduleResponse struct {
	Date       string             `json:"date"`
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	Elevation  float64            `json:"elevation"`
	TZOffset   float64            `json:"tz_offset_hours"`
	Correction string             `json:"correction"`
	Times      map[string]*string `json:"times"` // null when undefined
}

func scheduleHandler(cfg *config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lat, err := strconv.ParseFloat(ctx.Query("lat"), 64)
		if err != nil {
			log.Error().Err(err).Str("lat", ctx.Query("lat")).Msg("invalid lat in request")
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing lat"})
			return
		}
		lon, err := strconv.ParseFloat(ctx.Query("lon"), 64)
		if err != nil {
			log.Error().Err(err).Str("lon", ctx.Query("lon")).Msg("invalid lon in request")
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing lon"})
			return
		}

		elevation := 0.0
		if s := ctx.Query("elevation"); s != "" {
			if elevation, err = strconv.ParseFloat(s, 64); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid elevation"})
				return
			}
		}

		loc, err := salat.NewLocation(lat, lon, elevation)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tz := cfg.DefaultTZOffset
		if s := ctx.Query("tz"); s != "" {
			if tz, err = strconv.ParseFloat(s, 64); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid tz"})
				return
			}
		}

		date := time.Now().UTC()
		if s := ctx.Query("date"); s != "" {
			if date, err = time.Parse("2006-01-02", s); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
				return
			}
		}

		strategy := salat.CorrectionTable
		if s := ctx.Query("correction"); s != "" {
			if strategy, err = salat.ParseElevationCorrection(s); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		adjustments := salat.DefaultAdjustments()
		if ctx.Query("ihtiyati") == "off" {
			adjustments = salat.Adjustments{}
		}

		sched := salat.ComputeSchedule(loc, date, tz, salat.Config{Correction: strategy, Adjustments: adjustments})

		resp := scheduleResponse{
			Date:       sched.Date.Format("2006-01-02"),
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			Elevation:  loc.Elevation,
			TZOffset:   tz,
			Correction: strategy.String(),
			Times:      make(map[string]*string),
		}

		fields := map[string]salat.Instant{
			"imsak":      sched.Imsak,
			"fajr":       sched.Fajr,
			"sunrise":    sched.Sunrise,
			"dhuha":      sched.Dhuha,
			"dhuhr":      sched.Dhuhr,
			"asr":        sched.Asr,
			"maghrib":    sched.Maghrib,
			"isha":       sched.Isha,
			"half_night": sched.HalfNight,
			"last_third": sched.LastThird,
		}
		for name, inst := range fields {
			if !inst.Valid {
				resp.Times[name] = nil
				continue
			}
			s := inst.Time.Format(time.RFC3339)
			resp.Times[name] = &s
		}

		ctx.JSON(http.StatusOK, resp)
	}
}
