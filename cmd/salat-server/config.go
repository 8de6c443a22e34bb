package main

import (
	"fmt"
	"os"
	"strconv"
)

// config holds environment-based settings.
type config struct {
	Addr            string
	DefaultTZOffset float64
}

// loadConfig reads configuration from environment variables.
func loadConfig() (*config, error) {
	addr := os.Getenv("SALAT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	tz := 7.0 // WIB
	if s := os.Getenv("SALAT_DEFAULT_TZ"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SALAT_DEFAULT_TZ %q: %w", s, err)
		}
		tz = v
	}

	return &config{Addr: addr, DefaultTZOffset: tz}, nil
}
