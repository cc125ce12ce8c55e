package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	SeasonCSV  string
	SeasonXLSX string
	Thresholds Thresholds
}

// Thresholds gathers the advisory policy constants that used to be
// scattered across formulas. Passed explicitly into each service so
// tests can run against alternative configurations.
type Thresholds struct {
	RiskBandLow             float64       // score <= low  -> "low"
	RiskBandModerate        float64       // score <= mod  -> "moderate", else "high"
	GraceDaysLate           int           // days past window end still "late"
	HarvestWindowBufferDays int           // harvest window = predicted +/- buffer
	RainRadiusKM            float64       // proximity radius for rain reports
	RainWindowDays          int           // recency window for rain reports
	RainHalfLifeDays        float64       // exp decay half-life for rain weighting
	ScoreTTL                time.Duration // LCRS cache validity
	CollaboratorTimeout     time.Duration // storage/seasonal lookup budget
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RiskBandLow:             30,
		RiskBandModerate:        60,
		GraceDaysLate:           20,
		HarvestWindowBufferDays: 7,
		RainRadiusKM:            50,
		RainWindowDays:          30,
		RainHalfLifeDays:        7,
		ScoreTTL:                90 * 24 * time.Hour,
		CollaboratorTimeout:     2 * time.Second,
	}
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}

	th := DefaultThresholds()
	th.GraceDaysLate = getInt("GRACE_DAYS_LATE", th.GraceDaysLate)
	th.HarvestWindowBufferDays = getInt("HARVEST_BUFFER_DAYS", th.HarvestWindowBufferDays)
	th.RainWindowDays = getInt("RAIN_WINDOW_DAYS", th.RainWindowDays)
	if d := getInt("SCORE_TTL_DAYS", 0); d > 0 {
		th.ScoreTTL = time.Duration(d) * 24 * time.Hour
	}
	if ms := getInt("COLLAB_TIMEOUT_MS", 0); ms > 0 {
		th.CollaboratorTimeout = time.Duration(ms) * time.Millisecond
	}

	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Africa/Nairobi"),
		DBPath:     get("DB_PATH", "agroclimate.db"),
		SeasonCSV:  get("SEASON_CSV", ""),
		SeasonXLSX: get("SEASON_XLSX", ""),
		Thresholds: th,
	}
	log.Printf("[cfg] port=%s db=%s tz=%s", cfg.Port, cfg.DBPath, cfg.Timezone)
	return cfg
}
