package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	Municipality  string
	Province      string
	OfficeName    string
	LogoPath      string
	YieldFactor   float64 // assumed tons/ha used for production estimates
	SessionSecret string
	AdminEmail    string
	AdminPassword string
	RefDomains    string // comma-separated allow-list for refdata ingest
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
	getF := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				return f
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "Asia/Manila"),
		DBPath:        get("DB_PATH", "agritech.db"),
		Municipality:  get("MUNICIPALITY", "Municipality of Jasaan"),
		Province:      get("PROVINCE", "Province of Misamis Oriental"),
		OfficeName:    get("OFFICE_NAME", "DEPARTMENT OF AGRICULTURE"),
		LogoPath:      get("LOGO_PATH", "static/da_logo.png"),
		YieldFactor:   getF("YIELD_FACTOR", 4.0),
		SessionSecret: get("SESSION_SECRET", "change-me-in-prod"),
		AdminEmail:    get("ADMIN_EMAIL", "admin@agritech.gov"),
		AdminPassword: get("ADMIN_PASSWORD", ""),
		RefDomains:    get("REF_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s db=%s tz=%s yield_factor=%.1f", cfg.Port, cfg.DBPath, cfg.Timezone, cfg.YieldFactor)
	return cfg
}
