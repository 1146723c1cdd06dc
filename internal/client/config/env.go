package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first, without overriding variables already
// set; a missing file is not an error.
//
// Recognized variables:
//
//	REMINDME_BASE_URL       base URL of the backend API
//	REMINDME_HTTP_TIMEOUT   per-request timeout, Go duration syntax ("10s")
//	REMINDME_DB_PATH        path to the local session database
//	REMINDME_PAGE_SIZE      reminder search page size
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("REMINDME_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("REMINDME_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("REMINDME_DB_PATH"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("REMINDME_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.PageSize = n
	}
}
