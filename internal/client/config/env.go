package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/acmchapter/chapterdesk/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIBaseURL       = "CHAPTERDESK_API_URL"
	EnvDatabasePath     = "CHAPTERDESK_DB"
	EnvRequestTimeout   = "CHAPTERDESK_TIMEOUT"
	EnvRateLimit        = "CHAPTERDESK_RATE_LIMIT"
	EnvArchiveDir       = "CHAPTERDESK_ARCHIVE_DIR"
	EnvArchiveBucket    = "CHAPTERDESK_ARCHIVE_BUCKET"
	EnvArchiveRegion    = "CHAPTERDESK_ARCHIVE_REGION"
	EnvArchiveEndpoint  = "CHAPTERDESK_ARCHIVE_ENDPOINT"
	EnvArchiveAccessKey = "CHAPTERDESK_ARCHIVE_ACCESS_KEY"
	EnvArchiveSecretKey = "CHAPTERDESK_ARCHIVE_SECRET_KEY"
	EnvLogLevel         = "CHAPTERDESK_LOG_LEVEL"
)

// loadDotenv seeds the process environment from a dotenv file. An explicit
// -e path must exist; the implicit ./.env is optional.
func loadDotenv() {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays Config with CHAPTERDESK_* variables. Malformed numeric or
// duration values panic, matching the JSON and flag loaders.
func parseEnv(cfg *Config) {
	loadDotenv()

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(&cfg.APIBaseURL, EnvAPIBaseURL)
	setString(&cfg.DatabasePath, EnvDatabasePath)
	setString(&cfg.ArchiveDir, EnvArchiveDir)
	setString(&cfg.ArchiveBucket, EnvArchiveBucket)
	setString(&cfg.ArchiveRegion, EnvArchiveRegion)
	setString(&cfg.ArchiveEndpoint, EnvArchiveEndpoint)
	setString(&cfg.ArchiveAccessKey, EnvArchiveAccessKey)
	setString(&cfg.ArchiveSecretKey, EnvArchiveSecretKey)
	setString(&cfg.LogLevel, EnvLogLevel)

	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}

	if v := os.Getenv(EnvRateLimit); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		cfg.RateLimit = r
	}
}
