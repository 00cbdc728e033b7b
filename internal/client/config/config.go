package config

import "time"

// Config holds runtime settings for the chapterdesk CLI.
//
// Fields:
//   - APIBaseURL: base URL of the chapter REST API, including the /api prefix.
//   - DatabasePath: SQLite file holding local storage (session keys, theme).
//   - RequestTimeout: per-request HTTP timeout.
//   - RateLimit: max outgoing requests per second, 0 means unlimited.
//   - ArchiveDir: local directory for downloaded exports.
//   - ArchiveBucket, ArchiveRegion, ArchiveEndpoint: when ArchiveBucket is set,
//     exports go to this S3 (or S3-compatible) bucket instead of ArchiveDir.
//   - ArchiveAccessKey, ArchiveSecretKey: static S3 credentials; when empty the
//     default AWS credential chain is used.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL       string
	DatabasePath     string
	RequestTimeout   time.Duration
	RateLimit        float64
	ArchiveDir       string
	ArchiveBucket    string
	ArchiveRegion    string
	ArchiveEndpoint  string
	ArchiveAccessKey string
	ArchiveSecretKey string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "chapterdesk.db"
	c.RequestTimeout = 15 * time.Second
	c.RateLimit = 0
	c.ArchiveDir = "exports"
	c.ArchiveRegion = "us-east-1"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// OwnedFlags lists every flag consumed by the config loaders. Anything else on
// the command line belongs to the command router.
func OwnedFlags() []string {
	return []string{"-a", "-d", "-t", "-r", "-l", "-c", "-config", "-e", "-env"}
}
