package config

import (
	"encoding/json"
	"os"

	"github.com/acmchapter/chapterdesk/internal/flagx"
	"github.com/acmchapter/chapterdesk/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling the JSON config file.
type JsonConfig struct {
	APIBaseURL       string          `json:"api_base_url"`
	DatabasePath     string          `json:"database_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	RateLimit        *float64        `json:"rate_limit"`
	ArchiveDir       string          `json:"archive_dir"`
	ArchiveBucket    string          `json:"archive_bucket"`
	ArchiveRegion    string          `json:"archive_region"`
	ArchiveEndpoint  string          `json:"archive_endpoint"`
	ArchiveAccessKey string          `json:"archive_access_key"`
	ArchiveSecretKey string          `json:"archive_secret_key"`
	LogLevel         string          `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Without the flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.ArchiveDir, jc.ArchiveDir)
	overlay(&cfg.ArchiveBucket, jc.ArchiveBucket)
	overlay(&cfg.ArchiveRegion, jc.ArchiveRegion)
	overlay(&cfg.ArchiveEndpoint, jc.ArchiveEndpoint)
	overlay(&cfg.ArchiveAccessKey, jc.ArchiveAccessKey)
	overlay(&cfg.ArchiveSecretKey, jc.ArchiveSecretKey)
	overlay(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
}
