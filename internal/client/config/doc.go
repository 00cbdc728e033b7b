// Package config loads runtime configuration for the chapterdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed CHAPTERDESK_, optionally seeded from a
//     dotenv file (-e/-env, or ./.env when present). Variables already set in
//     the process environment win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the chapter API (e.g. http://localhost:8000/api)
//	-d string   path of the local SQLite storage file
//	-t int      request timeout (seconds)
//	-r float    max requests per second (0 = unlimited)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "database_path": "chapterdesk.db",
//	  "request_timeout": "15s",
//	  "rate_limit": 5,
//	  "archive_dir": "exports",
//	  "archive_bucket": "chapter-exports",
//	  "archive_region": "eu-central-1",
//	  "archive_endpoint": "http://localhost:9000",
//	  "archive_access_key": "minioadmin",
//	  "archive_secret_key": "minioadmin",
//	  "log_level": "debug"
//	}
//
// Empty JSON values leave the earlier value in place.
package config
