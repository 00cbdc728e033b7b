package config

import (
	"flag"
	"os"
	"time"

	"github.com/acmchapter/chapterdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the chapter API
//	-d string   local storage file
//	-t int      request timeout in seconds
//	-r float    requests per second, 0 = unlimited
//	-l string   log level
//
// Only these flags are parsed; the rest of os.Args is left for the command
// router.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the chapter API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local storage file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "max requests per second (0 = unlimited)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
