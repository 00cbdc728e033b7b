// Package flagx lets several flag consumers share one command line.
//
// The config loader owns a handful of short flags (-a, -d, -c, ...) while the
// command router owns everything else. SplitArgs partitions os.Args so each
// side parses only what it understands.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// SplitArgs partitions args into the allowed flags (with their values) and
// everything else, preserving order on both sides.
//
// Recognised forms:
//
//	-c conf.json
//	--config=conf.json
//
// A flag directly followed by another dash-prefixed token is taken to have no
// value.
func SplitArgs(args []string, allowedFlags []string) (matched []string, rest []string) {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		matched = append(matched, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// FilterArgs returns only the allowed flags and their values.
func FilterArgs(args []string, allowedFlags []string) []string {
	matched, _ := SplitArgs(args, allowedFlags)
	return matched
}

// lookupString parses a single string flag (long and short name) out of os.Args.
func lookupString(long, short, usage string) string {
	var value string

	args := FilterArgs(os.Args[1:], []string{"-" + short, "-" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.StringVar(&value, long, "", usage)
	fs.StringVar(&value, short, "", usage+" (short)")
	_ = fs.Parse(args)

	return value
}

// ConfigFileFlag returns the JSON config path given with -c or -config, or "".
func ConfigFileFlag() string {
	return lookupString("config", "c", "Path to config file")
}

// EnvFileFlag returns the dotenv path given with -e or -env, or "".
func EnvFileFlag() string {
	return lookupString("env", "e", "Path to .env file")
}
