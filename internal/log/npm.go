// ABOUTME: Maps verbosity names and slog levels onto npm --loglevel values
// ABOUTME: Native npm levels pass through; common aliases are translated

package log

import (
	"log/slog"
	"strings"
)

// npmLevels are the values npm accepts for --loglevel.
var npmLevels = map[string]bool{
	"silent":  true,
	"error":   true,
	"warn":    true,
	"notice":  true,
	"http":    true,
	"timing":  true,
	"info":    true,
	"verbose": true,
	"silly":   true,
}

var npmAliases = map[string]string{
	"quiet":   "silent",
	"none":    "silent",
	"warning": "warn",
	"debug":   "verbose",
	"trace":   "silly",
	"all":     "silly",
}

// NPMLevel translates a configured verbosity into an npm --loglevel value.
// It reports false for an empty or unrecognized verbosity.
func NPMLevel(verbosity string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(verbosity))
	if v == "" {
		return "", false
	}
	if npmLevels[v] {
		return v, true
	}
	if alias, ok := npmAliases[v]; ok {
		return alias, true
	}
	return "", false
}

// FromLevel picks the npm level matching a logger level.
func FromLevel(l slog.Level) string {
	switch {
	case l <= LevelDebug:
		return "verbose"
	case l <= LevelInfo:
		return "notice"
	case l <= LevelWarn:
		return "warn"
	default:
		return "error"
	}
}
