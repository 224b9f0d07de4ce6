// ABOUTME: Environment variable expansion and PKGFETCH_* overrides for settings
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

// Environment variables that override file settings.
const (
	EnvInstaller = "PKGFETCH_NPM"
	EnvRegistry  = "PKGFETCH_REGISTRY"
	EnvLogLevel  = "PKGFETCH_LOGLEVEL"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Installer = expandEnv(s.Installer)
	s.Registry = expandEnv(s.Registry)
	s.LogLevel = expandEnv(s.LogLevel)
	s.Destination = expandEnv(s.Destination)
}

// ApplyEnvOverrides replaces settings with non-empty PKGFETCH_* variables.
func ApplyEnvOverrides(s *Settings) {
	if v := os.Getenv(EnvInstaller); v != "" {
		s.Installer = v
	}
	if v := os.Getenv(EnvRegistry); v != "" {
		s.Registry = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
