// ABOUTME: Tests for environment variable expansion and PKGFETCH_* overrides
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import (
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_REGISTRY", "https://npm.example.com")
	result := expandEnv("${TEST_REGISTRY}")
	if result != "https://npm.example.com" {
		t.Errorf("expandEnv = %q; want %q", result, "https://npm.example.com")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("MY_HOST", "localhost")
	result := expandEnv("http://${MY_HOST}:4873/")
	if result != "http://localhost:4873/" {
		t.Errorf("expandEnv = %q; want %q", result, "http://localhost:4873/")
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("plain string")
	if result != "plain string" {
		t.Errorf("expandEnv = %q; want %q", result, "plain string")
	}
}

func TestResolveEnvVars_SettingsFields(t *testing.T) {
	t.Setenv("TEST_NPM", "/opt/node/bin/npm")
	t.Setenv("TEST_HOME", "/home/dev")
	t.Setenv("TEST_LEVEL", "warn")

	s := &Settings{
		Installer:   "${TEST_NPM}",
		Registry:    "https://r/${TEST_LEVEL}",
		LogLevel:    "${TEST_LEVEL}",
		Destination: "${TEST_HOME}/plugins",
	}

	ResolveEnvVars(s)

	if s.Installer != "/opt/node/bin/npm" {
		t.Errorf("Installer = %q", s.Installer)
	}
	if s.Registry != "https://r/warn" {
		t.Errorf("Registry = %q", s.Registry)
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.Destination != "/home/dev/plugins" {
		t.Errorf("Destination = %q", s.Destination)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvInstaller, "")
	t.Setenv(EnvRegistry, "https://env.example.com")
	t.Setenv(EnvLogLevel, "")

	s := &Settings{Installer: "yarn", Registry: "https://file.example.com", LogLevel: "info"}
	ApplyEnvOverrides(s)

	if s.Installer != "yarn" {
		t.Errorf("Installer = %q; empty env must not override", s.Installer)
	}
	if s.Registry != "https://env.example.com" {
		t.Errorf("Registry = %q; want env value", s.Registry)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want file value", s.LogLevel)
	}
}
