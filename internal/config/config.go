// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; converts to fetch.InstallOptions

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/pkgfetch/internal/fetch"
)

// DefaultConcurrency bounds parallel fetches when nothing is configured.
const DefaultConcurrency = 4

// Settings holds the merged configuration.
type Settings struct {
	Installer   string `yaml:"installer,omitempty"`
	Registry    string `yaml:"registry,omitempty"`
	LogLevel    string `yaml:"loglevel,omitempty"`
	Production  *bool  `yaml:"production,omitempty"`
	Save        *bool  `yaml:"save,omitempty"`
	SaveExact   *bool  `yaml:"save_exact,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`
	Destination string `yaml:"destination,omitempty"`
}

// Load reads and merges global and project-local settings, then applies
// ${VAR} expansion and PKGFETCH_* environment overrides.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	ApplyEnvOverrides(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// parse decodes YAML settings, rejecting unknown keys so typos surface.
// An empty document yields zero Settings.
func parse(data []byte) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if s.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", s.Concurrency)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Installer != "" {
		result.Installer = project.Installer
	}
	if project.Registry != "" {
		result.Registry = project.Registry
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Production != nil {
		result.Production = project.Production
	}
	if project.Save != nil {
		result.Save = project.Save
	}
	if project.SaveExact != nil {
		result.SaveExact = project.SaveExact
	}
	if project.Concurrency != 0 {
		result.Concurrency = project.Concurrency
	}
	if project.Destination != "" {
		result.Destination = project.Destination
	}

	return &result
}

// InstallOptions converts the settings into per-call fetch options. cwd
// anchors relative destinations.
func (s *Settings) InstallOptions(cwd string) fetch.InstallOptions {
	return fetch.InstallOptions{
		Cwd:        cwd,
		Production: s.Production,
		Save:       s.Save,
		SaveExact:  s.SaveExact != nil && *s.SaveExact,
		LogLevel:   s.LogLevel,
		Registry:   s.Registry,
	}
}

// Workers returns the configured fetch concurrency, defaulting to
// DefaultConcurrency.
func (s *Settings) Workers() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}
