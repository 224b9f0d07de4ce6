// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings with defaults applied

package config

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pkgfetch/internal/fetch"
)

// Explain renders a human-readable summary of the effective settings.
// Unset values are shown with their defaults and marked as such.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Installer ===\n")
	writeValue(&b, "Command:", s.Installer, fetch.DefaultCommand)
	writeValue(&b, "Registry:", s.Registry, "(installer default)")
	writeValue(&b, "LogLevel:", s.LogLevel, "(installer default)")
	b.WriteString("\n")

	b.WriteString("=== Install flags ===\n")
	writeBool(&b, "Production:", s.Production, true)
	writeBool(&b, "Save:", s.Save, true)
	writeBool(&b, "SaveExact:", s.SaveExact, false)
	if args := InstallArgsPreview(s); len(args) > 0 {
		fmt.Fprintf(&b, "  %-12s %s\n", "Flags:", strings.Join(args, " "))
	}
	b.WriteString("\n")

	b.WriteString("=== Fetch ===\n")
	writeValue(&b, "Destination:", s.Destination, "(required per command)")
	if s.Concurrency > 0 {
		fmt.Fprintf(&b, "  %-12s %d\n", "Concurrency:", s.Concurrency)
	} else {
		fmt.Fprintf(&b, "  %-12s %d (default)\n", "Concurrency:", DefaultConcurrency)
	}
	b.WriteString("\n")

	return b.String()
}

// InstallArgsPreview returns the installer flags these settings produce,
// without the leading "install <target>".
func InstallArgsPreview(s *Settings) []string {
	return fetch.InstallArgs("", s.InstallOptions(""))[2:]
}

func writeValue(b *strings.Builder, label, value, def string) {
	if value != "" {
		fmt.Fprintf(b, "  %-12s %s\n", label, value)
		return
	}
	fmt.Fprintf(b, "  %-12s %s (default)\n", label, def)
}

func writeBool(b *strings.Builder, label string, v *bool, def bool) {
	if v != nil {
		fmt.Fprintf(b, "  %-12s %v\n", label, *v)
		return
	}
	fmt.Fprintf(b, "  %-12s %v (default)\n", label, def)
}
