package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-docgen/internal/config"
)

// envPrefix marks variables read by docgen.
const envPrefix = "DOCGEN_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOCGEN_CONFIG: config file name or path
	Input      string // DOCGEN_INPUT: source file
	OutputDir  string // DOCGEN_OUTPUT_DIR: output directory
	Style      string // DOCGEN_STYLE: style name or CSS path
	Title      string // DOCGEN_TITLE: page title
}

// knownEnvVars lists valid DOCGEN_* environment variables.
var knownEnvVars = map[string]bool{
	"DOCGEN_CONFIG":     true,
	"DOCGEN_INPUT":      true,
	"DOCGEN_OUTPUT_DIR": true,
	"DOCGEN_STYLE":      true,
	"DOCGEN_TITLE":      true,
}

// loadEnvConfig reads configuration through lookup (os.LookupEnv in production).
func loadEnvConfig(lookup func(string) (string, bool)) *envConfig {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return &envConfig{
		ConfigPath: get("DOCGEN_CONFIG"),
		Input:      get("DOCGEN_INPUT"),
		OutputDir:  get("DOCGEN_OUTPUT_DIR"),
		Style:      get("DOCGEN_STYLE"),
		Title:      get("DOCGEN_TITLE"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized DOCGEN_* variable,
// in sorted order.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config fields with the set environment values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.File = env.Input
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.Title != "" {
		cfg.Page.Title = env.Title
	}
}
