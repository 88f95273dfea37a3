package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docgen/internal/fileutil"
	"github.com/alnah/go-docgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// appDirName is the directory under the user config dir searched for configs.
const appDirName = "go-docgen"

// Default output file names, matching the historical tool.
const (
	DefaultPublicName = "doc.html"
	DefaultAllName    = "docAll.html"
)

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxNameLength  = 255  // NAME_MAX on most filesystems
	MaxTitleLength = 200  // page title
	MaxStyleLength = 4096 // style name or CSS file path
)

// Config holds all configuration for documentation generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
}

// InputConfig defines the source file.
type InputConfig struct {
	File string `yaml:"file,omitempty"` // Used when no positional input is given
}

// OutputConfig defines where listings are written.
type OutputConfig struct {
	Dir        string `yaml:"dir,omitempty"`        // Empty = working directory
	PublicName string `yaml:"publicName,omitempty"` // Public listing (default: doc.html)
	AllName    string `yaml:"allName,omitempty"`    // Complete listing (default: docAll.html)
}

// PageConfig defines standalone page options.
type PageConfig struct {
	Standalone bool   `yaml:"standalone"`
	Title      string `yaml:"title,omitempty"`
	Style      string `yaml:"style,omitempty"` // Embedded style name or CSS file path
	Intro      string `yaml:"intro,omitempty"` // Markdown file rendered above the entries
	ShowSource bool   `yaml:"showSource"`
}

// Validate checks field lengths and output names.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.file", c.Input.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFileName("output.publicName", c.Output.PublicName); err != nil {
		return err
	}
	if err := validateFileName("output.allName", c.Output.AllName); err != nil {
		return err
	}
	if c.Output.PublicName != "" && c.Output.PublicName == c.Output.AllName {
		return fmt.Errorf("%w: output.publicName and output.allName are both %q", ErrInvalidField, c.Output.AllName)
	}

	if err := validateFieldLength("page.title", c.Page.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.style", c.Page.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.intro", c.Page.Intro, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateFileName checks that an output name is a bare file name.
// Empty means "use the default".
func validateFileName(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxNameLength); err != nil {
		return err
	}
	if value == "." || value == ".." || strings.ContainsAny(value, "/\\\x00") {
		return fmt.Errorf("%w: %s must be a file name, got %q", ErrInvalidField, fieldName, value)
	}
	return nil
}

// DefaultConfig returns the configuration that reproduces the historical
// behavior: both listings in the working directory, no standalone page.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			PublicName: DefaultPublicName,
			AllName:    DefaultAllName,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Unset output names fall back to the defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Output.PublicName == "" {
		cfg.Output.PublicName = DefaultPublicName
	}
	if cfg.Output.AllName == "" {
		cfg.Output.AllName = DefaultAllName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal serializes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Encode(c)
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
