// Package config loads and validates the optional YAML configuration
// that tunes document generation (output location, language, branding).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/onethousand/go-docgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxPathLength     = 4096 // Filesystem limit on most platforms
	MaxLanguageLength = 5    // "en", "de", room for "en-US"
	MaxColorLength    = 6    // "RRGGBB"
	MaxFontLength     = 100  // Font family name
)

// hexColor matches a six digit RGB value without a leading hash,
// the form the document engine expects.
var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Config holds all configuration for document generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Brand  BrandConfig  `yaml:"brand"`

	// Language overrides the language declared in the content file.
	// Empty means use the content's own language.
	Language string `yaml:"language"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// AssetsConfig defines where external assets are loaded from.
type AssetsConfig struct {
	LogoDir string `yaml:"logoDir"` // Directory holding company logo files (empty = no logo)
}

// BrandConfig overrides the built-in brand palette and fonts.
// Colors are hex RGB without a leading hash, e.g. "19A960".
type BrandConfig struct {
	PrimaryColor   string `yaml:"primaryColor"`   // Accent for headings and the cover card
	HighlightColor string `yaml:"highlightColor"` // Emphasis color in slide text
	HeadingFont    string `yaml:"headingFont"`
	BodyFont       string `yaml:"bodyFont"`
}

// Validate checks field lengths and value formats.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.logoDir", c.Assets.LogoDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("language", c.Language, MaxLanguageLength); err != nil {
		return err
	}
	if c.Language != "" {
		switch strings.ToLower(c.Language) {
		case "en", "de":
			// valid
		default:
			return fmt.Errorf("language: invalid value %q (must be en or de)", c.Language)
		}
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"brand.primaryColor", c.Brand.PrimaryColor},
		{"brand.highlightColor", c.Brand.HighlightColor},
	} {
		if err := validateFieldLength(field.name, field.value, MaxColorLength); err != nil {
			return err
		}
		if field.value != "" && !hexColor.MatchString(field.value) {
			return fmt.Errorf("%s: invalid hex color %q (expected RRGGBB)", field.name, field.value)
		}
	}

	if err := validateFieldLength("brand.headingFont", c.Brand.HeadingFont, MaxFontLength); err != nil {
		return err
	}
	if err := validateFieldLength("brand.bodyFont", c.Brand.BodyFont, MaxFontLength); err != nil {
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

// DefaultConfig returns a neutral configuration: no overrides, built-in branding.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-docgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-docgen", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
