// Package config provides configuration management for plinks using Viper.
package config

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PLINKS"

// SupportedVersion is the newest config schema this build understands.
const SupportedVersion = 1

// Prompt styles.
const (
	PromptFuzzy    = "fuzzy"
	PromptNumbered = "numbered"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version   int                       `mapstructure:"version" yaml:"version"`
	Prompt    string                    `mapstructure:"prompt" yaml:"prompt"`
	Portable  bool                      `mapstructure:"portable" yaml:"portable"`
	CacheFile string                    `mapstructure:"cache_file" yaml:"cache_file,omitempty"`
	ScanPaths []string                  `mapstructure:"scan_paths" yaml:"scan_paths"`
	Families  map[string]FamilyOverride `mapstructure:"families" yaml:"families,omitempty"`
	Custom    []CustomBrowser           `mapstructure:"custom" yaml:"custom,omitempty"`
}

// FamilyOverride contains overrides for a browser family.
type FamilyOverride struct {
	RegistryFile string `mapstructure:"registry_file" yaml:"registry_file"`
}

// CustomBrowser defines a browser plinks does not know about.
type CustomBrowser struct {
	Name         string          `mapstructure:"name" yaml:"name"`
	Executable   string          `mapstructure:"executable" yaml:"executable"`
	Args         []string        `mapstructure:"args" yaml:"args"`
	ProfileIndex int             `mapstructure:"profile_index" yaml:"profile_index"`
	URIIndex     int             `mapstructure:"uri_index" yaml:"uri_index"`
	Icon         string          `mapstructure:"icon" yaml:"icon,omitempty"`
	RegistryFile string          `mapstructure:"registry_file" yaml:"registry_file,omitempty"`
	Profiles     []CustomProfile `mapstructure:"profiles" yaml:"profiles,omitempty"`
}

// CustomProfile is a static profile of a custom browser.
type CustomProfile struct {
	Name string `mapstructure:"name" yaml:"name"`
	Path string `mapstructure:"path" yaml:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	families := make(map[string]FamilyOverride, len(paths.Families()))
	for _, f := range paths.Families() {
		families[f] = FamilyOverride{}
	}
	return &Config{
		Version:   SupportedVersion,
		Prompt:    PromptFuzzy,
		ScanPaths: []string{},
		Families:  families,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), paths.AppName))

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("version", SupportedVersion)
	viper.SetDefault("prompt", PromptFuzzy)
	viper.SetDefault("portable", false)
	viper.SetDefault("cache_file", "")
	viper.SetDefault("scan_paths", []string{})
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// UsedFile returns the config file viper loaded, or "" when running on defaults.
func UsedFile() string {
	return viper.ConfigFileUsed()
}

// CachePath returns the cache location: the explicit override, or the
// portable or XDG default.
func (c *Config) CachePath() (string, error) {
	if c.CacheFile != "" {
		return paths.ExpandHome(c.CacheFile)
	}
	return paths.CacheFile(c.Portable)
}

// Resolver returns a profile resolver honoring the family overrides.
func (c *Config) Resolver(logger *slog.Logger) *browser.Resolver {
	return &browser.Resolver{
		RegistryFile: func(family string) string {
			return expand(c.Families[family].RegistryFile)
		},
		Logger: logger,
	}
}

// CustomKinds converts the custom definitions into browser kinds.
func (c *Config) CustomKinds() ([]*browser.Custom, error) {
	kinds := make([]*browser.Custom, 0, len(c.Custom))
	for i, def := range c.Custom {
		kind := def.Kind()
		if err := kind.Validate(); err != nil {
			return nil, &FieldError{Field: customField(i), Err: err}
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Kind converts a definition to a browser kind without validating it.
func (d CustomBrowser) Kind() *browser.Custom {
	profiles := make([]browser.Profile, 0, len(d.Profiles))
	for _, p := range d.Profiles {
		profiles = append(profiles, browser.Profile{Name: p.Name, Path: expand(p.Path)})
	}
	return &browser.Custom{
		Executable:  d.Executable,
		DisplayName: d.Name,
		Template: browser.ArgTemplate{
			Args:         d.Args,
			ProfileIndex: d.ProfileIndex,
			URIIndex:     d.URIIndex,
		},
		IconPath:       d.Icon,
		RegistryFile:   expand(d.RegistryFile),
		StaticProfiles: profiles,
	}
}

// expand resolves "~"; an unresolvable home leaves the path unchanged.
func expand(path string) string {
	if expanded, err := paths.ExpandHome(path); err == nil {
		return expanded
	}
	return path
}
