// Package config loads the matforge settings file.
//
// Settings live in a TOML file, by default at
// $XDG_CONFIG_HOME/matforge/config.toml. A missing file is not an error:
// [Load] returns the defaults. Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// appName is used for config, cache and data directories.
const appName = "matforge"

// Duplicate-name policies for export partitioning.
const (
	// DuplicateLastWins keeps the last record seen for a name.
	DuplicateLastWins = "last-wins"
	// DuplicateFail keeps the first record and reports an error.
	DuplicateFail = "fail"
)

// Backend names for the cache and catalog sections.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config holds all matforge settings.
type Config struct {
	// ServiceURL is the base URL of the local export service.
	ServiceURL string `toml:"service_url"`

	// ExportDir is the directory tree of exported JSON documents. Recovered
	// assets are written here.
	ExportDir string `toml:"export_dir"`

	// Namespaces is the ordered list of kind namespaces the node factory
	// probes. First match wins.
	Namespaces []string `toml:"namespaces"`

	// IgnoredKinds are kind tags skipped silently during node creation.
	IgnoredKinds []string `toml:"ignored_kinds"`

	// DuplicatePolicy selects how duplicate record names are handled.
	DuplicatePolicy string `toml:"duplicate_policy"`

	Cache   CacheConfig   `toml:"cache"`
	Catalog CatalogConfig `toml:"catalog"`

	// Unknown lists keys present in the file but not understood. The CLI
	// warns about them; they are never fatal.
	Unknown []string `toml:"-"`
}

// CacheConfig selects and parameterizes the response cache backend.
type CacheConfig struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// CatalogConfig selects and parameterizes the import catalog backend.
type CatalogConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	MongoURL string `toml:"mongo_url"`
	Database string `toml:"database"`
}

// Duration decodes TOML strings like "24h" or "90m".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ServiceURL: "http://localhost:1500",
		Namespaces: []string{"engine", "landscape", "interchange"},
		IgnoredKinds: []string{
			"MaterialExpressionComposite",
			"MaterialExpressionPinBase",
			"MaterialExpressionComment",
		},
		DuplicatePolicy: DuplicateLastWins,
		Cache: CacheConfig{
			Backend:  BackendFile,
			RedisURL: "redis://localhost:6379/0",
			TTL:      Duration(24 * time.Hour),
		},
		Catalog: CatalogConfig{
			Backend:  BackendFile,
			MongoURL: "mongodb://localhost:27017",
			Database: appName,
		},
	}
}

// Load reads the settings file at path, overlaying the defaults. An absent
// file returns the defaults unchanged. Unknown keys are collected in
// Config.Unknown.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for _, key := range meta.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}

	cfg.ExportDir = ExpandHome(cfg.ExportDir)
	cfg.Cache.Dir = ExpandHome(cfg.Cache.Dir)
	cfg.Catalog.Dir = ExpandHome(cfg.Catalog.Dir)

	return cfg, cfg.Validate()
}

// Validate checks enum-valued settings.
func (c *Config) Validate() error {
	switch c.DuplicatePolicy {
	case DuplicateLastWins, DuplicateFail:
	default:
		return fmt.Errorf("invalid duplicate_policy %q", c.DuplicatePolicy)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("invalid cache.backend %q", c.Cache.Backend)
	}
	switch c.Catalog.Backend {
	case BackendFile, BackendMongo, BackendNone:
	default:
		return fmt.Errorf("invalid catalog.backend %q", c.Catalog.Backend)
	}
	return nil
}

// DefaultPath returns the standard settings file location
// ($XDG_CONFIG_HOME/matforge/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the cache directory using the XDG standard
// (~/.cache/matforge/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// DataDir returns the data directory using the XDG standard
// (~/.local/share/matforge/). The default export tree lives below it.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
