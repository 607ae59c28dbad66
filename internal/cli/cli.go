// Package cli implements the matforge command-line interface.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/buildinfo"
	"github.com/matforge/matforge/pkg/cache"
	"github.com/matforge/matforge/pkg/catalog"
	"github.com/matforge/matforge/pkg/config"
	"github.com/matforge/matforge/pkg/localfetch"
	"github.com/matforge/matforge/pkg/material"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "matforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        *config.Config
	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and built-in settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Matforge rebuilds material graphs from engine JSON exports",
		Long: `Matforge reconstructs material and material function expression graphs from
the JSON documents produced by the engine-side export service, degrading
gracefully around unknown expression kinds and missing asset references.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default: $XDG_CONFIG_HOME/matforge/config.toml)")

	// Register all subcommands
	root.AddCommand(c.importCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sessionsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the settings file, falling back to defaults when absent.
// Unknown keys are warned about, never fatal.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("locate settings: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, key := range cfg.Unknown {
		c.Logger.Warn("unknown settings key", "key", key)
	}
	c.cfg = cfg
	return nil
}

// =============================================================================
// Backend Factories
// =============================================================================

// newCache builds the response cache selected by the settings file.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(c.cfg.Cache.RedisURL)
	default:
		dir, err := c.cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// newClient builds the export service client, fronted by the configured
// cache.
func (c *CLI) newClient(noCache bool) (*localfetch.Client, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	client := localfetch.NewClient(c.cfg.ServiceURL, store, cache.NewDefaultKeyer(), c.Logger)
	if ttl := time.Duration(c.cfg.Cache.TTL); ttl > 0 {
		client.TTL = ttl
	}
	return client, nil
}

// newCatalog builds the import catalog selected by the settings file. A nil
// store with nil error means the catalog is disabled.
func (c *CLI) newCatalog(noCatalog bool) (catalog.Store, error) {
	if noCatalog {
		return nil, nil
	}
	var (
		store catalog.Store
		err   error
	)
	switch c.cfg.Catalog.Backend {
	case config.BackendNone:
		return nil, nil
	case config.BackendMongo:
		store, err = catalog.NewMongoStore(c.cfg.Catalog.MongoURL, c.cfg.Catalog.Database)
	default:
		store, err = catalog.NewFileStore(config.ExpandHome(c.cfg.Catalog.Dir))
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the response cache directory, preferring the settings
// file over the XDG default (~/.cache/matforge/).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return config.ExpandHome(c.cfg.Cache.Dir), nil
	}
	return config.CacheDir()
}

// exportDir returns the local export tree, preferring the settings file
// over the XDG default (~/.local/share/matforge/exports/).
func (c *CLI) exportDir() (string, error) {
	if c.cfg.ExportDir != "" {
		return config.ExpandHome(c.cfg.ExportDir), nil
	}
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exports"), nil
}

// =============================================================================
// Settings Helpers
// =============================================================================

// namespaces converts the configured namespace names into factory probes.
func namespaces(names []string) []material.Namespace {
	out := make([]material.Namespace, 0, len(names))
	for _, n := range names {
		out = append(out, material.Namespace(n))
	}
	return out
}

// ignoredKinds converts the configured kind tags into dispatch keys.
func ignoredKinds(tags []string) []material.Kind {
	out := make([]material.Kind, 0, len(tags))
	for _, t := range tags {
		out = append(out, material.Kind(t))
	}
	return out
}
