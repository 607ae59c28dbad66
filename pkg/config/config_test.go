package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.ServiceURL != "http://localhost:1500" {
		t.Errorf("ServiceURL = %q, want default", cfg.ServiceURL)
	}
	if cfg.DuplicatePolicy != DuplicateLastWins {
		t.Errorf("DuplicatePolicy = %q, want %q", cfg.DuplicatePolicy, DuplicateLastWins)
	}
	if len(cfg.Namespaces) != 3 || cfg.Namespaces[0] != "engine" {
		t.Errorf("Namespaces = %v, want engine first", cfg.Namespaces)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
	if time.Duration(cfg.Cache.TTL) != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want 24h", time.Duration(cfg.Cache.TTL))
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
service_url = "http://10.0.0.2:1500"
duplicate_policy = "fail"
namespaces = ["engine"]

[cache]
backend = "redis"
ttl = "90m"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.ServiceURL != "http://10.0.0.2:1500" {
		t.Errorf("ServiceURL = %q, want overridden value", cfg.ServiceURL)
	}
	if cfg.DuplicatePolicy != DuplicateFail {
		t.Errorf("DuplicatePolicy = %q, want %q", cfg.DuplicatePolicy, DuplicateFail)
	}
	if len(cfg.Namespaces) != 1 {
		t.Errorf("Namespaces = %v, want just engine", cfg.Namespaces)
	}
	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, BackendRedis)
	}
	if time.Duration(cfg.Cache.TTL) != 90*time.Minute {
		t.Errorf("Cache.TTL = %v, want 90m", time.Duration(cfg.Cache.TTL))
	}
	// Untouched sections keep their defaults
	if cfg.Catalog.Backend != BackendFile {
		t.Errorf("Catalog.Backend = %q, want default %q", cfg.Catalog.Backend, BackendFile)
	}
}

func TestLoadCollectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
service_url = "http://localhost:1500"
no_such_key = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.Unknown) != 1 || cfg.Unknown[0] != "no_such_key" {
		t.Errorf("Unknown = %v, want [no_such_key]", cfg.Unknown)
	}
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`duplicate_policy = "maybe"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unknown duplicate_policy")
	}
}

func TestValidateBackends(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = "memcached"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject unknown cache backend")
	}

	cfg = Default()
	cfg.Catalog.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject unknown catalog backend")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got := ExpandHome("~/exports")
	want := filepath.Join(home, "exports")
	if got != want {
		t.Errorf("ExpandHome(~/exports) = %q, want %q", got, want)
	}

	// Absolute paths pass through
	if got := ExpandHome("/tmp/exports"); got != "/tmp/exports" {
		t.Errorf("ExpandHome(/tmp/exports) = %q", got)
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("CacheDir = %q, want under XDG_CACHE_HOME", dir)
	}
}
