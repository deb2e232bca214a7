package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SiteName != "devatlas" {
		t.Errorf("expected default site_name %q, got %q", "devatlas", cfg.SiteName)
	}
	if cfg.Port != 8640 {
		t.Errorf("expected default port 8640, got %d", cfg.Port)
	}
	if cfg.DefaultLang != LangEnglish {
		t.Errorf("expected default lang %q, got %q", LangEnglish, cfg.DefaultLang)
	}
	if cfg.ProxyBase == "" {
		t.Error("expected a default proxy_base")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.devatlas.yml")

	original := DefaultConfig()
	original.SiteName = "my reference"
	original.Port = 9000
	original.DefaultLang = LangFrench
	original.Include = []string{"**/*.json", "extra/**"}
	original.OutputDir = "public"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DefaultLang != original.DefaultLang {
		t.Errorf("default_lang: got %q, want %q", loaded.DefaultLang, original.DefaultLang)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Fatalf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SiteName != "devatlas" {
		t.Errorf("expected defaults, got site_name %q", cfg.SiteName)
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.yml")

	os.Setenv("DEVATLAS_SITE_NAME", "from-env")
	defer os.Unsetenv("DEVATLAS_SITE_NAME")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SiteName != "from-env" {
		t.Errorf("site_name: got %q, want %q", cfg.SiteName, "from-env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty site name", func(c *Config) { c.SiteName = "" }, true},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"bad lang", func(c *Config) { c.DefaultLang = "de" }, true},
		{"french", func(c *Config) { c.DefaultLang = LangFrench }, false},
		{"empty proxy base", func(c *Config) { c.ProxyBase = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
