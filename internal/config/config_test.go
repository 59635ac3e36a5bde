package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DPSELECT_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Selector.Debounce != 800*time.Millisecond {
		t.Fatalf("debounce = %v, want 800ms", cfg.Selector.Debounce)
	}
	if cfg.Selector.PageSize != 10 || cfg.Selector.Mode != "multiple" {
		t.Fatalf("selector = %+v", cfg.Selector)
	}
	if cfg.Catalog.Backend != BackendSQLite {
		t.Fatalf("backend = %q", cfg.Catalog.Backend)
	}
	want := filepath.Join(home, ".local", "share", "dpselect", "catalog.db")
	if cfg.Database.Path != want {
		t.Fatalf("db path = %q, want %q", cfg.Database.Path, want)
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[catalog]
backend = "index"
file = "catalog.yaml"

[selector]
debounce = "250ms"
page_size = 25
mode = "single"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", dir)
	t.Setenv("DPSELECT_CONFIG", path)
	t.Setenv("DPSELECT_SELECTOR_PAGE_SIZE", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Catalog.Backend != BackendIndex || cfg.Catalog.File != "catalog.yaml" {
		t.Fatalf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Selector.Debounce != 250*time.Millisecond || cfg.Selector.Mode != "single" {
		t.Fatalf("selector = %+v", cfg.Selector)
	}
	if cfg.Selector.PageSize != 5 {
		t.Fatalf("page size = %d, want env override 5", cfg.Selector.PageSize)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Catalog:  CatalogConfig{Backend: BackendSQLite},
		Selector: SelectorConfig{PageSize: 10, Debounce: time.Second},
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Catalog.Backend = "es" }, wantErr: true},
		{name: "index without file", mutate: func(c *Config) { c.Catalog.Backend = BackendIndex }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.Selector.PageSize = 0 }, wantErr: true},
		{name: "negative debounce", mutate: func(c *Config) { c.Selector.Debounce = -time.Second }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("DPSELECT_CONFIG", path)

	in := Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "c.db")},
		Catalog:  CatalogConfig{Backend: BackendSQLite},
		Selector: SelectorConfig{Debounce: 300 * time.Millisecond, PageSize: 7, Mode: "single"},
		Log:      LogConfig{Level: "debug"},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Selector != in.Selector || out.Database != in.Database || out.Log.Level != "debug" {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}
