package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadToolConfigDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, loaded, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig: %v", err)
	}
	if loaded {
		t.Error("loaded = true for missing file")
	}
	if cfg != DefaultToolConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadToolConfigReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "model: gemini-2.0-flash\nformat: pytest\nnumCases: 5\noutputDir: out\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, loaded, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig: %v", err)
	}
	if !loaded {
		t.Error("loaded = false for existing file")
	}
	if cfg.Format != "pytest" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.NumCases != 5 {
		t.Errorf("NumCases = %d", cfg.NumCases)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestLoadToolConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.NumCases != DefaultToolConfig().NumCases {
		t.Errorf("NumCases = %d, want default", cfg.NumCases)
	}
}

func TestLoadToolConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("format: cucumber\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadToolConfig(path); err == nil {
		t.Error("expected validation error for unknown format")
	}
}

func TestSaveToolConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	want := ToolConfig{Model: "gemini-2.0-flash", Format: "testng", NumCases: 7, OutputDir: "tests"}

	if err := SaveToolConfig(path, want); err != nil {
		t.Fatalf("SaveToolConfig: %v", err)
	}

	got, loaded, err := LoadToolConfig(path)
	if err != nil || !loaded {
		t.Fatalf("LoadToolConfig: loaded=%v err=%v", loaded, err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestToolConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ToolConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *ToolConfig) {}, false},
		{"empty model", func(c *ToolConfig) { c.Model = "" }, true},
		{"empty format", func(c *ToolConfig) { c.Format = "" }, true},
		{"unknown format", func(c *ToolConfig) { c.Format = "xml" }, true},
		{"zero cases", func(c *ToolConfig) { c.NumCases = 0 }, true},
		{"too many cases", func(c *ToolConfig) { c.NumCases = 101 }, true},
		{"empty output dir", func(c *ToolConfig) { c.OutputDir = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultToolConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
