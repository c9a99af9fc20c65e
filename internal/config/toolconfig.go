package config

import (
	"errors"
	"os"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/render"
	"go.yaml.in/yaml/v3"
)

const DefaultToolConfigPath = ".testgen/config.yml"

// ToolConfig represents per-project generation defaults stored in
// .testgen/config.yml. Flags override these values.
type ToolConfig struct {
	Model     string `yaml:"model"`
	Format    string `yaml:"format"`
	NumCases  int    `yaml:"numCases"`
	OutputDir string `yaml:"outputDir"`
}

// DefaultToolConfig returns the default tool configuration.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		Model:     "gemini-2.0-flash",
		Format:    string(render.FormatGherkin),
		NumCases:  10,
		OutputDir: "generated-tests",
	}
}

// LoadToolConfig loads tool config from the given path.
// If the file does not exist, it returns defaults with loaded=false.
func LoadToolConfig(path string) (ToolConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultToolConfig(), false, nil
		}
		return ToolConfig{}, false, apperrors.Wrap("config.LoadToolConfig", err)
	}

	cfg := DefaultToolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ToolConfig{}, true, apperrors.Wrap("config.LoadToolConfig", err)
	}

	if err := cfg.Validate(); err != nil {
		return ToolConfig{}, true, err
	}

	return cfg, true, nil
}

// SaveToolConfig writes tool config to the given path.
func SaveToolConfig(path string, cfg ToolConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return apperrors.Wrap("config.SaveToolConfig", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap("config.SaveToolConfig", err)
	}

	return nil
}

// Validate checks tool config values.
func (c ToolConfig) Validate() error {
	v := NewValidator()

	if strings.TrimSpace(c.Model) == "" {
		v.AddError("model", "is required")
	}
	if strings.TrimSpace(c.Format) == "" {
		v.AddError("format", "is required")
	} else if !render.Format(c.Format).IsValid() {
		v.AddError("format", "must be one of "+strings.Join(render.Formats(), ", "))
	}
	if c.NumCases < 1 {
		v.AddError("numCases", "must be at least 1")
	} else if c.NumCases > 100 {
		v.AddError("numCases", "must be at most 100")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		v.AddError("outputDir", "is required")
	}

	if v.HasErrors() {
		return apperrors.Wrap("config.ValidateToolConfig", v.Error())
	}

	return nil
}
