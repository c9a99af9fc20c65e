package cmd

import (
	"fmt"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/config"
	"github.com/spf13/cobra"
)

func loadToolConfig(cmd *cobra.Command) (config.ToolConfig, error) {
	cfg, loaded, err := config.LoadToolConfig(config.DefaultToolConfigPath)
	if err != nil {
		return config.ToolConfig{}, err
	}
	if !loaded {
		fmt.Fprintf(cmd.ErrOrStderr(), "config not found, using defaults at %s\n", config.DefaultToolConfigPath)
	}
	return cfg, nil
}
