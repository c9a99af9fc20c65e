package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ai-test-generator workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := GetLogger().WithComponent("init")

		cfg := config.DefaultToolConfig()

		configDir := filepath.Dir(config.DefaultToolConfigPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			log.Error("Failed to create config directory", "dir", configDir, "error", err)
			return err
		}

		if _, err := os.Stat(config.DefaultToolConfigPath); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "config already exists: %s\n", config.DefaultToolConfigPath)
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := config.SaveToolConfig(config.DefaultToolConfigPath, cfg); err != nil {
			log.Error("Failed to write config", "path", config.DefaultToolConfigPath, "error", err)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", config.DefaultToolConfigPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
