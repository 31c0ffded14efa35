package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"notionview/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show current configuration settings.

Displays the effective configuration from environment variables and the
config file. The token is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	configDir, _ := config.Dir()

	fmt.Println("Current Configuration")
	fmt.Println("=====================")
	fmt.Println()

	if cfg.Token != "" {
		fmt.Printf("Token:     %s\n", maskToken(cfg.Token))
	} else {
		fmt.Println("Token:     (not set)")
	}

	if cfg.LogLevel != "" {
		fmt.Printf("Log level: %s\n", cfg.LogLevel)
	}

	fmt.Println()
	fmt.Println("Sources")
	fmt.Println("-------")

	if os.Getenv("NVIEW_TOKEN") != "" {
		fmt.Println("NVIEW_TOKEN:   set")
	}
	if os.Getenv("NOTION_TOKEN") != "" {
		fmt.Println("NOTION_TOKEN:  set")
	}

	configPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file:   %s\n", configPath)
	} else {
		fmt.Println("Config file:   (not found)")
	}

	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
