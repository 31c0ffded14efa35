package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notionview/internal/config"
	"notionview/internal/notion"
	"notionview/internal/render"
)

type databasesOptions struct {
	format string
}

var databasesOpts = &databasesOptions{}

var databasesCmd = &cobra.Command{
	Use:     "databases",
	Aliases: []string{"dbs"},
	Short:   "List accessible Notion databases",
	Long:    `List the databases the configured integration token has access to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatabases(cmd.Context(), databasesOpts)
	},
}

func init() {
	databasesCmd.Flags().StringVarP(&databasesOpts.format, "format", "f", "table", "Output format: json, text, table")

	rootCmd.AddCommand(databasesCmd)
}

func runDatabases(ctx context.Context, opts *databasesOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := notion.NewClient(cfg.Token)

	databases, err := client.ListDatabases(ctx)
	if err != nil {
		if notion.IsUnauthorized(err) {
			return fmt.Errorf("unauthorized: check your integration token: %w", err)
		}
		return fmt.Errorf("failed to list databases: %w", err)
	}

	renderer := render.New(render.Format(opts.format), os.Stdout)
	return renderer.Databases(databases)
}
