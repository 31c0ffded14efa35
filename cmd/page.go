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

type pageOptions struct {
	format string
	blocks bool
}

var pageOpts = &pageOptions{}

var pageCmd = &cobra.Command{
	Use:   "page <page_id>",
	Short: "Render a single Notion page as a document",
	Long:  `Retrieve a Notion page by its ID and render its properties, optionally with its content blocks.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd.Context(), args[0], pageOpts)
	},
}

func init() {
	pageCmd.Flags().StringVarP(&pageOpts.format, "format", "f", "text", "Output format: json, text")
	pageCmd.Flags().BoolVarP(&pageOpts.blocks, "blocks", "b", false, "Include the page's content blocks")

	rootCmd.AddCommand(pageCmd)
}

func runPage(ctx context.Context, pageID string, opts *pageOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := notion.NewClient(cfg.Token)

	page, err := client.GetPage(ctx, pageID)
	if err != nil {
		if notion.IsUnauthorized(err) {
			return fmt.Errorf("unauthorized: check your integration token: %w", err)
		}
		return fmt.Errorf("failed to get page: %w", err)
	}

	var blocks []notion.Block
	if opts.blocks {
		blocks, err = client.GetBlocks(ctx, page.ID)
		if err != nil {
			return fmt.Errorf("failed to get page blocks: %w", err)
		}
	}

	renderer := render.New(render.Format(opts.format), os.Stdout)
	return renderer.Page(page, blocks)
}
