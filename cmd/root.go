package cmd

import (
	"github.com/spf13/cobra"

	"notionview/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nview",
	Short: "A read-oriented viewer for Notion databases",
	Long: `nview lists the databases a Notion integration token can access,
renders database rows as a configurable table with multi-level sorting and
filtering, and renders individual pages as formatted documents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		l, err := logger.New(logger.Config{Level: level, Development: verbose})
		if err != nil {
			return err
		}
		logger.SetDefault(l)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
