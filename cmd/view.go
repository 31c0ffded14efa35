package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"notionview/internal/config"
	"notionview/internal/notion"
	"notionview/internal/prefs"
	"notionview/internal/render"
	"notionview/internal/view"
	"notionview/pkg/logger"
)

type viewOptions struct {
	format        string
	sort          string
	natural       bool
	caseSensitive bool
	customOrder   string
	filters       []string
	columns       string
	save          bool
}

var viewOpts = &viewOptions{}

var viewCmd = &cobra.Command{
	Use:   "view <database_id>",
	Short: "View a Notion database as a table",
	Long: `Fetch the rows of a database and render them as a table, applying the
saved view configuration for that database. Sort, filter and column flags
override the saved configuration for this invocation; --save persists them
as the new configuration.

Sort levels are column:direction pairs, applied in order with later levels
breaking ties:

  nview view <id> --sort "Status:asc,Due:desc"

Filters are 'column operator value' expressions combined with AND:

  nview view <id> --filter "Status equals Done" --filter "Amount greater_than 10"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd.Context(), args[0], viewOpts)
	},
}

func init() {
	viewCmd.Flags().StringVarP(&viewOpts.format, "format", "f", "table", "Output format: json, text, table")
	viewCmd.Flags().StringVarP(&viewOpts.sort, "sort", "s", "", "Sort levels: col:asc[,col:desc...]")
	viewCmd.Flags().BoolVar(&viewOpts.natural, "natural", false, "Use natural (alphanumeric-aware) string ordering")
	viewCmd.Flags().BoolVar(&viewOpts.caseSensitive, "case-sensitive", false, "Compare strings case-sensitively")
	viewCmd.Flags().StringVar(&viewOpts.customOrder, "custom-order", "", "Sort this select/status column by its observed option order")
	viewCmd.Flags().StringArrayVar(&viewOpts.filters, "filter", nil, "Filter rule 'column operator value' (repeatable)")
	viewCmd.Flags().StringVarP(&viewOpts.columns, "columns", "c", "", "Comma-separated list of columns to show, in order")
	viewCmd.Flags().BoolVar(&viewOpts.save, "save", false, "Persist the current flags as this database's view configuration")

	rootCmd.AddCommand(viewCmd)
}

func runView(ctx context.Context, databaseID string, opts *viewOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := notion.NewClient(cfg.Token)

	rows, err := client.QueryDatabase(ctx, databaseID)
	if err != nil {
		if notion.IsUnauthorized(err) {
			return fmt.Errorf("unauthorized: check your integration token: %w", err)
		}
		return fmt.Errorf("failed to fetch database rows: %w", err)
	}
	logger.Default().Debugw("fetched database rows", "database", databaseID, "rows", len(rows))

	store, err := openStore()
	if err != nil {
		return err
	}
	saved, err := store.Load(databaseID)
	if err != nil && err != prefs.ErrNotFound {
		return fmt.Errorf("failed to load view preferences: %w", err)
	}
	if saved == nil {
		saved = &prefs.Preferences{}
	}

	columns := view.MergeColumns(saved.Columns, view.DeriveColumns(rows))
	if opts.columns != "" {
		columns = selectColumns(columns, opts.columns)
	}

	rules := saved.Filters
	if len(opts.filters) > 0 {
		rules, err = parseFilters(opts.filters, rows)
		if err != nil {
			return err
		}
	}

	var levels []view.SortLevel
	if opts.sort != "" {
		sortConfig, err := parseSort(opts.sort, opts, rows)
		if err != nil {
			return err
		}
		levels = sortConfig.Enabled()
		saved.EnhancedSort = sortConfig
		saved.Sort = nil
	} else {
		levels = view.Levels(saved.Sort, saved.EnhancedSort)
	}

	filtered := view.Filter(rows, rules)
	sorted := view.Sort(filtered, levels)

	if opts.save {
		saved.Columns = columns
		saved.Filters = rules
		if err := store.Save(databaseID, saved); err != nil {
			return fmt.Errorf("failed to save view preferences: %w", err)
		}
		logger.Default().Debugw("saved view preferences", "database", databaseID)
	}

	renderer := render.New(render.Format(opts.format), os.Stdout)
	return renderer.Rows(sorted, columns)
}

// openStore roots the preference store in the config directory.
func openStore() (prefs.Store, error) {
	dir, err := config.EnsureDir()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare preferences directory: %w", err)
	}
	return prefs.NewFileStore(afero.NewOsFs(), dir), nil
}

// parseSort parses "col:asc,col2:desc" into a sort configuration, applying
// the comparison flags to every level.
func parseSort(s string, opts *viewOptions, rows []notion.Page) (view.SortConfig, error) {
	var sortConfig view.SortConfig
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		column, direction := part, view.Ascending
		if i := strings.LastIndex(part, ":"); i >= 0 {
			column = part[:i]
			switch strings.ToLower(part[i+1:]) {
			case "asc", "ascending":
				direction = view.Ascending
			case "desc", "descending":
				direction = view.Descending
			default:
				return nil, fmt.Errorf("invalid sort direction in %q (want asc or desc)", part)
			}
		}

		level := view.NewSortLevel(column, direction)
		level.NaturalSort = opts.natural
		level.CaseSensitive = opts.caseSensitive
		if opts.customOrder == column {
			level.CustomOrder = view.OptionOrder(rows, column)
		}
		sortConfig = append(sortConfig, level)
	}
	if len(sortConfig) == 0 {
		return nil, fmt.Errorf("empty sort specification %q", s)
	}
	return sortConfig, nil
}

// parseFilters parses repeated 'column operator value' expressions. The
// column's property type is taken from the fetched rows so the rule knows
// which operators apply.
func parseFilters(exprs []string, rows []notion.Page) ([]view.FilterRule, error) {
	rules := make([]view.FilterRule, 0, len(exprs))
	for _, expr := range exprs {
		parts := strings.SplitN(strings.TrimSpace(expr), " ", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid filter %q (want 'column operator [value]')", expr)
		}
		rule := view.FilterRule{
			Column:   parts[0],
			Operator: view.Operator(parts[1]),
			Type:     columnType(rows, parts[0]),
		}
		if len(parts) == 3 {
			rule.Value = parts[2]
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// columnType returns the property type of a column as observed in the rows.
func columnType(rows []notion.Page, column string) notion.PropertyType {
	for i := range rows {
		if prop, ok := rows[i].Properties[column]; ok {
			return prop.Type
		}
	}
	return ""
}

// selectColumns restricts visibility to the named columns, in the given order.
func selectColumns(columns []view.ColumnConfig, spec string) []view.ColumnConfig {
	order := make(map[string]int)
	for i, name := range strings.Split(spec, ",") {
		order[strings.TrimSpace(name)] = i
	}

	out := make([]view.ColumnConfig, len(columns))
	for i, col := range columns {
		if pos, ok := order[col.Name]; ok {
			col.Visible = true
			col.Order = pos
		} else {
			col.Visible = false
			col.Order = len(order) + i
		}
		out[i] = col
	}
	return out
}
