// Package render turns databases, rows and pages into terminal output. It is
// presentation only: ordering, narrowing and column selection are decided by
// the view engine before anything reaches this package.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"notionview/internal/notion"
	"notionview/internal/view"
)

// Format represents the output format type.
type Format string

const (
	FormatJSON  Format = "json"
	FormatText  Format = "text"
	FormatTable Format = "table"
)

// Renderer writes formatted output.
type Renderer struct {
	format Format
	writer io.Writer
}

// New creates a new renderer.
func New(format Format, writer io.Writer) *Renderer {
	return &Renderer{format: format, writer: writer}
}

// Databases renders a list of database summaries.
func (r *Renderer) Databases(databases []notion.Database) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(databases)
	case FormatText:
		for _, db := range databases {
			title := db.DisplayTitle()
			if title == "" {
				title = "(Untitled)"
			}
			fmt.Fprintf(r.writer, "%s\n  ID: %s\n  Last edited: %s\n",
				title, db.ID, db.LastEditedTime.Format("2006-01-02 15:04"))
		}
		return nil
	default:
		rows := make([][]string, 0, len(databases))
		for _, db := range databases {
			title := db.DisplayTitle()
			if title == "" {
				title = "(Untitled)"
			}
			icon := ""
			if db.Icon != nil && db.Icon.Type == "emoji" {
				icon = db.Icon.Emoji
			}
			rows = append(rows, []string{
				icon + title,
				db.ID,
				db.LastEditedTime.Format("2006-01-02 15:04"),
			})
		}
		return r.printTable([]string{"Title", "ID", "Last Edited"}, rows)
	}
}

// Rows renders database rows as a table honoring the column configuration:
// only visible columns appear, in their configured order.
func (r *Renderer) Rows(rows []notion.Page, columns []view.ColumnConfig) error {
	visible := view.VisibleColumns(columns)

	switch r.format {
	case FormatJSON:
		return r.renderJSON(rows)
	case FormatText:
		for i := range rows {
			if i > 0 {
				fmt.Fprintln(r.writer, "---")
			}
			for _, col := range visible {
				prop, ok := rows[i].Properties[col.Name]
				if !ok {
					continue
				}
				if value := prop.Text(); value != "" {
					fmt.Fprintf(r.writer, "%s: %s\n", col.Name, value)
				}
			}
		}
		return nil
	default:
		headers := make([]string, len(visible))
		for i, col := range visible {
			headers[i] = col.Name
		}
		cells := make([][]string, 0, len(rows))
		for i := range rows {
			row := make([]string, len(visible))
			for j, col := range visible {
				if prop, ok := rows[i].Properties[col.Name]; ok {
					row[j] = truncate(prop.Text(), 50)
				}
			}
			cells = append(cells, row)
		}
		if err := r.printTable(headers, cells); err != nil {
			return err
		}
		fmt.Fprintf(r.writer, "\n%d rows\n", len(rows))
		return nil
	}
}

// Page renders a single page as a document: title, metadata, properties and,
// when provided, its content blocks.
func (r *Renderer) Page(page *notion.Page, blocks []notion.Block) error {
	if r.format == FormatJSON {
		return r.renderJSON(map[string]any{
			"page":   page,
			"blocks": blocks,
		})
	}

	title := page.Title()
	if title == "" {
		title = "(Untitled)"
	}
	if page.Icon != nil && page.Icon.Type == "emoji" {
		title = page.Icon.Emoji + " " + title
	}

	fmt.Fprintf(r.writer, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(r.writer, "ID: %s\n", page.ID)
	fmt.Fprintf(r.writer, "URL: %s\n", page.URL)
	fmt.Fprintf(r.writer, "Created: %s\n", page.CreatedTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.writer, "Last edited: %s\n", page.LastEditedTime.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(r.writer, "\nProperties:")
	for name, prop := range page.Properties {
		if prop.Type == notion.TypeTitle {
			continue // already shown as title
		}
		if value := prop.Text(); value != "" {
			fmt.Fprintf(r.writer, "  %s: %s\n", name, value)
		}
	}

	if len(blocks) > 0 {
		fmt.Fprintln(r.writer)
		for _, block := range blocks {
			r.renderBlock(&block)
		}
	}

	return nil
}

func (r *Renderer) renderBlock(block *notion.Block) {
	text := block.PlainText()
	switch block.Type {
	case "heading_1":
		fmt.Fprintf(r.writer, "# %s\n", text)
	case "heading_2":
		fmt.Fprintf(r.writer, "## %s\n", text)
	case "heading_3":
		fmt.Fprintf(r.writer, "### %s\n", text)
	case "bulleted_list_item":
		fmt.Fprintf(r.writer, "- %s\n", text)
	case "numbered_list_item":
		fmt.Fprintf(r.writer, "1. %s\n", text)
	case "to_do":
		mark := " "
		if block.ToDo != nil && block.ToDo.Checked {
			mark = "x"
		}
		fmt.Fprintf(r.writer, "[%s] %s\n", mark, text)
	case "quote":
		fmt.Fprintf(r.writer, "> %s\n", text)
	case "code":
		lang := ""
		if block.Code != nil {
			lang = block.Code.Language
		}
		fmt.Fprintf(r.writer, "```%s\n%s\n```\n", lang, text)
	case "divider":
		fmt.Fprintln(r.writer, "---")
	default:
		if text != "" {
			fmt.Fprintln(r.writer, text)
		}
	}
}

func (r *Renderer) renderJSON(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// printTable prints a simple aligned table.
func (r *Renderer) printTable(headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	r.printRow(headers, widths)
	r.printSeparator(widths)
	for _, row := range rows {
		r.printRow(row, widths)
	}

	return nil
}

func (r *Renderer) printRow(cells []string, widths []int) {
	for i, cell := range cells {
		if i < len(widths) {
			fmt.Fprintf(r.writer, "%-*s", widths[i], cell)
			if i < len(cells)-1 {
				fmt.Fprint(r.writer, "  ")
			}
		}
	}
	fmt.Fprintln(r.writer)
}

func (r *Renderer) printSeparator(widths []int) {
	for i, w := range widths {
		fmt.Fprint(r.writer, strings.Repeat("-", w))
		if i < len(widths)-1 {
			fmt.Fprint(r.writer, "  ")
		}
	}
	fmt.Fprintln(r.writer)
}
