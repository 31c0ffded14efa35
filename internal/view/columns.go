package view

import (
	"sort"

	"notionview/internal/notion"
)

// ColumnConfig holds the visibility and position of one table column.
type ColumnConfig struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Order   int    `json:"order"`
}

// DeriveColumns builds the default column configuration from a fetched row
// set: one visible column per distinct property name. The title column comes
// first; the remaining columns are ordered by name, since the upstream JSON
// gives property maps no reliable order.
func DeriveColumns(rows []notion.Page) []ColumnConfig {
	seen := make(map[string]notion.PropertyType)
	for i := range rows {
		for name, prop := range rows[i].Properties {
			if _, ok := seen[name]; !ok {
				seen[name] = prop.Type
			}
		}
	}

	var title string
	names := make([]string, 0, len(seen))
	for name, typ := range seen {
		if typ == notion.TypeTitle && title == "" {
			title = name
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if title != "" {
		names = append([]string{title}, names...)
	}

	columns := make([]ColumnConfig, len(names))
	for i, name := range names {
		columns[i] = ColumnConfig{Name: name, Visible: true, Order: i}
	}
	return columns
}

// MergeColumns unions a saved column configuration with the columns observed
// in the current row set. Known columns keep their saved visibility and
// order; newly observed columns are appended after all known ones, visible.
// Saved columns no longer observed are kept, so a partially fetched row set
// cannot silently drop a user's configuration.
func MergeColumns(saved, observed []ColumnConfig) []ColumnConfig {
	if len(saved) == 0 {
		return observed
	}

	merged := make([]ColumnConfig, len(saved))
	copy(merged, saved)

	maxOrder := 0
	known := make(map[string]bool, len(saved))
	for _, c := range saved {
		known[c.Name] = true
		if c.Order > maxOrder {
			maxOrder = c.Order
		}
	}

	for _, c := range observed {
		if known[c.Name] {
			continue
		}
		maxOrder++
		merged = append(merged, ColumnConfig{Name: c.Name, Visible: true, Order: maxOrder})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Order < merged[j].Order
	})
	return merged
}

// VisibleColumns returns the visible columns in display order.
func VisibleColumns(columns []ColumnConfig) []ColumnConfig {
	visible := make([]ColumnConfig, 0, len(columns))
	for _, c := range columns {
		if c.Visible {
			visible = append(visible, c)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})
	return visible
}

// OptionOrder infers a custom sort order for a select or status column from
// the first occurrence of each option in the fetched rows. The true
// user-defined option order is not retrievable from the row query alone, so
// this is an approximation of it, not a guarantee.
func OptionOrder(rows []notion.Page, column string) []string {
	var order []string
	seen := make(map[string]bool)
	for i := range rows {
		prop, ok := rows[i].Properties[column]
		if !ok {
			continue
		}
		var name string
		switch prop.Type {
		case notion.TypeSelect:
			if prop.Select != nil {
				name = prop.Select.Name
			}
		case notion.TypeStatus:
			if prop.Status != nil {
				name = prop.Status.Name
			}
		default:
			continue
		}
		if name != "" && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}
