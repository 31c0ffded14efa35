// Package view implements the client-side sort, filter and column
// configuration engine that turns a fetched set of database rows into the
// ordered, narrowed collection the presentation layer renders.
package view

import (
	"sort"

	"github.com/google/uuid"

	"notionview/internal/notion"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// NullHandling decides where rows without an extractable value sort.
type NullHandling string

const (
	// NullsFirst sorts missing values before all present ones.
	NullsFirst NullHandling = "first"
	// NullsLast sorts missing values after all present ones.
	NullsLast NullHandling = "last"
	// NullsIgnore treats a comparison involving a missing value as a tie,
	// leaving the decision to the next sort level.
	NullsIgnore NullHandling = "ignore"
)

// DateGrouping buckets dates before comparison.
type DateGrouping string

const (
	GroupNone      DateGrouping = "none"
	GroupToday     DateGrouping = "today"
	GroupThisWeek  DateGrouping = "this_week"
	GroupThisMonth DateGrouping = "this_month"
	GroupDayOfWeek DateGrouping = "day_of_week"
	GroupTimeOnly  DateGrouping = "time_only"
)

// ComputedValue replaces normal extraction with a derived metric.
type ComputedValue string

const (
	ComputedNone           ComputedValue = ""
	ComputedTextLength     ComputedValue = "text_length"
	ComputedWordCount      ComputedValue = "word_count"
	ComputedSelectionCount ComputedValue = "selection_count"
)

// SortLevel is one ranked criterion of a multi-level sort. Direction and
// NullHandling are always set; the remaining fields are hints that only take
// effect when the target column's property type matches.
type SortLevel struct {
	ID            string        `json:"id"`
	Column        string        `json:"column"`
	Direction     Direction     `json:"direction"`
	Enabled       bool          `json:"enabled"`
	NullHandling  NullHandling  `json:"nullHandling"`
	NaturalSort   bool          `json:"naturalSort,omitempty"`
	CaseSensitive bool          `json:"caseSensitive,omitempty"`
	AbsoluteValue bool          `json:"absoluteValue,omitempty"`
	DateGrouping  DateGrouping  `json:"dateGrouping,omitempty"`
	CustomOrder   []string      `json:"customOrder,omitempty"`
	ComputedValue ComputedValue `json:"computedValue,omitempty"`
}

// NewSortLevel creates an enabled sort level with the defaults every level
// carries: ascending direction and nulls-last handling.
func NewSortLevel(column string, direction Direction) SortLevel {
	if direction != Descending {
		direction = Ascending
	}
	return SortLevel{
		ID:           uuid.NewString(),
		Column:       column,
		Direction:    direction,
		Enabled:      true,
		NullHandling: NullsLast,
		DateGrouping: GroupNone,
	}
}

// SortConfig is an ordered list of sort levels. Level 0 is the primary key,
// subsequent levels break ties. Only enabled levels participate.
type SortConfig []SortLevel

// Enabled returns the levels that participate in sorting, in configured order.
func (c SortConfig) Enabled() []SortLevel {
	var levels []SortLevel
	for _, lv := range c {
		if lv.Enabled && lv.Column != "" {
			levels = append(levels, lv)
		}
	}
	return levels
}

// SimpleSort is the single-column sort kept alongside the multi-level
// configuration for the plain column-header sort toggle.
type SimpleSort struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Levels resolves the effective sort levels: the enabled multi-level
// configuration when present, otherwise a single level synthesized from the
// simple sort.
func Levels(simple *SimpleSort, enhanced SortConfig) []SortLevel {
	if levels := enhanced.Enabled(); len(levels) > 0 {
		return levels
	}
	if simple != nil && simple.Column != "" {
		return []SortLevel{NewSortLevel(simple.Column, simple.Direction)}
	}
	return nil
}

// Sort orders rows by the given levels and returns a new slice; the input is
// never mutated. The sort is stable: rows that tie on every level keep their
// original relative order. With no enabled levels the input order is returned
// unchanged.
func Sort(rows []notion.Page, levels []SortLevel) []notion.Page {
	out := make([]notion.Page, len(rows))
	copy(out, rows)
	if len(levels) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return compareRows(&out[i], &out[j], levels) < 0
	})
	return out
}

// compareRows walks the levels in configured order, short-circuiting on the
// first level that decides the pair.
func compareRows(a, b *notion.Page, levels []SortLevel) int {
	for i := range levels {
		lv := &levels[i]
		av := Extract(propertyOf(a, lv.Column), lv)
		bv := Extract(propertyOf(b, lv.Column), lv)
		c := Compare(av, bv, lv)
		if c == 0 {
			continue
		}
		if lv.Direction == Descending {
			return -c
		}
		return c
	}
	return 0
}

func propertyOf(row *notion.Page, column string) *notion.Property {
	if prop, ok := row.Properties[column]; ok {
		return &prop
	}
	return nil
}
