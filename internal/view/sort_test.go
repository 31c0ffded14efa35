package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notionview/internal/notion"
)

func TestSortIdentity(t *testing.T) {
	rows := []notion.Page{
		row("1", map[string]notion.Property{"Name": titleProp("b")}),
		row("2", map[string]notion.Property{"Name": titleProp("a")}),
		row("3", map[string]notion.Property{"Name": titleProp("c")}),
	}

	t.Run("no levels preserves input order", func(t *testing.T) {
		got := Sort(rows, nil)
		assert.Equal(t, []string{"1", "2", "3"}, rowIDs(got))
	})

	t.Run("disabled levels preserve input order", func(t *testing.T) {
		level := NewSortLevel("Name", Ascending)
		level.Enabled = false
		cfg := SortConfig{level}
		got := Sort(rows, cfg.Enabled())
		assert.Equal(t, []string{"1", "2", "3"}, rowIDs(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		level := NewSortLevel("Name", Ascending)
		_ = Sort(rows, []SortLevel{level})
		assert.Equal(t, []string{"1", "2", "3"}, rowIDs(rows))
	})
}

func TestSortStability(t *testing.T) {
	// All rows tie on the sort column: original relative order must survive.
	rows := []notion.Page{
		row("1", map[string]notion.Property{"Status": selectProp("Done")}),
		row("2", map[string]notion.Property{"Status": selectProp("Done")}),
		row("3", map[string]notion.Property{"Status": selectProp("Done")}),
	}
	got := Sort(rows, []SortLevel{NewSortLevel("Status", Ascending)})
	assert.Equal(t, []string{"1", "2", "3"}, rowIDs(got))
}

func TestSortIdempotence(t *testing.T) {
	rows := []notion.Page{
		row("1", map[string]notion.Property{"Name": titleProp("cherry")}),
		row("2", map[string]notion.Property{"Name": titleProp("apple")}),
		row("3", map[string]notion.Property{"Name": titleProp("banana")}),
	}
	levels := []SortLevel{NewSortLevel("Name", Ascending)}

	once := Sort(rows, levels)
	twice := Sort(once, levels)
	assert.Equal(t, rowIDs(once), rowIDs(twice))
}

func TestSortNullPlacement(t *testing.T) {
	rows := []notion.Page{
		row("null-1", map[string]notion.Property{}),
		row("b", map[string]notion.Property{"Name": titleProp("b")}),
		row("null-2", map[string]notion.Property{}),
		row("a", map[string]notion.Property{"Name": titleProp("a")}),
	}

	t.Run("nulls last", func(t *testing.T) {
		level := NewSortLevel("Name", Ascending)
		level.NullHandling = NullsLast
		got := rowIDs(Sort(rows, []SortLevel{level}))
		assert.Equal(t, []string{"a", "b", "null-1", "null-2"}, got)
	})

	t.Run("nulls first", func(t *testing.T) {
		level := NewSortLevel("Name", Ascending)
		level.NullHandling = NullsFirst
		got := rowIDs(Sort(rows, []SortLevel{level}))
		assert.Equal(t, []string{"null-1", "null-2", "a", "b"}, got)
	})
}

func TestSortMultiLevelTieBreak(t *testing.T) {
	rows := []notion.Page{
		row("Bob", map[string]notion.Property{"Name": titleProp("Bob"), "Age": numberProp(30)}),
		row("Al", map[string]notion.Property{"Name": titleProp("Al"), "Age": numberProp(30)}),
		row("Cy", map[string]notion.Property{"Name": titleProp("Cy"), "Age": numberProp(25)}),
	}
	levels := []SortLevel{
		NewSortLevel("Age", Ascending),
		NewSortLevel("Name", Ascending),
	}
	got := rowIDs(Sort(rows, levels))
	assert.Equal(t, []string{"Cy", "Al", "Bob"}, got)
}

func TestSortCustomOrderPrecedence(t *testing.T) {
	rows := []notion.Page{
		row("A", map[string]notion.Property{"Status": selectProp("A")}),
		row("B", map[string]notion.Property{"Status": selectProp("B")}),
	}
	level := NewSortLevel("Status", Ascending)
	level.CustomOrder = []string{"B", "A"}
	got := rowIDs(Sort(rows, []SortLevel{level}))
	assert.Equal(t, []string{"B", "A"}, got)
}

func TestSortDescending(t *testing.T) {
	rows := []notion.Page{
		row("1", map[string]notion.Property{"Amount": numberProp(1)}),
		row("3", map[string]notion.Property{"Amount": numberProp(3)}),
		row("2", map[string]notion.Property{"Amount": numberProp(2)}),
	}
	got := rowIDs(Sort(rows, []SortLevel{NewSortLevel("Amount", Descending)}))
	assert.Equal(t, []string{"3", "2", "1"}, got)
}

func TestSortTimeOnlyGrouping(t *testing.T) {
	rows := []notion.Page{
		row("evening", map[string]notion.Property{"When": dateProp("2024-01-01T17:00:00")}),
		row("morning", map[string]notion.Property{"When": dateProp("2024-01-01T09:00:00")}),
	}
	level := NewSortLevel("When", Ascending)
	level.DateGrouping = GroupTimeOnly
	got := rowIDs(Sort(rows, []SortLevel{level}))
	assert.Equal(t, []string{"morning", "evening"}, got)
}

func TestLevels(t *testing.T) {
	t.Run("enabled enhanced levels win", func(t *testing.T) {
		enhanced := SortConfig{NewSortLevel("Name", Ascending)}
		simple := &SimpleSort{Column: "Age", Direction: Descending}
		levels := Levels(simple, enhanced)
		require.Len(t, levels, 1)
		assert.Equal(t, "Name", levels[0].Column)
	})

	t.Run("simple sort synthesizes one level", func(t *testing.T) {
		simple := &SimpleSort{Column: "Age", Direction: Descending}
		levels := Levels(simple, nil)
		require.Len(t, levels, 1)
		assert.Equal(t, "Age", levels[0].Column)
		assert.Equal(t, Descending, levels[0].Direction)
		assert.Equal(t, NullsLast, levels[0].NullHandling)
	})

	t.Run("nothing configured means no levels", func(t *testing.T) {
		assert.Nil(t, Levels(nil, nil))
	})
}

func TestNewSortLevelDefaults(t *testing.T) {
	level := NewSortLevel("Name", "bogus")
	assert.NotEmpty(t, level.ID)
	assert.Equal(t, Ascending, level.Direction)
	assert.True(t, level.Enabled)
	assert.Equal(t, NullsLast, level.NullHandling)
	assert.Equal(t, GroupNone, level.DateGrouping)
}
