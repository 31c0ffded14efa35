package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notionview/internal/notion"
)

func TestDeriveColumns(t *testing.T) {
	rows := []notion.Page{
		row("1", map[string]notion.Property{
			"Name":   titleProp("a"),
			"Status": selectProp("Done"),
		}),
		row("2", map[string]notion.Property{
			"Name":   titleProp("b"),
			"Amount": numberProp(1),
		}),
	}

	columns := DeriveColumns(rows)
	require.Len(t, columns, 3)

	t.Run("title column comes first", func(t *testing.T) {
		assert.Equal(t, "Name", columns[0].Name)
	})

	t.Run("all columns visible with sequential order", func(t *testing.T) {
		for i, col := range columns {
			assert.True(t, col.Visible)
			assert.Equal(t, i, col.Order)
		}
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		assert.Equal(t, columns, DeriveColumns(rows))
	})
}

func TestMergeColumns(t *testing.T) {
	saved := []ColumnConfig{
		{Name: "Status", Visible: true, Order: 0},
		{Name: "Name", Visible: false, Order: 1},
	}

	t.Run("no saved config uses observed", func(t *testing.T) {
		observed := []ColumnConfig{{Name: "Name", Visible: true, Order: 0}}
		assert.Equal(t, observed, MergeColumns(nil, observed))
	})

	t.Run("known columns keep saved visibility and order", func(t *testing.T) {
		observed := []ColumnConfig{
			{Name: "Name", Visible: true, Order: 0},
			{Name: "Status", Visible: true, Order: 1},
		}
		merged := MergeColumns(saved, observed)
		require.Len(t, merged, 2)
		assert.Equal(t, "Status", merged[0].Name)
		assert.Equal(t, "Name", merged[1].Name)
		assert.False(t, merged[1].Visible)
	})

	t.Run("new columns appended visible after known ones", func(t *testing.T) {
		observed := []ColumnConfig{
			{Name: "Name", Visible: true, Order: 0},
			{Name: "Status", Visible: true, Order: 1},
			{Name: "Due", Visible: true, Order: 2},
		}
		merged := MergeColumns(saved, observed)
		require.Len(t, merged, 3)
		last := merged[len(merged)-1]
		assert.Equal(t, "Due", last.Name)
		assert.True(t, last.Visible)
		assert.Greater(t, last.Order, merged[0].Order)
		assert.Greater(t, last.Order, merged[1].Order)
	})

	t.Run("saved columns no longer observed survive", func(t *testing.T) {
		merged := MergeColumns(saved, nil)
		assert.Len(t, merged, 2)
	})
}

func TestVisibleColumns(t *testing.T) {
	columns := []ColumnConfig{
		{Name: "C", Visible: true, Order: 2},
		{Name: "A", Visible: true, Order: 0},
		{Name: "B", Visible: false, Order: 1},
	}
	visible := VisibleColumns(columns)
	require.Len(t, visible, 2)
	assert.Equal(t, "A", visible[0].Name)
	assert.Equal(t, "C", visible[1].Name)
}

func TestOptionOrder(t *testing.T) {
	rows := []notion.Page{
		row("1", map[string]notion.Property{"Status": selectProp("In Progress")}),
		row("2", map[string]notion.Property{"Status": selectProp("Done")}),
		row("3", map[string]notion.Property{"Status": selectProp("In Progress")}),
		row("4", map[string]notion.Property{}),
		row("5", map[string]notion.Property{"Status": selectProp("Todo")}),
	}

	t.Run("first occurrence order without duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"In Progress", "Done", "Todo"}, OptionOrder(rows, "Status"))
	})

	t.Run("non select columns yield nothing", func(t *testing.T) {
		numbered := []notion.Page{row("1", map[string]notion.Property{"Amount": numberProp(1)})}
		assert.Nil(t, OptionOrder(numbered, "Amount"))
	})
}
