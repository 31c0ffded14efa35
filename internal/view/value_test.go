package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notionview/internal/notion"
)

func TestExtractTextTypes(t *testing.T) {
	level := NewSortLevel("col", Ascending)

	t.Run("title uses first run's plain text", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeTitle, Title: []notion.RichText{
			{PlainText: "first"}, {PlainText: "second"},
		}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, KindText, v.Kind)
		assert.Equal(t, "first", v.Text)
	})

	t.Run("empty rich text is a miss", func(t *testing.T) {
		prop := richTextProp("")
		assert.Nil(t, Extract(&prop, &level))
	})

	t.Run("select name", func(t *testing.T) {
		prop := selectProp("Done")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, "Done", v.Text)
	})

	t.Run("select with missing payload is a miss", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeSelect}
		assert.Nil(t, Extract(&prop, &level))
	})

	t.Run("multi select joins names", func(t *testing.T) {
		prop := multiSelectProp("a", "b")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, "a, b", v.Text)
	})

	t.Run("people fall back to email", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypePeople, People: []notion.User{
			{Person: &notion.Person{Email: "a@example.com"}},
		}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, "a@example.com", v.Text)
	})

	t.Run("missing property is a miss", func(t *testing.T) {
		assert.Nil(t, Extract(nil, &level))
	})
}

func TestExtractNumericTypes(t *testing.T) {
	level := NewSortLevel("col", Ascending)

	t.Run("number", func(t *testing.T) {
		prop := numberProp(4.5)
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, KindNumber, v.Kind)
		assert.Equal(t, 4.5, v.Number)
	})

	t.Run("checkbox maps to 0 and 1", func(t *testing.T) {
		checked := checkboxProp(true)
		unchecked := checkboxProp(false)
		assert.Equal(t, float64(1), Extract(&checked, &level).Number)
		assert.Equal(t, float64(0), Extract(&unchecked, &level).Number)
	})

	t.Run("relation counts related items", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeRelation, Relation: []notion.Relation{{ID: "a"}, {ID: "b"}}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(2), v.Number)
	})
}

func TestExtractDateTypes(t *testing.T) {
	level := NewSortLevel("col", Ascending)

	t.Run("date start", func(t *testing.T) {
		prop := dateProp("2024-01-15")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, KindDate, v.Kind)
		assert.Equal(t, mustTime("2006-01-02", "2024-01-15"), v.Time)
	})

	t.Run("date with timestamp start", func(t *testing.T) {
		prop := dateProp("2024-01-15T09:30:00")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, 9, v.Time.Hour())
	})

	t.Run("missing start is a miss", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeDate, Date: &notion.DateValue{}}
		assert.Nil(t, Extract(&prop, &level))
	})

	t.Run("created time", func(t *testing.T) {
		ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		prop := notion.Property{Type: notion.TypeCreatedTime, CreatedTime: &ts}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.True(t, v.Time.Equal(ts))
	})
}

func TestExtractFormula(t *testing.T) {
	level := NewSortLevel("col", Ascending)

	t.Run("number formula", func(t *testing.T) {
		n := 7.0
		prop := notion.Property{Type: notion.TypeFormula, Formula: &notion.Formula{Type: "number", Number: &n}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, 7.0, v.Number)
	})

	t.Run("boolean formula maps to 0 and 1", func(t *testing.T) {
		b := true
		prop := notion.Property{Type: notion.TypeFormula, Formula: &notion.Formula{Type: "boolean", Boolean: &b}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(1), v.Number)
	})

	t.Run("date formula", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeFormula, Formula: &notion.Formula{
			Type: "date", Date: &notion.DateValue{Start: "2024-06-01"},
		}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, KindDate, v.Kind)
	})

	t.Run("missing formula payload is a miss", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeFormula}
		assert.Nil(t, Extract(&prop, &level))
	})
}

func TestExtractRollup(t *testing.T) {
	level := NewSortLevel("col", Ascending)

	t.Run("number rollup", func(t *testing.T) {
		n := 3.0
		prop := notion.Property{Type: notion.TypeRollup, Rollup: &notion.Rollup{Type: "number", Number: &n}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, 3.0, v.Number)
	})

	t.Run("array rollup extracts from first element", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeRollup, Rollup: &notion.Rollup{
			Type:  "array",
			Array: []notion.Property{selectProp("High"), selectProp("Low")},
		}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, "High", v.Text)
	})

	t.Run("array rollup falls back to length", func(t *testing.T) {
		prop := notion.Property{Type: notion.TypeRollup, Rollup: &notion.Rollup{
			Type:  "array",
			Array: []notion.Property{{Type: notion.TypeSelect}, {Type: notion.TypeSelect}},
		}}
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(2), v.Number)
	})
}

func TestExtractComputedValues(t *testing.T) {
	t.Run("text length counts characters", func(t *testing.T) {
		level := NewSortLevel("col", Ascending)
		level.ComputedValue = ComputedTextLength
		prop := titleProp("héllo")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(5), v.Number)
	})

	t.Run("word count of empty text is zero", func(t *testing.T) {
		level := NewSortLevel("col", Ascending)
		level.ComputedValue = ComputedWordCount
		prop := richTextProp("")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(0), v.Number)
	})

	t.Run("word count", func(t *testing.T) {
		level := NewSortLevel("col", Ascending)
		level.ComputedValue = ComputedWordCount
		prop := richTextProp("one two  three")
		v := Extract(&prop, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(3), v.Number)
	})

	t.Run("selection count only applies to multi select", func(t *testing.T) {
		level := NewSortLevel("col", Ascending)
		level.ComputedValue = ComputedSelectionCount

		tags := multiSelectProp("a", "b", "c")
		v := Extract(&tags, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(3), v.Number)

		name := titleProp("a b c")
		v = Extract(&name, &level)
		require.NotNil(t, v)
		assert.Equal(t, float64(0), v.Number)
	})
}
