package view

import (
	"time"

	"notionview/internal/notion"
)

// Property constructors shared by the engine tests.

func titleProp(s string) notion.Property {
	return notion.Property{Type: notion.TypeTitle, Title: []notion.RichText{{PlainText: s}}}
}

func richTextProp(s string) notion.Property {
	if s == "" {
		return notion.Property{Type: notion.TypeRichText}
	}
	return notion.Property{Type: notion.TypeRichText, RichText: []notion.RichText{{PlainText: s}}}
}

func numberProp(n float64) notion.Property {
	return notion.Property{Type: notion.TypeNumber, Number: &n}
}

func selectProp(name string) notion.Property {
	return notion.Property{Type: notion.TypeSelect, Select: &notion.SelectValue{Name: name}}
}

func statusProp(name string) notion.Property {
	return notion.Property{Type: notion.TypeStatus, Status: &notion.SelectValue{Name: name}}
}

func multiSelectProp(names ...string) notion.Property {
	values := make([]notion.SelectValue, len(names))
	for i, name := range names {
		values[i] = notion.SelectValue{Name: name}
	}
	return notion.Property{Type: notion.TypeMultiSelect, MultiSelect: values}
}

func dateProp(start string) notion.Property {
	return notion.Property{Type: notion.TypeDate, Date: &notion.DateValue{Start: start}}
}

func checkboxProp(checked bool) notion.Property {
	return notion.Property{Type: notion.TypeCheckbox, Checkbox: &checked}
}

func row(id string, props map[string]notion.Property) notion.Page {
	return notion.Page{ID: id, Properties: props}
}

func rowIDs(rows []notion.Page) []string {
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	return ids
}

func mustTime(layout, s string) time.Time {
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}
