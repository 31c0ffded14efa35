package view

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"notionview/internal/notion"
)

// Kind classifies an extracted value.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
)

// Value is a comparable value extracted from a property. A nil *Value is the
// "no representable value" sentinel consumed by the comparator's null
// handling.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

func textValue(s string) *Value   { return &Value{Kind: KindText, Text: s} }
func numberValue(n float64) *Value { return &Value{Kind: KindNumber, Number: n} }
func dateValue(t time.Time) *Value { return &Value{Kind: KindDate, Time: t} }

// String renders the value for the mismatched-kind comparison fallback.
func (v *Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindDate:
		return v.Time.Format(time.RFC3339)
	default:
		return v.Text
	}
}

// Extract maps a property to a comparable value under the given sort level.
// It returns nil for a missing property or a property with no representable
// value. Malformed payloads (a select property without a select object, a
// date without a start) degrade to nil rather than failing.
func Extract(prop *notion.Property, level *SortLevel) *Value {
	if prop == nil {
		return nil
	}
	if level != nil && level.ComputedValue != ComputedNone {
		return numberValue(computed(prop, level.ComputedValue))
	}
	return extract(prop)
}

// computed derives a numeric metric from the property's textual form.
// Unrecognized combinations yield 0.
func computed(prop *notion.Property, cv ComputedValue) float64 {
	switch cv {
	case ComputedTextLength:
		return float64(utf8.RuneCountInString(prop.Text()))
	case ComputedWordCount:
		return float64(len(strings.Fields(prop.Text())))
	case ComputedSelectionCount:
		if prop.Type == notion.TypeMultiSelect {
			return float64(len(prop.MultiSelect))
		}
		return 0
	}
	return 0
}

func extract(prop *notion.Property) *Value {
	switch prop.Type {
	case notion.TypeTitle:
		return firstRunText(prop.Title)
	case notion.TypeRichText:
		return firstRunText(prop.RichText)
	case notion.TypeNumber:
		if prop.Number == nil {
			return nil
		}
		return numberValue(*prop.Number)
	case notion.TypeSelect:
		if prop.Select == nil {
			return nil
		}
		return textValue(prop.Select.Name)
	case notion.TypeStatus:
		if prop.Status == nil {
			return nil
		}
		return textValue(prop.Status.Name)
	case notion.TypeMultiSelect:
		if len(prop.MultiSelect) == 0 {
			return nil
		}
		names := make([]string, 0, len(prop.MultiSelect))
		for _, s := range prop.MultiSelect {
			names = append(names, s.Name)
		}
		return textValue(strings.Join(names, ", "))
	case notion.TypeCheckbox:
		if prop.Checkbox == nil {
			return nil
		}
		if *prop.Checkbox {
			return numberValue(1)
		}
		return numberValue(0)
	case notion.TypeURL:
		return optionalString(prop.URL)
	case notion.TypeEmail:
		return optionalString(prop.Email)
	case notion.TypePhoneNumber:
		return optionalString(prop.PhoneNumber)
	case notion.TypePeople:
		if len(prop.People) == 0 {
			return nil
		}
		names := make([]string, 0, len(prop.People))
		for _, u := range prop.People {
			names = append(names, u.DisplayName())
		}
		return textValue(strings.Join(names, ", "))
	case notion.TypeFiles:
		return numberValue(float64(len(prop.Files)))
	case notion.TypeDate:
		return extractDate(prop.Date)
	case notion.TypeCreatedTime:
		if prop.CreatedTime == nil {
			return nil
		}
		return dateValue(*prop.CreatedTime)
	case notion.TypeLastEditedTime:
		if prop.LastEditedTime == nil {
			return nil
		}
		return dateValue(*prop.LastEditedTime)
	case notion.TypeCreatedBy:
		return userValue(prop.CreatedBy)
	case notion.TypeLastEditedBy:
		return userValue(prop.LastEditedBy)
	case notion.TypeFormula:
		return extractFormula(prop.Formula)
	case notion.TypeRollup:
		return extractRollup(prop.Rollup)
	case notion.TypeRelation:
		return numberValue(float64(len(prop.Relation)))
	case notion.TypeButton:
		return nil
	default:
		// Unknown types fall back to their display text.
		if s := prop.Text(); s != "" {
			return textValue(s)
		}
		return nil
	}
}

// firstRunText extracts the first rich text run's plain text.
func firstRunText(runs []notion.RichText) *Value {
	if len(runs) == 0 || runs[0].PlainText == "" {
		return nil
	}
	return textValue(runs[0].PlainText)
}

func optionalString(s *string) *Value {
	if s == nil || *s == "" {
		return nil
	}
	return textValue(*s)
}

func userValue(u *notion.User) *Value {
	if name := u.DisplayName(); name != "" {
		return textValue(name)
	}
	return nil
}

func extractDate(d *notion.DateValue) *Value {
	if t, ok := d.StartTime(); ok {
		return dateValue(t)
	}
	return nil
}

// extractFormula dispatches again on the formula result type using the same
// rules as direct properties.
func extractFormula(f *notion.Formula) *Value {
	if f == nil {
		return nil
	}
	switch f.Type {
	case "string":
		return optionalString(f.String)
	case "number":
		if f.Number == nil {
			return nil
		}
		return numberValue(*f.Number)
	case "boolean":
		if f.Boolean == nil {
			return nil
		}
		if *f.Boolean {
			return numberValue(1)
		}
		return numberValue(0)
	case "date":
		return extractDate(f.Date)
	}
	return nil
}

// extractRollup takes number and date rollups directly; for array rollups it
// extracts from the first element, falling back to the array length.
func extractRollup(r *notion.Rollup) *Value {
	if r == nil {
		return nil
	}
	switch r.Type {
	case "number":
		if r.Number == nil {
			return nil
		}
		return numberValue(*r.Number)
	case "date":
		return extractDate(r.Date)
	case "array":
		if len(r.Array) == 0 {
			return nil
		}
		if v := extract(&r.Array[0]); v != nil {
			return v
		}
		return numberValue(float64(len(r.Array)))
	}
	return nil
}
