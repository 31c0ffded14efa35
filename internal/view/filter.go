package view

import (
	"strconv"
	"strings"
	"time"

	"notionview/internal/notion"
)

// Operator is a filter comparison operator.
type Operator string

const (
	OpEquals         Operator = "equals"
	OpNotEquals      Operator = "not_equals"
	OpContains       Operator = "contains"
	OpDoesNotContain Operator = "does_not_contain"
	OpGreaterThan    Operator = "greater_than"
	OpLessThan       Operator = "less_than"
	OpBefore         Operator = "before"
	OpAfter          Operator = "after"
	OpIsEmpty        Operator = "is_empty"
	OpIsNotEmpty     Operator = "is_not_empty"
)

// FilterRule is one (column, operator, value) predicate. Type records the
// column's property type at rule creation time and selects the applicable
// operators.
type FilterRule struct {
	Column   string              `json:"column"`
	Type     notion.PropertyType `json:"type"`
	Operator Operator            `json:"operator"`
	Value    string              `json:"value"`
}

// Filter returns the rows satisfying every rule. Rules combine as a logical
// AND; a rule that cannot be evaluated for a row excludes that row
// (fail-closed) rather than being silently skipped.
func Filter(rows []notion.Page, rules []FilterRule) []notion.Page {
	if len(rules) == 0 {
		out := make([]notion.Page, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]notion.Page, 0, len(rows))
	for i := range rows {
		if matchesAll(&rows[i], rules) {
			out = append(out, rows[i])
		}
	}
	return out
}

func matchesAll(row *notion.Page, rules []FilterRule) bool {
	for i := range rules {
		if !matches(row, &rules[i]) {
			return false
		}
	}
	return true
}

func matches(row *notion.Page, rule *FilterRule) bool {
	prop := propertyOf(row, rule.Column)

	// Emptiness checks apply even when the property is absent: an absent
	// property counts as empty.
	if rule.Operator == OpIsEmpty || rule.Operator == OpIsNotEmpty {
		empty, supported := emptyState(prop, rule.Type)
		if !supported {
			return false
		}
		if rule.Operator == OpIsEmpty {
			return empty
		}
		return !empty
	}

	if prop == nil {
		return false
	}

	switch rule.Operator {
	case OpContains, OpDoesNotContain:
		return matchContains(prop, rule)
	case OpEquals:
		return matchEquals(prop, rule)
	case OpNotEquals:
		return matchNotEquals(prop, rule)
	case OpGreaterThan, OpLessThan:
		return matchNumeric(prop, rule)
	case OpBefore, OpAfter:
		return matchDate(prop, rule)
	}
	return false
}

// emptyState reports whether the property holds no value, and whether the
// property type supports emptiness checks at all. A property is empty when
// it is absent, its payload array is empty, or its first run carries no
// plain text — any one of these conditions suffices.
func emptyState(prop *notion.Property, typ notion.PropertyType) (empty, supported bool) {
	if prop != nil {
		typ = prop.Type
	}
	switch typ {
	case notion.TypeTitle:
		if prop == nil {
			return true, true
		}
		return len(prop.Title) == 0 || prop.Title[0].PlainText == "", true
	case notion.TypeRichText:
		if prop == nil {
			return true, true
		}
		return len(prop.RichText) == 0 || prop.RichText[0].PlainText == "", true
	case notion.TypeSelect:
		return prop == nil || prop.Select == nil, true
	case notion.TypeStatus:
		return prop == nil || prop.Status == nil, true
	case notion.TypeNumber:
		return prop == nil || prop.Number == nil, true
	case notion.TypeDate:
		return prop == nil || prop.Date == nil, true
	}
	return false, false
}

func matchContains(prop *notion.Property, rule *FilterRule) bool {
	var text string
	switch prop.Type {
	case notion.TypeTitle:
		text = notion.PlainText(prop.Title)
	case notion.TypeRichText:
		text = notion.PlainText(prop.RichText)
	default:
		return false
	}
	found := strings.Contains(strings.ToLower(text), strings.ToLower(rule.Value))
	if rule.Operator == OpDoesNotContain {
		return !found
	}
	return found
}

func matchEquals(prop *notion.Property, rule *FilterRule) bool {
	switch prop.Type {
	case notion.TypeSelect:
		return prop.Select != nil && prop.Select.Name == rule.Value
	case notion.TypeStatus:
		return prop.Status != nil && prop.Status.Name == rule.Value
	case notion.TypeCheckbox:
		want, err := strconv.ParseBool(rule.Value)
		if err != nil {
			return false
		}
		return prop.Checkbox != nil && *prop.Checkbox == want
	case notion.TypeNumber:
		want, err := strconv.ParseFloat(rule.Value, 64)
		if err != nil {
			return false
		}
		return numberOf(prop) == want
	}
	return false
}

func matchNotEquals(prop *notion.Property, rule *FilterRule) bool {
	switch prop.Type {
	case notion.TypeSelect:
		return prop.Select == nil || prop.Select.Name != rule.Value
	case notion.TypeStatus:
		return prop.Status == nil || prop.Status.Name != rule.Value
	}
	return false
}

func matchNumeric(prop *notion.Property, rule *FilterRule) bool {
	if prop.Type != notion.TypeNumber {
		return false
	}
	want, err := strconv.ParseFloat(rule.Value, 64)
	if err != nil {
		return false
	}
	n := numberOf(prop)
	if rule.Operator == OpGreaterThan {
		return n > want
	}
	return n < want
}

func matchDate(prop *notion.Property, rule *FilterRule) bool {
	if prop.Type != notion.TypeDate {
		return false
	}
	want, ok := notion.ParseDate(rule.Value)
	if !ok {
		return false
	}
	// A missing date start compares as the epoch.
	start := time.Unix(0, 0)
	if t, ok := prop.Date.StartTime(); ok {
		start = t
	}
	if rule.Operator == OpBefore {
		return start.Before(want)
	}
	return start.After(want)
}

// numberOf treats a missing number payload as 0 for numeric comparisons.
func numberOf(prop *notion.Property) float64 {
	if prop.Number == nil {
		return 0
	}
	return *prop.Number
}
