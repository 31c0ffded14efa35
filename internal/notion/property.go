package notion

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the formats the API uses for date property starts: full
// RFC 3339 timestamps or bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a date string as the API emits it.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StartTime returns the parsed start of the date value.
func (d *DateValue) StartTime() (time.Time, bool) {
	if d == nil || d.Start == "" {
		return time.Time{}, false
	}
	return ParseDate(d.Start)
}

// Title extracts the page title from its title property.
func (p *Page) Title() string {
	for _, prop := range p.Properties {
		if prop.Type == TypeTitle {
			return PlainText(prop.Title)
		}
	}
	return ""
}

// DisplayTitle returns the database title as plain text.
func (d *Database) DisplayTitle() string {
	return PlainText(d.Title)
}

// PlainText concatenates the plain text of all rich text runs.
func PlainText(texts []RichText) string {
	var sb strings.Builder
	for _, text := range texts {
		sb.WriteString(text.PlainText)
	}
	return sb.String()
}

// DisplayName returns the user's name, falling back to their email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Person != nil {
		return u.Person.Email
	}
	return ""
}

// Text returns the display string of a property value. Missing payloads
// yield an empty string rather than failing.
func (p *Property) Text() string {
	if p == nil {
		return ""
	}

	switch p.Type {
	case TypeTitle:
		return PlainText(p.Title)
	case TypeRichText:
		return PlainText(p.RichText)
	case TypeNumber:
		if p.Number != nil {
			return strconv.FormatFloat(*p.Number, 'f', -1, 64)
		}
	case TypeSelect:
		if p.Select != nil {
			return p.Select.Name
		}
	case TypeMultiSelect:
		names := make([]string, 0, len(p.MultiSelect))
		for _, s := range p.MultiSelect {
			names = append(names, s.Name)
		}
		return strings.Join(names, ", ")
	case TypeStatus:
		if p.Status != nil {
			return p.Status.Name
		}
	case TypeDate:
		if p.Date != nil {
			if p.Date.End != nil {
				return p.Date.Start + " → " + *p.Date.End
			}
			return p.Date.Start
		}
	case TypeCheckbox:
		if p.Checkbox != nil {
			if *p.Checkbox {
				return "✓"
			}
			return "✗"
		}
	case TypeURL:
		if p.URL != nil {
			return *p.URL
		}
	case TypeEmail:
		if p.Email != nil {
			return *p.Email
		}
	case TypePhoneNumber:
		if p.PhoneNumber != nil {
			return *p.PhoneNumber
		}
	case TypePeople:
		names := make([]string, 0, len(p.People))
		for _, u := range p.People {
			names = append(names, u.DisplayName())
		}
		return strings.Join(names, ", ")
	case TypeFiles:
		names := make([]string, 0, len(p.Files))
		for _, f := range p.Files {
			names = append(names, f.Name)
		}
		return strings.Join(names, ", ")
	case TypeCreatedTime:
		if p.CreatedTime != nil {
			return p.CreatedTime.Format("2006-01-02 15:04:05")
		}
	case TypeLastEditedTime:
		if p.LastEditedTime != nil {
			return p.LastEditedTime.Format("2006-01-02 15:04:05")
		}
	case TypeCreatedBy:
		return p.CreatedBy.DisplayName()
	case TypeLastEditedBy:
		return p.LastEditedBy.DisplayName()
	case TypeFormula:
		if p.Formula != nil {
			return p.Formula.Text()
		}
	case TypeRollup:
		if p.Rollup != nil {
			return p.Rollup.Text()
		}
	case TypeRelation:
		if len(p.Relation) > 0 {
			return strconv.Itoa(len(p.Relation)) + " related"
		}
	case TypeUniqueID:
		if p.UniqueID != nil {
			if p.UniqueID.Prefix != nil {
				return *p.UniqueID.Prefix + "-" + strconv.Itoa(p.UniqueID.Number)
			}
			return strconv.Itoa(p.UniqueID.Number)
		}
	}

	return ""
}

// Text returns the display string of a formula result.
func (f *Formula) Text() string {
	switch f.Type {
	case "string":
		if f.String != nil {
			return *f.String
		}
	case "number":
		if f.Number != nil {
			return strconv.FormatFloat(*f.Number, 'f', -1, 64)
		}
	case "boolean":
		if f.Boolean != nil {
			return strconv.FormatBool(*f.Boolean)
		}
	case "date":
		if f.Date != nil {
			return f.Date.Start
		}
	}
	return ""
}

// Text returns the display string of a rollup result.
func (r *Rollup) Text() string {
	switch r.Type {
	case "number":
		if r.Number != nil {
			return strconv.FormatFloat(*r.Number, 'f', -1, 64)
		}
	case "date":
		if r.Date != nil {
			return r.Date.Start
		}
	case "array":
		values := make([]string, 0, len(r.Array))
		for i := range r.Array {
			values = append(values, r.Array[i].Text())
		}
		return strings.Join(values, ", ")
	}
	return ""
}

// PlainText returns the text content of a block, regardless of kind.
func (b *Block) PlainText() string {
	switch {
	case b.Paragraph != nil:
		return PlainText(b.Paragraph.RichText)
	case b.Heading1 != nil:
		return PlainText(b.Heading1.RichText)
	case b.Heading2 != nil:
		return PlainText(b.Heading2.RichText)
	case b.Heading3 != nil:
		return PlainText(b.Heading3.RichText)
	case b.BulletedListItem != nil:
		return PlainText(b.BulletedListItem.RichText)
	case b.NumberedListItem != nil:
		return PlainText(b.NumberedListItem.RichText)
	case b.Quote != nil:
		return PlainText(b.Quote.RichText)
	case b.ToDo != nil:
		return PlainText(b.ToDo.RichText)
	case b.Code != nil:
		return PlainText(b.Code.RichText)
	}
	return ""
}
