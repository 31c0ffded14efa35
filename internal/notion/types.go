package notion

import (
	"time"
)

// Database represents a Notion database summary.
type Database struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	Title          []RichText `json:"title"`
	Icon           *Icon      `json:"icon"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	URL            string     `json:"url"`
}

// Page represents a Notion page. Pages returned by a database query are the
// rows of that database, one Property per column.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	Cover          *File               `json:"cover"`
	Icon           *Icon               `json:"icon"`
	Parent         Parent              `json:"parent"`
	Archived       bool                `json:"archived"`
	Properties     map[string]Property `json:"properties"`
	URL            string              `json:"url"`
}

// User represents a Notion user.
type User struct {
	Object    string  `json:"object"`
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Type      string  `json:"type,omitempty"`
	Person    *Person `json:"person,omitempty"`
}

// Person carries the person-specific part of a user.
type Person struct {
	Email string `json:"email"`
}

// File represents a file object.
type File struct {
	Type     string    `json:"type"`
	Name     string    `json:"name,omitempty"`
	External *External `json:"external,omitempty"`
	File     *FileData `json:"file,omitempty"`
}

// External represents an externally hosted file.
type External struct {
	URL string `json:"url"`
}

// FileData represents a Notion-hosted file.
type FileData struct {
	URL        string    `json:"url"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// Icon represents a page or database icon (emoji or file).
type Icon struct {
	Type     string    `json:"type"`
	Emoji    string    `json:"emoji,omitempty"`
	External *External `json:"external,omitempty"`
	File     *FileData `json:"file,omitempty"`
}

// Parent represents the parent of a page.
type Parent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
}

// PropertyType discriminates the Property union.
type PropertyType string

const (
	TypeTitle          PropertyType = "title"
	TypeRichText       PropertyType = "rich_text"
	TypeNumber         PropertyType = "number"
	TypeSelect         PropertyType = "select"
	TypeMultiSelect    PropertyType = "multi_select"
	TypeStatus         PropertyType = "status"
	TypeDate           PropertyType = "date"
	TypeCheckbox       PropertyType = "checkbox"
	TypeURL            PropertyType = "url"
	TypeEmail          PropertyType = "email"
	TypePhoneNumber    PropertyType = "phone_number"
	TypePeople         PropertyType = "people"
	TypeFiles          PropertyType = "files"
	TypeCreatedTime    PropertyType = "created_time"
	TypeLastEditedTime PropertyType = "last_edited_time"
	TypeCreatedBy      PropertyType = "created_by"
	TypeLastEditedBy   PropertyType = "last_edited_by"
	TypeFormula        PropertyType = "formula"
	TypeRollup         PropertyType = "rollup"
	TypeRelation       PropertyType = "relation"
	TypeButton         PropertyType = "button"
	TypeUniqueID       PropertyType = "unique_id"
)

// Property is a page property value, tagged by Type. Exactly one of the
// payload fields matching Type is expected to be set; all payload access must
// tolerate a missing payload since the upstream source is not trusted to be
// well formed.
type Property struct {
	ID             string        `json:"id,omitempty"`
	Type           PropertyType  `json:"type"`
	Title          []RichText    `json:"title,omitempty"`
	RichText       []RichText    `json:"rich_text,omitempty"`
	Number         *float64      `json:"number,omitempty"`
	Select         *SelectValue  `json:"select,omitempty"`
	MultiSelect    []SelectValue `json:"multi_select,omitempty"`
	Status         *SelectValue  `json:"status,omitempty"`
	Date           *DateValue    `json:"date,omitempty"`
	Checkbox       *bool         `json:"checkbox,omitempty"`
	URL            *string       `json:"url,omitempty"`
	Email          *string       `json:"email,omitempty"`
	PhoneNumber    *string       `json:"phone_number,omitempty"`
	People         []User        `json:"people,omitempty"`
	Files          []File        `json:"files,omitempty"`
	CreatedTime    *time.Time    `json:"created_time,omitempty"`
	LastEditedTime *time.Time    `json:"last_edited_time,omitempty"`
	CreatedBy      *User         `json:"created_by,omitempty"`
	LastEditedBy   *User         `json:"last_edited_by,omitempty"`
	Formula        *Formula      `json:"formula,omitempty"`
	Rollup         *Rollup       `json:"rollup,omitempty"`
	Relation       []Relation    `json:"relation,omitempty"`
	Button         *struct{}     `json:"button,omitempty"`
	UniqueID       *UniqueID     `json:"unique_id,omitempty"`
}

// RichText represents one run of rich text content.
type RichText struct {
	Type        string       `json:"type,omitempty"`
	Text        *TextContent `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text"`
	Href        *string      `json:"href,omitempty"`
}

// TextContent represents the text payload of a rich text run.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link represents a link.
type Link struct {
	URL string `json:"url"`
}

// Annotations represents text styling.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// SelectValue represents a select, multi-select or status option.
type SelectValue struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue represents a date property value.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// Formula represents a formula result, tagged by Type
// (string, number, boolean or date).
type Formula struct {
	Type    string     `json:"type"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Relation represents one related page reference.
type Relation struct {
	ID string `json:"id"`
}

// Rollup represents a rollup result, tagged by Type
// (number, date or array).
type Rollup struct {
	Type   string     `json:"type"`
	Number *float64   `json:"number,omitempty"`
	Date   *DateValue `json:"date,omitempty"`
	Array  []Property `json:"array,omitempty"`
}

// UniqueID represents an auto-incremented unique ID.
type UniqueID struct {
	Prefix *string `json:"prefix,omitempty"`
	Number int     `json:"number"`
}

// Block represents one content block of a page. Only the block kinds the
// document renderer understands carry a payload; everything else renders as
// its plain text, if any.
type Block struct {
	Object           string     `json:"object"`
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	HasChildren      bool       `json:"has_children"`
	Paragraph        *BlockText `json:"paragraph,omitempty"`
	Heading1         *BlockText `json:"heading_1,omitempty"`
	Heading2         *BlockText `json:"heading_2,omitempty"`
	Heading3         *BlockText `json:"heading_3,omitempty"`
	BulletedListItem *BlockText `json:"bulleted_list_item,omitempty"`
	NumberedListItem *BlockText `json:"numbered_list_item,omitempty"`
	Quote            *BlockText `json:"quote,omitempty"`
	ToDo             *ToDoBlock `json:"to_do,omitempty"`
	Code             *CodeBlock `json:"code,omitempty"`
}

// BlockText is the rich text payload shared by most block kinds.
type BlockText struct {
	RichText []RichText `json:"rich_text"`
}

// ToDoBlock is the payload of a to_do block.
type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// CodeBlock is the payload of a code block.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language,omitempty"`
}
