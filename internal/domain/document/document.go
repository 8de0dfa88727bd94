// Package document holds the two indexed document kinds: card templates and
// autocomplete suggestions.
package document

import "time"

// Template field names as stored in the template index.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAuthor      = "author"
	FieldCode        = "code"
	FieldClasses     = "classes"
	FieldTags        = "tags"
	FieldDeleted     = "deleted"
	FieldModified    = "modified"

	// FieldCodeExact is the keyword subfield used for exact code lookups.
	FieldCodeExact = "code.keyword"
)

// FieldValue is the analyzed value field of the suggestion index.
const FieldValue = "value"

// Template is a card template document. ID is immutable once assigned.
// Soft-deleted templates stay physically present in the index and are
// excluded from results by a mandatory filter clause.
type Template struct {
	ID          string
	Title       string
	Description string
	Author      string
	Code        string
	Classes     string
	Tags        []string
	Deleted     bool
	Modified    time.Time
}

// Suggestion is an autocomplete suggestion document.
type Suggestion struct {
	ID       string
	Value    string
	Deleted  bool
	Modified time.Time
}

// TextFields lists the analyzed template fields eligible for highlighting.
func TextFields() []string {
	return []string{FieldTitle, FieldDescription, FieldAuthor, FieldCode, FieldClasses, FieldTags}
}
