package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/apatrida/cardindex/internal/domain/document"
)

// Wire representation of documents. The domain model keeps deleted as a
// plain boolean; how it is serialized toward the engine is decided here.

type templateDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Code        string    `json:"code"`
	Classes     string    `json:"classes"`
	Tags        []string  `json:"tags"`
	Deleted     bool      `json:"deleted"`
	Modified    time.Time `json:"modified"`
}

type suggestionDTO struct {
	ID       string    `json:"id"`
	Value    string    `json:"value"`
	Deleted  bool      `json:"deleted"`
	Modified time.Time `json:"modified"`
}

func templateToDTO(t document.Template) templateDTO {
	return templateDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Author:      t.Author,
		Code:        t.Code,
		Classes:     t.Classes,
		Tags:        t.Tags,
		Deleted:     t.Deleted,
		Modified:    t.Modified,
	}
}

func templateFromDTO(d templateDTO) document.Template {
	return document.Template{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Author:      d.Author,
		Code:        d.Code,
		Classes:     d.Classes,
		Tags:        d.Tags,
		Deleted:     d.Deleted,
		Modified:    d.Modified,
	}
}

func suggestionToDTO(s document.Suggestion) suggestionDTO {
	return suggestionDTO{ID: s.ID, Value: s.Value, Deleted: s.Deleted, Modified: s.Modified}
}

func suggestionFromDTO(d suggestionDTO) document.Suggestion {
	return document.Suggestion{ID: d.ID, Value: d.Value, Deleted: d.Deleted, Modified: d.Modified}
}

// DecodeTemplate parses a raw engine source into a Template.
func DecodeTemplate(src json.RawMessage) (document.Template, error) {
	var d templateDTO
	if err := json.Unmarshal(src, &d); err != nil {
		return document.Template{}, fmt.Errorf("decode template: %w", err)
	}
	return templateFromDTO(d), nil
}

// DecodeSuggestion parses a raw engine source into a Suggestion.
func DecodeSuggestion(src json.RawMessage) (document.Suggestion, error) {
	var d suggestionDTO
	if err := json.Unmarshal(src, &d); err != nil {
		return document.Suggestion{}, fmt.Errorf("decode suggestion: %w", err)
	}
	return suggestionFromDTO(d), nil
}
