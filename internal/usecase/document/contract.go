package document

import (
	"context"

	domdoc "github.com/apatrida/cardindex/internal/domain/document"
)

// Repository defines the storage contract for document operations.
type Repository interface {
	IndexTemplate(ctx context.Context, t domdoc.Template) error
	GetTemplate(ctx context.Context, id string) (domdoc.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
	TemplateExists(ctx context.Context, id string) (bool, error)

	IndexSuggestion(ctx context.Context, s domdoc.Suggestion) error
	GetSuggestion(ctx context.Context, id string) (domdoc.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id string) error
	SuggestionExists(ctx context.Context, id string) (bool, error)
}
