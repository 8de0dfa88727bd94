package sync

import (
	"context"
	"time"

	domdoc "github.com/apatrida/cardindex/internal/domain/document"
)

// Source yields documents changed since a watermark.
type Source interface {
	Templates(ctx context.Context, since time.Time) ([]domdoc.Template, error)
	Suggestions(ctx context.Context, since time.Time) ([]domdoc.Suggestion, error)
}

// Indexer writes documents into the search engine.
type Indexer interface {
	IndexTemplate(ctx context.Context, t domdoc.Template) error
	IndexSuggestion(ctx context.Context, s domdoc.Suggestion) error
}
