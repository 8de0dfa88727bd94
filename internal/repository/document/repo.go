// Package document persists templates and suggestions in their indexes.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apatrida/cardindex/internal/domain"
	domdoc "github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/engine"
)

// store is the consumer interface for document operations (ISP).
type store interface {
	IndexDocument(ctx context.Context, index, id string, doc any) error
	DeleteDocument(ctx context.Context, index, id string) error
	GetDocument(ctx context.Context, index, id string) (json.RawMessage, error)
	DocumentExists(ctx context.Context, index, id string) (bool, error)
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store       store
	templates   string
	suggestions string
}

// New creates a document repository bound to the two configured indexes.
func New(s store, templatesIndex, suggestionsIndex string) *Repo {
	return &Repo{store: s, templates: templatesIndex, suggestions: suggestionsIndex}
}

// IndexTemplate stores a template, replacing any previous version.
func (r *Repo) IndexTemplate(ctx context.Context, t domdoc.Template) error {
	if err := r.store.IndexDocument(ctx, r.templates, t.ID, templateToDTO(t)); err != nil {
		return fmt.Errorf("index template %s: %w", t.ID, err)
	}
	return nil
}

// GetTemplate fetches a template by id.
func (r *Repo) GetTemplate(ctx context.Context, id string) (domdoc.Template, error) {
	src, err := r.store.GetDocument(ctx, r.templates, id)
	if err != nil {
		if errors.Is(err, engine.ErrDocumentNotFound) {
			return domdoc.Template{}, domain.ErrDocumentNotFound
		}
		return domdoc.Template{}, fmt.Errorf("get template %s: %w", id, err)
	}
	return DecodeTemplate(src)
}

// DeleteTemplate removes a template by id.
func (r *Repo) DeleteTemplate(ctx context.Context, id string) error {
	if err := r.store.DeleteDocument(ctx, r.templates, id); err != nil {
		if errors.Is(err, engine.ErrDocumentNotFound) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("delete template %s: %w", id, err)
	}
	return nil
}

// TemplateExists reports whether a template with the given id is present.
func (r *Repo) TemplateExists(ctx context.Context, id string) (bool, error) {
	ok, err := r.store.DocumentExists(ctx, r.templates, id)
	if err != nil {
		return false, fmt.Errorf("template exists %s: %w", id, err)
	}
	return ok, nil
}

// IndexSuggestion stores a suggestion, replacing any previous version.
func (r *Repo) IndexSuggestion(ctx context.Context, s domdoc.Suggestion) error {
	if err := r.store.IndexDocument(ctx, r.suggestions, s.ID, suggestionToDTO(s)); err != nil {
		return fmt.Errorf("index suggestion %s: %w", s.ID, err)
	}
	return nil
}

// GetSuggestion fetches a suggestion by id.
func (r *Repo) GetSuggestion(ctx context.Context, id string) (domdoc.Suggestion, error) {
	src, err := r.store.GetDocument(ctx, r.suggestions, id)
	if err != nil {
		if errors.Is(err, engine.ErrDocumentNotFound) {
			return domdoc.Suggestion{}, domain.ErrDocumentNotFound
		}
		return domdoc.Suggestion{}, fmt.Errorf("get suggestion %s: %w", id, err)
	}
	return DecodeSuggestion(src)
}

// DeleteSuggestion removes a suggestion by id.
func (r *Repo) DeleteSuggestion(ctx context.Context, id string) error {
	if err := r.store.DeleteDocument(ctx, r.suggestions, id); err != nil {
		if errors.Is(err, engine.ErrDocumentNotFound) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("delete suggestion %s: %w", id, err)
	}
	return nil
}

// SuggestionExists reports whether a suggestion with the given id is present.
func (r *Repo) SuggestionExists(ctx context.Context, id string) (bool, error) {
	ok, err := r.store.DocumentExists(ctx, r.suggestions, id)
	if err != nil {
		return false, fmt.Errorf("suggestion exists %s: %w", id, err)
	}
	return ok, nil
}
