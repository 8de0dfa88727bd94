// Package search executes query plans and assembles typed result sets.
package search

import (
	"context"
	"fmt"

	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/domain/search/result"
	"github.com/apatrida/cardindex/internal/engine"
)

// store is the consumer interface for plan execution (ISP).
type store interface {
	Search(ctx context.Context, index string, p *plan.Plan) (*engine.Result, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store       store
	templates   string
	suggestions string
}

// New creates a search repository bound to the two configured indexes.
func New(s store, templatesIndex, suggestionsIndex string) *Repo {
	return &Repo{store: s, templates: templatesIndex, suggestions: suggestionsIndex}
}

// Templates runs a plan against the template index.
func (r *Repo) Templates(ctx context.Context, p *plan.Plan) (result.Set[document.Template], error) {
	res, err := r.store.Search(ctx, r.templates, p)
	if err != nil {
		return result.Set[document.Template]{}, fmt.Errorf("search templates: %w", err)
	}
	return assemble(res, decodeTemplateHit)
}

// Suggestions runs a plan against the suggestion index.
func (r *Repo) Suggestions(ctx context.Context, p *plan.Plan) (result.Set[document.Suggestion], error) {
	res, err := r.store.Search(ctx, r.suggestions, p)
	if err != nil {
		return result.Set[document.Suggestion]{}, fmt.Errorf("search suggestions: %w", err)
	}
	return assemble(res, decodeSuggestionHit)
}

// assemble converts an engine result into a typed set. A hit whose source
// fails to decode aborts the whole response rather than silently dropping
// rows; a malformed document in the index is a data bug worth surfacing.
func assemble[T any](res *engine.Result, decode func(engine.Hit) (T, error)) (result.Set[T], error) {
	set := result.Set[T]{
		Hits:     make([]result.Hit[T], 0, len(res.Hits)),
		Total:    res.Total,
		RawQuery: res.RawQuery,
	}
	for _, h := range res.Hits {
		doc, err := decode(h)
		if err != nil {
			return result.Set[T]{}, fmt.Errorf("hit %s: %w", h.ID, err)
		}
		set.Hits = append(set.Hits, result.Hit[T]{
			Doc:        doc,
			Score:      h.Score,
			Highlights: h.Highlights,
		})
	}
	return set, nil
}
