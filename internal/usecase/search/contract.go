package search

import (
	"context"

	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

// Repository defines the storage contract for search operations.
type Repository interface {
	Templates(ctx context.Context, p *plan.Plan) (result.Set[document.Template], error)
	Suggestions(ctx context.Context, p *plan.Plan) (result.Set[document.Suggestion], error)
}
