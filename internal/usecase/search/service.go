// Package search plans and executes ranked queries over both indexes.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/request"
	"github.com/apatrida/cardindex/internal/domain/search/result"
	"github.com/apatrida/cardindex/internal/metrics"
)

// Branch labels for search metrics.
const (
	branchExact   = "exact"
	branchFuzzy   = "fuzzy"
	branchSuggest = "suggest"
)

// Service handles template and suggestion search.
type Service struct {
	repo    Repository
	planner *Planner
	logger  *zap.Logger
}

// New creates a search service.
func New(repo Repository, planner *Planner, logger *zap.Logger) *Service {
	return &Service{repo: repo, planner: planner, logger: logger}
}

// Templates executes a template search. A query that is a full product
// code is answered by exact lookup first; ranked search runs only when
// the exact branch finds nothing.
func (s *Service) Templates(ctx context.Context, req request.Request) (result.Set[document.Template], error) {
	start := time.Now()
	defer observeDuration("templates", start)

	if s.planner.IsExactCode(req.Query()) {
		set, err := s.repo.Templates(ctx, s.planner.ExactCode(req))
		if err != nil {
			return result.Set[document.Template]{}, fmt.Errorf("exact code search: %w", err)
		}
		if set.Total > 0 {
			metrics.SearchesTotal.WithLabelValues("templates", branchExact).Inc()
			set.Elapsed = time.Since(start)
			return set, nil
		}
		s.logger.Debug("Exact code matched nothing, falling back to ranked search",
			zap.String("query", req.Query()))
	}

	set, err := s.repo.Templates(ctx, s.planner.Fuzzy(req))
	if err != nil {
		return result.Set[document.Template]{}, fmt.Errorf("template search: %w", err)
	}
	metrics.SearchesTotal.WithLabelValues("templates", branchFuzzy).Inc()
	set.Elapsed = time.Since(start)
	return set, nil
}

// Suggestions executes a suggestion search.
func (s *Service) Suggestions(ctx context.Context, req request.Request) (result.Set[document.Suggestion], error) {
	start := time.Now()
	defer observeDuration("suggestions", start)

	set, err := s.repo.Suggestions(ctx, s.planner.Suggestions(req))
	if err != nil {
		return result.Set[document.Suggestion]{}, fmt.Errorf("suggestion search: %w", err)
	}
	metrics.SearchesTotal.WithLabelValues("suggestions", branchSuggest).Inc()
	set.Elapsed = time.Since(start)
	return set, nil
}

func observeDuration(index string, start time.Time) {
	metrics.SearchDuration.WithLabelValues(index).Observe(time.Since(start).Seconds())
}
