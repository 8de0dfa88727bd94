package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/engine"
)

// Search executes a plan against an index and returns raw hits, the
// engine-reported total, and the serialized query that was sent. Failures
// are surfaced to the caller and never retried here.
func (s *Store) Search(ctx context.Context, index string, p *plan.Plan) (*engine.Result, error) {
	body, err := json.Marshal(renderPlan(p))
	if err != nil {
		return nil, &engine.Error{Op: engine.OpSearch, Index: index, Err: err}
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(index),
		s.es.Search.WithBody(bytes.NewReader(body)),
		s.es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, &engine.Error{Op: engine.OpSearch, Index: index, Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, &engine.Error{
			Op: engine.OpSearch, Index: index,
			Err: fmt.Errorf("unexpected status %s", res.Status()),
		}
	}

	var envelope struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID        string              `json:"_id"`
				Score     *float64            `json:"_score"`
				Source    json.RawMessage     `json:"_source"`
				Highlight map[string][]string `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, &engine.Error{Op: engine.OpSearch, Index: index, Err: fmt.Errorf("invalid response: %w", err)}
	}

	out := &engine.Result{
		Total:    envelope.Hits.Total.Value,
		Hits:     make([]engine.Hit, 0, len(envelope.Hits.Hits)),
		RawQuery: string(body),
	}
	for _, h := range envelope.Hits.Hits {
		hit := engine.Hit{ID: h.ID, Source: h.Source, Highlights: h.Highlight}
		// _score is null when the plan sorts by fields only.
		if h.Score != nil {
			hit.Score = *h.Score
		}
		out.Hits = append(out.Hits, hit)
	}
	return out, nil
}
