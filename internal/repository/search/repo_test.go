package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/engine"
)

type mockStore struct {
	searchFn func(ctx context.Context, index string, p *plan.Plan) (*engine.Result, error)
}

func (m *mockStore) Search(ctx context.Context, index string, p *plan.Plan) (*engine.Result, error) {
	return m.searchFn(ctx, index, p)
}

func matchAllPlan() *plan.Plan {
	return &plan.Plan{Root: plan.Bool{Must: []plan.Clause{plan.MatchAll{}}}, Size: 10}
}

func TestTemplatesAssemblesTypedHits(t *testing.T) {
	repo := New(&mockStore{
		searchFn: func(_ context.Context, index string, _ *plan.Plan) (*engine.Result, error) {
			if index != "templates" {
				t.Errorf("searched %s, want templates", index)
			}
			return &engine.Result{
				Total: 42,
				Hits: []engine.Hit{
					{
						ID:         "t-1",
						Score:      3.5,
						Source:     json.RawMessage(`{"id":"t-1","title":"Birthday","tags":["party"]}`),
						Highlights: map[string][]string{"title": {"<em>Birthday</em>"}},
					},
					{
						ID:     "t-2",
						Score:  1.1,
						Source: json.RawMessage(`{"title":"Untagged"}`),
					},
				},
				RawQuery: `{"query":{}}`,
			}, nil
		},
	}, "templates", "suggestions")

	set, err := repo.Templates(context.Background(), matchAllPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Total != 42 {
		t.Errorf("Total = %d, want 42", set.Total)
	}
	if len(set.Hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(set.Hits))
	}
	if set.Hits[0].Doc.Title != "Birthday" || set.Hits[0].Score != 3.5 {
		t.Errorf("hit 0 = %+v", set.Hits[0])
	}
	if got := set.Hits[0].Highlights["title"]; len(got) != 1 || got[0] != "<em>Birthday</em>" {
		t.Errorf("highlights = %v", set.Hits[0].Highlights)
	}
	// An id missing from the source falls back to the engine hit id.
	if set.Hits[1].Doc.ID != "t-2" {
		t.Errorf("hit 1 id = %q, want t-2", set.Hits[1].Doc.ID)
	}
	if set.RawQuery == "" {
		t.Error("RawQuery must carry the rendered query for diagnostics")
	}
}

func TestSuggestionsAssemblesTypedHits(t *testing.T) {
	repo := New(&mockStore{
		searchFn: func(_ context.Context, index string, _ *plan.Plan) (*engine.Result, error) {
			if index != "suggestions" {
				t.Errorf("searched %s, want suggestions", index)
			}
			return &engine.Result{
				Total: 1,
				Hits: []engine.Hit{
					{ID: "s-1", Score: 2.0, Source: json.RawMessage(`{"id":"s-1","value":"birthday wishes"}`)},
				},
			}, nil
		},
	}, "templates", "suggestions")

	set, err := repo.Suggestions(context.Background(), matchAllPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Hits) != 1 || set.Hits[0].Doc.Value != "birthday wishes" {
		t.Errorf("hits = %+v", set.Hits)
	}
}

func TestTemplatesPropagatesEngineError(t *testing.T) {
	boom := errors.New("engine down")
	repo := New(&mockStore{
		searchFn: func(_ context.Context, _ string, _ *plan.Plan) (*engine.Result, error) {
			return nil, boom
		},
	}, "templates", "suggestions")

	_, err := repo.Templates(context.Background(), matchAllPlan())
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped engine error", err)
	}
}

func TestTemplatesRejectsMalformedSource(t *testing.T) {
	repo := New(&mockStore{
		searchFn: func(_ context.Context, _ string, _ *plan.Plan) (*engine.Result, error) {
			return &engine.Result{
				Total: 1,
				Hits:  []engine.Hit{{ID: "bad", Source: json.RawMessage(`{"tags":"not-an-array"}`)}},
			}, nil
		},
	}, "templates", "suggestions")

	if _, err := repo.Templates(context.Background(), matchAllPlan()); err == nil {
		t.Fatal("expected decode failure to surface")
	}
}
