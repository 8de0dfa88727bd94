package search

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

type mockRepo struct {
	templatesFn   func(ctx context.Context, p *plan.Plan) (result.Set[document.Template], error)
	suggestionsFn func(ctx context.Context, p *plan.Plan) (result.Set[document.Suggestion], error)
	plans         []*plan.Plan
}

func (m *mockRepo) Templates(ctx context.Context, p *plan.Plan) (result.Set[document.Template], error) {
	m.plans = append(m.plans, p)
	return m.templatesFn(ctx, p)
}

func (m *mockRepo) Suggestions(ctx context.Context, p *plan.Plan) (result.Set[document.Suggestion], error) {
	m.plans = append(m.plans, p)
	return m.suggestionsFn(ctx, p)
}

func newTestService(repo *mockRepo) *Service {
	return New(repo, NewPlanner(DefaultBoosts()), zap.NewNop())
}

// isExactPlan tells an exact-code plan from a fuzzy one by its MUST shape.
func isExactPlan(p *plan.Plan) bool {
	if len(p.Root.Must) != 1 {
		return false
	}
	term, ok := p.Root.Must[0].(plan.Term)
	return ok && term.Field == document.FieldCodeExact
}

func TestTemplatesExactCodeShortCircuits(t *testing.T) {
	repo := &mockRepo{
		templatesFn: func(_ context.Context, p *plan.Plan) (result.Set[document.Template], error) {
			if !isExactPlan(p) {
				t.Fatalf("unexpected fuzzy execution: %#v", p.Root)
			}
			return result.Set[document.Template]{
				Hits:  []result.Hit[document.Template]{{Doc: document.Template{ID: "t-1", Code: "ABC-12-345"}}},
				Total: 1,
			}, nil
		},
	}
	svc := newTestService(repo)

	set, err := svc.Templates(context.Background(), mustRequest(t, "ABC-12-345", "", 10, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.plans) != 1 {
		t.Errorf("executed %d plans, want only the exact branch", len(repo.plans))
	}
	if set.Total != 1 || set.Hits[0].Doc.Code != "ABC-12-345" {
		t.Errorf("set = %+v", set)
	}
}

func TestTemplatesExactMissFallsBackToFuzzy(t *testing.T) {
	repo := &mockRepo{}
	repo.templatesFn = func(_ context.Context, p *plan.Plan) (result.Set[document.Template], error) {
		if isExactPlan(p) {
			return result.Set[document.Template]{Total: 0}, nil
		}
		return result.Set[document.Template]{Total: 7}, nil
	}
	svc := newTestService(repo)

	set, err := svc.Templates(context.Background(), mustRequest(t, "ABC-12-345", "", 10, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.plans) != 2 {
		t.Fatalf("executed %d plans, want exact then fuzzy", len(repo.plans))
	}
	if !isExactPlan(repo.plans[0]) || isExactPlan(repo.plans[1]) {
		t.Error("plans executed in the wrong order")
	}
	if set.Total != 7 {
		t.Errorf("Total = %d, want the fuzzy result", set.Total)
	}
}

func TestTemplatesPlainQuerySkipsExactBranch(t *testing.T) {
	repo := &mockRepo{}
	repo.templatesFn = func(_ context.Context, p *plan.Plan) (result.Set[document.Template], error) {
		if isExactPlan(p) {
			t.Fatal("free-text query must never hit the exact branch")
		}
		return result.Set[document.Template]{Total: 2}, nil
	}
	svc := newTestService(repo)

	if _, err := svc.Templates(context.Background(), mustRequest(t, "birthday card", "", 10, 0, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.plans) != 1 {
		t.Errorf("executed %d plans, want 1", len(repo.plans))
	}
}

func TestTemplatesStampsElapsed(t *testing.T) {
	repo := &mockRepo{
		templatesFn: func(_ context.Context, _ *plan.Plan) (result.Set[document.Template], error) {
			return result.Set[document.Template]{Total: 1}, nil
		},
	}
	svc := newTestService(repo)

	set, err := svc.Templates(context.Background(), mustRequest(t, "birthday", "", 10, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Elapsed <= 0 {
		t.Error("Elapsed not stamped")
	}
}

func TestTemplatesPropagatesRepositoryError(t *testing.T) {
	boom := errors.New("engine down")
	repo := &mockRepo{
		templatesFn: func(_ context.Context, _ *plan.Plan) (result.Set[document.Template], error) {
			return result.Set[document.Template]{}, boom
		},
	}
	svc := newTestService(repo)

	if _, err := svc.Templates(context.Background(), mustRequest(t, "birthday", "", 10, 0, 0)); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped repository error", err)
	}
}

func TestExactBranchErrorDoesNotFallBack(t *testing.T) {
	boom := errors.New("engine down")
	repo := &mockRepo{
		templatesFn: func(_ context.Context, _ *plan.Plan) (result.Set[document.Template], error) {
			return result.Set[document.Template]{}, boom
		},
	}
	svc := newTestService(repo)

	if _, err := svc.Templates(context.Background(), mustRequest(t, "ABC-12-345", "", 10, 0, 0)); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped engine error", err)
	}
	// A failed exact lookup is an error, not a miss.
	if len(repo.plans) != 1 {
		t.Errorf("executed %d plans, want no fuzzy fallback after a failure", len(repo.plans))
	}
}

func TestSuggestionsExecutesSuggestionPlan(t *testing.T) {
	repo := &mockRepo{
		suggestionsFn: func(_ context.Context, p *plan.Plan) (result.Set[document.Suggestion], error) {
			m, ok := p.Root.Must[0].(plan.Match)
			if !ok || m.Field != document.FieldValue {
				t.Errorf("plan must = %#v, want match on value", p.Root.Must[0])
			}
			return result.Set[document.Suggestion]{
				Hits:  []result.Hit[document.Suggestion]{{Doc: document.Suggestion{Value: "birthday wishes"}}},
				Total: 1,
			}, nil
		},
	}
	svc := newTestService(repo)

	set, err := svc.Suggestions(context.Background(), mustRequest(t, "birth", "", 10, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Total != 1 || set.Elapsed <= 0 {
		t.Errorf("set = %+v", set)
	}
}
