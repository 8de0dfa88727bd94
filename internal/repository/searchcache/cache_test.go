package searchcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/cache"
	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

type mockRepo struct {
	templateCalls   int
	suggestionCalls int
	templates       result.Set[document.Template]
	suggestions     result.Set[document.Suggestion]
	err             error
}

func (m *mockRepo) Templates(_ context.Context, _ *plan.Plan) (result.Set[document.Template], error) {
	m.templateCalls++
	return m.templates, m.err
}

func (m *mockRepo) Suggestions(_ context.Context, _ *plan.Plan) (result.Set[document.Suggestion], error) {
	m.suggestionCalls++
	return m.suggestions, m.err
}

// mockKV implements cache.Store for tests.
type mockKV struct {
	data  map[string][]byte
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte)}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (m *mockKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	m.data[key] = value
	return nil
}

func (m *mockKV) Close() {}

func templatePlan(query string) *plan.Plan {
	return &plan.Plan{
		Root: plan.Bool{Must: []plan.Clause{plan.Match{Field: "title", Query: query}}},
		Size: 10,
	}
}

func TestTemplatesCachesSecondLookup(t *testing.T) {
	inner := &mockRepo{
		templates: result.Set[document.Template]{
			Hits:  []result.Hit[document.Template]{{Doc: document.Template{ID: "t-1", Title: "Birthday"}, Score: 2.0}},
			Total: 1,
		},
	}
	kv := newMockKV()
	repo := New(inner, kv, time.Minute, nil, zap.NewNop())

	p := templatePlan("birthday")
	for i := 0; i < 2; i++ {
		set, err := repo.Templates(context.Background(), p)
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if set.Total != 1 || set.Hits[0].Doc.ID != "t-1" {
			t.Errorf("lookup %d returned %+v", i, set)
		}
	}
	if inner.templateCalls != 1 {
		t.Errorf("inner called %d times, want 1", inner.templateCalls)
	}
}

func TestDifferentPlansGetDifferentKeys(t *testing.T) {
	inner := &mockRepo{}
	kv := newMockKV()
	repo := New(inner, kv, time.Minute, nil, zap.NewNop())

	if _, err := repo.Templates(context.Background(), templatePlan("birthday")); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Templates(context.Background(), templatePlan("wedding")); err != nil {
		t.Fatal(err)
	}
	if inner.templateCalls != 2 {
		t.Errorf("inner called %d times, want 2 distinct misses", inner.templateCalls)
	}
}

func TestTemplateAndSuggestionKeysNeverCollide(t *testing.T) {
	inner := &mockRepo{}
	kv := newMockKV()
	repo := New(inner, kv, time.Minute, nil, zap.NewNop())

	p := templatePlan("birthday")
	if _, err := repo.Templates(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Suggestions(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if inner.suggestionCalls != 1 {
		t.Errorf("suggestion lookup reused a template cache entry")
	}
	if len(kv.data) != 2 {
		t.Errorf("stored %d keys, want 2", len(kv.data))
	}
}

func TestCacheFailureDegradesToInner(t *testing.T) {
	inner := &mockRepo{
		templates: result.Set[document.Template]{Total: 3},
	}
	kv := newMockKV()
	kv.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}
	kv.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return errors.New("connection refused")
	}
	repo := New(inner, kv, time.Minute, nil, zap.NewNop())

	set, err := repo.Templates(context.Background(), templatePlan("birthday"))
	if err != nil {
		t.Fatalf("cache failure must not fail the search: %v", err)
	}
	if set.Total != 3 {
		t.Errorf("Total = %d, want 3", set.Total)
	}
}

func TestCorruptEntryTreatedAsMiss(t *testing.T) {
	inner := &mockRepo{templates: result.Set[document.Template]{Total: 5}}
	kv := newMockKV()
	repo := New(inner, kv, time.Minute, nil, zap.NewNop())

	p := templatePlan("birthday")
	kv.data[cacheKey("templates", p)] = []byte("{corrupt")

	set, err := repo.Templates(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Total != 5 || inner.templateCalls != 1 {
		t.Errorf("corrupt entry must fall through to inner, got %+v calls=%d", set, inner.templateCalls)
	}
}

func TestInnerErrorNotCached(t *testing.T) {
	inner := &mockRepo{err: errors.New("engine down")}
	kv := newMockKV()
	repo := New(inner, kv, time.Minute, nil, zap.NewNop())

	if _, err := repo.Templates(context.Background(), templatePlan("birthday")); err == nil {
		t.Fatal("expected inner error")
	}
	if len(kv.data) != 0 {
		t.Errorf("failed lookups must not be cached, stored %d keys", len(kv.data))
	}
}
