// Package cardindex is the embeddable client for the cardindex search
// service: templates and suggestions indexed into an
// Elasticsearch-compatible engine with ranked, highlighted queries.
package cardindex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/engine/elastic"
	documentrepo "github.com/apatrida/cardindex/internal/repository/document"
	"github.com/apatrida/cardindex/internal/repository/schema"
	searchrepo "github.com/apatrida/cardindex/internal/repository/search"
	documentuc "github.com/apatrida/cardindex/internal/usecase/document"
	searchuc "github.com/apatrida/cardindex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the cardindex SDK entry point.
type Client struct {
	store           *elastic.Store
	searchSvc       *searchuc.Service
	docSvc          *documentuc.Service
	defaultPageSize int
}

// New creates a Client, connects to the engine, and ensures both index
// schemas exist.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		templatesIndex:   "templates",
		suggestionsIndex: "suggestions",
		defaultPageSize:  20,
		logger:           zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addresses) == 0 {
		return nil, errors.New("cardindex: engine address required (use WithAddresses)")
	}

	store, err := elastic.NewStore(elastic.Config{
		Addresses: cfg.addresses,
		Username:  cfg.username,
		Password:  cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("cardindex: create engine store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("cardindex: engine not ready: %w", err)
	}

	mgr := schema.New(store, cfg.templatesIndex, cfg.suggestionsIndex, cfg.logger)
	if err := mgr.EnsureAll(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("cardindex: bootstrap schemas: %w", err)
	}

	planner := searchuc.NewPlanner(searchuc.Boosts{
		Tags:        cfg.boosts.Tags,
		Title:       cfg.boosts.Title,
		Author:      cfg.boosts.Author,
		Classes:     cfg.boosts.Classes,
		Description: cfg.boosts.Description,
	})
	searchRepo := searchrepo.New(store, cfg.templatesIndex, cfg.suggestionsIndex)
	docRepo := documentrepo.New(store, cfg.templatesIndex, cfg.suggestionsIndex)

	return &Client{
		store:           store,
		searchSvc:       searchuc.New(searchRepo, planner, cfg.logger),
		docSvc:          documentuc.New(docRepo, cfg.logger),
		defaultPageSize: cfg.defaultPageSize,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks engine connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Templates returns the template service.
func (c *Client) Templates() *TemplateService {
	return &TemplateService{client: c}
}

// Suggestions returns the suggestion service.
func (c *Client) Suggestions() *SuggestionService {
	return &SuggestionService{client: c}
}

// TemplateService manages and searches templates.
type TemplateService struct {
	client *Client
}

// Index stores a template, assigning an id when empty. Returns the
// stored template.
func (s *TemplateService) Index(ctx context.Context, t Template) (Template, error) {
	stored, err := s.client.docSvc.IndexTemplate(ctx, templateToInternal(t))
	if err != nil {
		return Template{}, fmt.Errorf("index template: %w", err)
	}
	return templateFromInternal(stored), nil
}

// Get fetches a template by id.
func (s *TemplateService) Get(ctx context.Context, id string) (Template, error) {
	t, err := s.client.docSvc.GetTemplate(ctx, id)
	if err != nil {
		return Template{}, fmt.Errorf("get template: %w", err)
	}
	return templateFromInternal(t), nil
}

// Delete removes a template by id.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.client.docSvc.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// Exists reports whether a template with the given id is present.
func (s *TemplateService) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.client.docSvc.TemplateExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("template exists: %w", err)
	}
	return ok, nil
}

// Search starts a fluent template search.
func (s *TemplateService) Search() *SearchBuilder[Template] {
	return newSearchBuilder(s.client.defaultPageSize, s.client.searchSvc.Templates, templateFromInternal)
}

// SuggestionService manages and searches suggestions.
type SuggestionService struct {
	client *Client
}

// Index stores a suggestion, assigning an id when empty. Returns the
// stored suggestion.
func (s *SuggestionService) Index(ctx context.Context, sg Suggestion) (Suggestion, error) {
	stored, err := s.client.docSvc.IndexSuggestion(ctx, suggestionToInternal(sg))
	if err != nil {
		return Suggestion{}, fmt.Errorf("index suggestion: %w", err)
	}
	return suggestionFromInternal(stored), nil
}

// Get fetches a suggestion by id.
func (s *SuggestionService) Get(ctx context.Context, id string) (Suggestion, error) {
	sg, err := s.client.docSvc.GetSuggestion(ctx, id)
	if err != nil {
		return Suggestion{}, fmt.Errorf("get suggestion: %w", err)
	}
	return suggestionFromInternal(sg), nil
}

// Delete removes a suggestion by id.
func (s *SuggestionService) Delete(ctx context.Context, id string) error {
	if err := s.client.docSvc.DeleteSuggestion(ctx, id); err != nil {
		return fmt.Errorf("delete suggestion: %w", err)
	}
	return nil
}

// Exists reports whether a suggestion with the given id is present.
func (s *SuggestionService) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.client.docSvc.SuggestionExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("suggestion exists: %w", err)
	}
	return ok, nil
}

// Search starts a fluent suggestion search.
func (s *SuggestionService) Search() *SearchBuilder[Suggestion] {
	return newSearchBuilder(s.client.defaultPageSize, s.client.searchSvc.Suggestions, suggestionFromInternal)
}
