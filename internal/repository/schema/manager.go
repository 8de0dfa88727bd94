// Package schema guarantees each logical index exists with the correct
// mapping and analysis configuration before any read or write traffic.
package schema

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/engine"
)

// store is the consumer interface for schema bootstrap (ISP).
type store interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string, schema *engine.IndexSchema) error
}

// Manager bootstraps index schemas idempotently. Existing indexes are
// never diffed or migrated; changing a schema requires an explicit
// drop-and-recreate.
type Manager struct {
	store       store
	templates   string
	suggestions string
	logger      *zap.Logger
}

// New creates a schema manager for the two configured index names.
func New(s store, templatesIndex, suggestionsIndex string, logger *zap.Logger) *Manager {
	return &Manager{
		store:       s,
		templates:   templatesIndex,
		suggestions: suggestionsIndex,
		logger:      logger,
	}
}

// EnsureAll bootstraps both indexes. Any failure other than a lost
// check-then-create race is returned and must abort startup: the service
// must not serve queries against a half-initialized index.
func (m *Manager) EnsureAll(ctx context.Context) error {
	if err := m.EnsureTemplates(ctx); err != nil {
		return err
	}
	return m.EnsureSuggestions(ctx)
}

// EnsureTemplates bootstraps the template index.
func (m *Manager) EnsureTemplates(ctx context.Context) error {
	if err := m.ensure(ctx, m.templates, TemplateSchema()); err != nil {
		return fmt.Errorf("ensure index %s: %w", m.templates, err)
	}
	return nil
}

// EnsureSuggestions bootstraps the suggestion index.
func (m *Manager) EnsureSuggestions(ctx context.Context) error {
	if err := m.ensure(ctx, m.suggestions, SuggestionSchema()); err != nil {
		return fmt.Errorf("ensure index %s: %w", m.suggestions, err)
	}
	return nil
}

func (m *Manager) ensure(ctx context.Context, name string, schema *engine.IndexSchema) error {
	exists, err := m.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		m.logger.Debug("Index already present", zap.String("index", name))
		return nil
	}

	if err := m.store.CreateIndex(ctx, name, schema); err != nil {
		// Two processes bootstrapping concurrently can both see the index
		// absent; the loser's create is a benign no-op.
		if errors.Is(err, engine.ErrIndexExists) {
			m.logger.Debug("Index created concurrently", zap.String("index", name))
			return nil
		}
		return fmt.Errorf("create: %w", err)
	}

	m.logger.Info("Index created", zap.String("index", name))
	return nil
}
