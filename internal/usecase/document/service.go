// Package document manages the write path for templates and suggestions.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/domain"
	domdoc "github.com/apatrida/cardindex/internal/domain/document"
)

// Service handles document writes and point reads.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// New creates a document service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// IndexTemplate stores a template. An empty id gets a generated one; a
// zero Modified is stamped with the current time. The stored document,
// including any assigned fields, is returned.
func (s *Service) IndexTemplate(ctx context.Context, t domdoc.Template) (domdoc.Template, error) {
	if strings.TrimSpace(t.Title) == "" && strings.TrimSpace(t.Code) == "" {
		return domdoc.Template{}, fmt.Errorf("%w: template needs a title or a code", domain.ErrInvalidRequest)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Modified.IsZero() {
		t.Modified = s.now().UTC()
	}

	if err := s.repo.IndexTemplate(ctx, t); err != nil {
		return domdoc.Template{}, err
	}
	s.logger.Debug("Template indexed", zap.String("id", t.ID))
	return t, nil
}

// GetTemplate fetches a template by id.
func (s *Service) GetTemplate(ctx context.Context, id string) (domdoc.Template, error) {
	if id == "" {
		return domdoc.Template{}, fmt.Errorf("%w: empty id", domain.ErrInvalidRequest)
	}
	return s.repo.GetTemplate(ctx, id)
}

// DeleteTemplate removes a template by id.
func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", domain.ErrInvalidRequest)
	}
	if err := s.repo.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("Template deleted", zap.String("id", id))
	return nil
}

// TemplateExists reports whether a template with the given id is present.
func (s *Service) TemplateExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: empty id", domain.ErrInvalidRequest)
	}
	return s.repo.TemplateExists(ctx, id)
}

// IndexSuggestion stores a suggestion, assigning id and timestamp the
// same way IndexTemplate does.
func (s *Service) IndexSuggestion(ctx context.Context, sg domdoc.Suggestion) (domdoc.Suggestion, error) {
	if strings.TrimSpace(sg.Value) == "" {
		return domdoc.Suggestion{}, fmt.Errorf("%w: suggestion needs a value", domain.ErrInvalidRequest)
	}
	if sg.ID == "" {
		sg.ID = uuid.NewString()
	}
	if sg.Modified.IsZero() {
		sg.Modified = s.now().UTC()
	}

	if err := s.repo.IndexSuggestion(ctx, sg); err != nil {
		return domdoc.Suggestion{}, err
	}
	s.logger.Debug("Suggestion indexed", zap.String("id", sg.ID))
	return sg, nil
}

// GetSuggestion fetches a suggestion by id.
func (s *Service) GetSuggestion(ctx context.Context, id string) (domdoc.Suggestion, error) {
	if id == "" {
		return domdoc.Suggestion{}, fmt.Errorf("%w: empty id", domain.ErrInvalidRequest)
	}
	return s.repo.GetSuggestion(ctx, id)
}

// DeleteSuggestion removes a suggestion by id.
func (s *Service) DeleteSuggestion(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", domain.ErrInvalidRequest)
	}
	if err := s.repo.DeleteSuggestion(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("Suggestion deleted", zap.String("id", id))
	return nil
}

// SuggestionExists reports whether a suggestion with the given id is present.
func (s *Service) SuggestionExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: empty id", domain.ErrInvalidRequest)
	}
	return s.repo.SuggestionExists(ctx, id)
}
