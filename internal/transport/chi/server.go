// Package chi exposes the HTTP API.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/domain"
	domdoc "github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/request"
	"github.com/apatrida/cardindex/internal/domain/search/result"
	healthuc "github.com/apatrida/cardindex/internal/usecase/health"
)

// SearchService is the consumer interface over the search usecase.
type SearchService interface {
	Templates(ctx context.Context, req request.Request) (result.Set[domdoc.Template], error)
	Suggestions(ctx context.Context, req request.Request) (result.Set[domdoc.Suggestion], error)
}

// DocumentService is the consumer interface over the document usecase.
type DocumentService interface {
	IndexTemplate(ctx context.Context, t domdoc.Template) (domdoc.Template, error)
	GetTemplate(ctx context.Context, id string) (domdoc.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
	TemplateExists(ctx context.Context, id string) (bool, error)
	IndexSuggestion(ctx context.Context, s domdoc.Suggestion) (domdoc.Suggestion, error)
	GetSuggestion(ctx context.Context, id string) (domdoc.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id string) error
	SuggestionExists(ctx context.Context, id string) (bool, error)
}

// HealthService is the consumer interface over the health usecase.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server wires the usecases to the router.
type Server struct {
	search          SearchService
	documents       DocumentService
	health          HealthService
	defaultPageSize int
	logger          *zap.Logger
}

// NewServer creates an HTTP API server. defaultPageSize is applied when
// a search request omits page_size.
func NewServer(
	search SearchService,
	documents DocumentService,
	health HealthService,
	defaultPageSize int,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:          search,
		documents:       documents,
		health:          health,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/templates/search", s.handleTemplateSearch)
		r.Post("/suggestions/search", s.handleSuggestionSearch)

		r.Route("/templates/{id}", func(r chi.Router) {
			r.Put("/", s.handlePutTemplate)
			r.Get("/", s.handleGetTemplate)
			r.Delete("/", s.handleDeleteTemplate)
			r.Head("/", s.handleHeadTemplate)
		})
		r.Route("/suggestions/{id}", func(r chi.Router) {
			r.Put("/", s.handlePutSuggestion)
			r.Get("/", s.handleGetSuggestion)
			r.Delete("/", s.handleDeleteSuggestion)
			r.Head("/", s.handleHeadSuggestion)
		})
	})
}

func (s *Server) parseSearchRequest(r *http.Request) (request.Request, error) {
	var body searchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return request.Request{}, err
	}
	if body.PageSize == 0 {
		body.PageSize = s.defaultPageSize
	}
	return request.New(body.Query, body.Filter, body.PageSize, body.CurrentPage, body.MinScore)
}

func (s *Server) handleTemplateSearch(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	set, err := s.search.Templates(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponseFrom(set, templateToPayload))
}

func (s *Server) handleSuggestionSearch(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	set, err := s.search.Suggestions(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponseFrom(set, suggestionToPayload))
}

func (s *Server) handlePutTemplate(w http.ResponseWriter, r *http.Request) {
	var body templatePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	// The path id is authoritative.
	body.ID = chi.URLParam(r, "id")

	stored, err := s.documents.IndexTemplate(r.Context(), templateFromPayload(body))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templateToPayload(stored))
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := s.documents.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templateToPayload(t))
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHeadTemplate(w http.ResponseWriter, r *http.Request) {
	ok, err := s.documents.TemplateExists(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handlePutSuggestion(w http.ResponseWriter, r *http.Request) {
	var body suggestionPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	body.ID = chi.URLParam(r, "id")

	stored, err := s.documents.IndexSuggestion(r.Context(), suggestionFromPayload(body))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionToPayload(stored))
}

func (s *Server) handleGetSuggestion(w http.ResponseWriter, r *http.Request) {
	sg, err := s.documents.GetSuggestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionToPayload(sg))
}

func (s *Server) handleDeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.DeleteSuggestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHeadSuggestion(w http.ResponseWriter, r *http.Request) {
	ok, err := s.documents.SuggestionExists(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound), errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, safeDomainMessage(err))
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, codeValidationFailed, safeDomainMessage(err))
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrDocumentNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidRequest,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
