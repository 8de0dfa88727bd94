package chi

import (
	"time"

	domdoc "github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

// Error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchRequest struct {
	Query       string  `json:"query"`
	Filter      string  `json:"filter,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	CurrentPage int     `json:"current_page,omitempty"`
	MinScore    float64 `json:"min_score,omitempty"`
}

type templatePayload struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	Code        string    `json:"code,omitempty"`
	Classes     string    `json:"classes,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Deleted     bool      `json:"deleted,omitempty"`
	Modified    time.Time `json:"modified,omitempty"`
}

type suggestionPayload struct {
	ID       string    `json:"id,omitempty"`
	Value    string    `json:"value"`
	Deleted  bool      `json:"deleted,omitempty"`
	Modified time.Time `json:"modified,omitempty"`
}

type searchHit[T any] struct {
	Doc        T                   `json:"doc"`
	Score      float64             `json:"score"`
	Highlights map[string][]string `json:"highlights,omitempty"`
}

type searchResponse[T any] struct {
	Hits      []searchHit[T] `json:"hits"`
	Total     int            `json:"total"`
	ElapsedMS int64          `json:"elapsed_ms"`
}

func templateFromPayload(p templatePayload) domdoc.Template {
	return domdoc.Template{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Author:      p.Author,
		Code:        p.Code,
		Classes:     p.Classes,
		Tags:        p.Tags,
		Deleted:     p.Deleted,
		Modified:    p.Modified,
	}
}

func templateToPayload(t domdoc.Template) templatePayload {
	return templatePayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Author:      t.Author,
		Code:        t.Code,
		Classes:     t.Classes,
		Tags:        t.Tags,
		Deleted:     t.Deleted,
		Modified:    t.Modified,
	}
}

func suggestionFromPayload(p suggestionPayload) domdoc.Suggestion {
	return domdoc.Suggestion{ID: p.ID, Value: p.Value, Deleted: p.Deleted, Modified: p.Modified}
}

func suggestionToPayload(s domdoc.Suggestion) suggestionPayload {
	return suggestionPayload{ID: s.ID, Value: s.Value, Deleted: s.Deleted, Modified: s.Modified}
}

func searchResponseFrom[T, P any](set result.Set[T], convert func(T) P) searchResponse[P] {
	resp := searchResponse[P]{
		Hits:      make([]searchHit[P], 0, len(set.Hits)),
		Total:     set.Total,
		ElapsedMS: set.Elapsed.Milliseconds(),
	}
	for _, h := range set.Hits {
		resp.Hits = append(resp.Hits, searchHit[P]{
			Doc:        convert(h.Doc),
			Score:      h.Score,
			Highlights: h.Highlights,
		})
	}
	return resp
}
