package request

import (
	"fmt"
	"strings"
)

// Paging limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request is a validated search query.
type Request struct {
	query       string
	filter      string
	pageSize    int
	currentPage int
	minScore    float64
}

// New validates and normalizes search parameters.
// Query and filter are trimmed; whitespace-only values become empty.
// A non-positive pageSize, negative currentPage, or negative minScore is
// rejected before any engine call. pageSize is clamped to MaxPageSize.
func New(query, filter string, pageSize, currentPage int, minScore float64) (Request, error) {
	if pageSize <= 0 {
		return Request{}, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if currentPage < 0 {
		return Request{}, fmt.Errorf("current page must not be negative, got %d", currentPage)
	}
	if minScore < 0 {
		return Request{}, fmt.Errorf("min score must not be negative, got %f", minScore)
	}

	return Request{
		query:       strings.TrimSpace(query),
		filter:      strings.TrimSpace(filter),
		pageSize:    pageSize,
		currentPage: currentPage,
		minScore:    minScore,
	}, nil
}

// Query returns the normalized query text.
func (r *Request) Query() string { return r.query }

// Filter returns the normalized tag filter text.
func (r *Request) Filter() string { return r.filter }

// PageSize returns the result page size.
func (r *Request) PageSize() int { return r.pageSize }

// CurrentPage returns the zero-based page number.
func (r *Request) CurrentPage() int { return r.currentPage }

// MinScore returns the minimum relevance threshold.
func (r *Request) MinScore() float64 { return r.minScore }

// Offset returns the result offset implied by page size and page number.
func (r *Request) Offset() int { return r.pageSize * r.currentPage }

// HasQuery reports whether a non-empty query is present.
func (r *Request) HasQuery() bool { return r.query != "" }

// HasFilter reports whether a non-empty tag filter is present.
func (r *Request) HasFilter() bool { return r.filter != "" }
