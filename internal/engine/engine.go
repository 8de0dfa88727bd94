// Package engine abstracts the full-text search engine behind a store
// interface: index lifecycle, document operations, and plan execution.
// Any engine supporting a boolean must/filter query model with field
// boosts, sorting, paging, and a minimum-score threshold fits behind it.
package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/apatrida/cardindex/internal/analysis"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
)

// Store is the engine facade. Consumers depend on narrow subsets of it.
type Store interface {
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error

	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string, schema *IndexSchema) error

	IndexDocument(ctx context.Context, index, id string, doc any) error
	DeleteDocument(ctx context.Context, index, id string) error
	GetDocument(ctx context.Context, index, id string) (json.RawMessage, error)
	DocumentExists(ctx context.Context, index, id string) (bool, error)

	Search(ctx context.Context, index string, p *plan.Plan) (*Result, error)

	Close()
}

// FieldType enumerates supported mapping field types.
type FieldType string

const (
	// FieldText is an analyzed text field.
	FieldText FieldType = "text"
	// FieldKeyword is an exact-value field.
	FieldKeyword FieldType = "keyword"
	// FieldBoolean is a boolean field.
	FieldBoolean FieldType = "boolean"
	// FieldDate is a timestamp field.
	FieldDate FieldType = "date"
)

// FieldMapping describes one indexed field. Analyzer applies at index
// time; SearchAnalyzer, when set, overrides it at query time.
// ExactSubfield adds a keyword subfield named "keyword" for exact term
// lookups against analyzed text.
type FieldMapping struct {
	Name           string
	Type           FieldType
	Analyzer       string
	SearchAnalyzer string
	ExactSubfield  bool
}

// IndexSchema is the complete create-index payload: field mappings plus
// the analysis block, applied atomically in a single create call.
type IndexSchema struct {
	Analysis analysis.Analysis
	Fields   []FieldMapping
}

// Hit is a single raw search hit.
type Hit struct {
	ID         string
	Score      float64
	Source     json.RawMessage
	Highlights map[string][]string
}

// Result is the raw output of a search: the engine-reported total match
// count, the hit page, and the serialized query that was actually sent.
type Result struct {
	Total    int
	Hits     []Hit
	RawQuery string
}
