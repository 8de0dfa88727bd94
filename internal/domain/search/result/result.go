// Package result holds typed search result sets. Sets are constructed
// fresh per request and never persisted or shared.
package result

import "time"

// Hit is a single document with its request-scoped relevance score.
// Score is not a document attribute; it exists only on this in-memory copy.
type Hit[T any] struct {
	Doc        T                   `json:"doc"`
	Score      float64             `json:"score"`
	Highlights map[string][]string `json:"highlights,omitempty"`
}

// Set is an ordered search result page. Total is the engine-reported match
// count and may exceed len(Hits). RawQuery carries the serialized query
// actually sent to the engine, for diagnostics.
type Set[T any] struct {
	Hits     []Hit[T]      `json:"hits"`
	Total    int           `json:"total"`
	Elapsed  time.Duration `json:"elapsed"`
	RawQuery string        `json:"raw_query"`
}
