package cardindex

import (
	"time"

	domdoc "github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

// Template is a searchable card template.
type Template struct {
	ID          string
	Title       string
	Description string
	Author      string
	Code        string
	Classes     string
	Tags        []string
	Deleted     bool
	Modified    time.Time
}

// Suggestion is a searchable query suggestion.
type Suggestion struct {
	ID       string
	Value    string
	Deleted  bool
	Modified time.Time
}

// Hit is a typed search result.
type Hit[T any] struct {
	Item       T
	Score      float64
	Highlights map[string][]string
}

// SearchResult is a page of typed hits.
type SearchResult[T any] struct {
	Hits    []Hit[T]
	Total   int
	Elapsed time.Duration
}

func templateToInternal(t Template) domdoc.Template {
	return domdoc.Template{
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

func templateFromInternal(t domdoc.Template) Template {
	return Template{
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

func suggestionToInternal(s Suggestion) domdoc.Suggestion {
	return domdoc.Suggestion{ID: s.ID, Value: s.Value, Deleted: s.Deleted, Modified: s.Modified}
}

func suggestionFromInternal(s domdoc.Suggestion) Suggestion {
	return Suggestion{ID: s.ID, Value: s.Value, Deleted: s.Deleted, Modified: s.Modified}
}

func resultFromInternal[D, P any](set result.Set[D], convert func(D) P) SearchResult[P] {
	out := SearchResult[P]{
		Hits:    make([]Hit[P], 0, len(set.Hits)),
		Total:   set.Total,
		Elapsed: set.Elapsed,
	}
	for _, h := range set.Hits {
		out.Hits = append(out.Hits, Hit[P]{
			Item:       convert(h.Doc),
			Score:      h.Score,
			Highlights: h.Highlights,
		})
	}
	return out
}
