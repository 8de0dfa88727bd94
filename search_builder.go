package cardindex

import (
	"context"
	"fmt"

	"github.com/apatrida/cardindex/internal/domain/search/request"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

// SearchBuilder is a fluent builder for typed search queries.
type SearchBuilder[T any] struct {
	run func(ctx context.Context, req request.Request) (SearchResult[T], error)

	query       string
	filter      string
	pageSize    int
	currentPage int
	minScore    float64
}

func newSearchBuilder[D, T any](
	defaultPageSize int,
	exec func(ctx context.Context, req request.Request) (result.Set[D], error),
	convert func(D) T,
) *SearchBuilder[T] {
	return &SearchBuilder[T]{
		pageSize: defaultPageSize,
		run: func(ctx context.Context, req request.Request) (SearchResult[T], error) {
			set, err := exec(ctx, req)
			if err != nil {
				return SearchResult[T]{}, err
			}
			return resultFromInternal(set, convert), nil
		},
	}
}

// Query sets the free-text query. A query that is a full product code
// (e.g. "ABC-12-345") is answered by exact lookup.
func (b *SearchBuilder[T]) Query(q string) *SearchBuilder[T] {
	b.query = q
	return b
}

// Filter sets the tag filter. Every term must match.
func (b *SearchBuilder[T]) Filter(f string) *SearchBuilder[T] {
	b.filter = f
	return b
}

// Page sets the page size and zero-based page number.
func (b *SearchBuilder[T]) Page(size, page int) *SearchBuilder[T] {
	b.pageSize = size
	b.currentPage = page
	return b
}

// MinScore drops hits scoring below the threshold. The reported total
// reflects the threshold as well.
func (b *SearchBuilder[T]) MinScore(score float64) *SearchBuilder[T] {
	b.minScore = score
	return b
}

// Do executes the search.
func (b *SearchBuilder[T]) Do(ctx context.Context) (SearchResult[T], error) {
	req, err := request.New(b.query, b.filter, b.pageSize, b.currentPage, b.minScore)
	if err != nil {
		return SearchResult[T]{}, fmt.Errorf("search: %w", err)
	}
	res, err := b.run(ctx, req)
	if err != nil {
		return SearchResult[T]{}, fmt.Errorf("search: %w", err)
	}
	return res, nil
}
