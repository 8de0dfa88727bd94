// Package searchcache is a caching decorator over the search repository.
// Results are keyed by index name and plan fingerprint, so any change to
// the rendered query naturally misses.
package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/apatrida/cardindex/internal/cache"
	"github.com/apatrida/cardindex/internal/domain"
	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

var cacheKeyPrefix = domain.KeyPrefix + "search_cache:"

// repository is the consumer interface for the wrapped searcher (ISP).
type repository interface {
	Templates(ctx context.Context, p *plan.Plan) (result.Set[document.Template], error)
	Suggestions(ctx context.Context, p *plan.Plan) (result.Set[document.Suggestion], error)
}

// CachedRepo serves recent search results from a key-value store. The
// cache is strictly an accelerator: every cache failure degrades to the
// inner repository with a warning, never to an error.
type CachedRepo struct {
	inner      repository
	store      cache.Store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner repository,
	s cache.Store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedRepo {
	return &CachedRepo{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Templates returns a cached result set or queries the inner repository.
func (c *CachedRepo) Templates(ctx context.Context, p *plan.Plan) (result.Set[document.Template], error) {
	return lookup(ctx, c, "templates", p, c.inner.Templates)
}

// Suggestions returns a cached result set or queries the inner repository.
func (c *CachedRepo) Suggestions(ctx context.Context, p *plan.Plan) (result.Set[document.Suggestion], error) {
	return lookup(ctx, c, "suggestions", p, c.inner.Suggestions)
}

func lookup[T any](
	ctx context.Context,
	c *CachedRepo,
	kind string,
	p *plan.Plan,
	query func(ctx context.Context, p *plan.Plan) (result.Set[T], error),
) (result.Set[T], error) {
	key := cacheKey(kind, p)

	if set, ok := getFromCache[T](ctx, c, key); ok {
		c.incCache("hit")
		return set, nil
	}

	c.incCache("miss")

	set, err := query(ctx, p)
	if err != nil {
		return result.Set[T]{}, err
	}

	c.putToCache(ctx, key, set)
	return set, nil
}

func (c *CachedRepo) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(kind string, p *plan.Plan) string {
	h := sha256.Sum256([]byte(kind + "\n" + p.Fingerprint()))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func getFromCache[T any](ctx context.Context, c *CachedRepo, key string) (result.Set[T], bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			c.logger.Warn("Failed to get cached search result", zap.String("key", key), zap.Error(err))
		}
		return result.Set[T]{}, false
	}
	if len(data) == 0 {
		return result.Set[T]{}, false
	}

	var set result.Set[T]
	if err := json.Unmarshal(data, &set); err != nil {
		c.logger.Warn("Failed to parse cached search result", zap.String("key", key), zap.Error(err))
		return result.Set[T]{}, false
	}

	return set, true
}

func (c *CachedRepo) putToCache(ctx context.Context, key string, set any) {
	data, err := json.Marshal(set)
	if err != nil {
		c.logger.Warn("Failed to encode search result", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache search result", zap.String("key", key), zap.Error(err))
	}
}
