// Package elastic implements engine.Store against Elasticsearch over
// HTTP(S) with basic authentication.
package elastic

import (
	"context"
	"fmt"
	"time"

	elasticsearch "github.com/elastic/go-elasticsearch/v9"

	"github.com/apatrida/cardindex/internal/engine"
)

// Compile-time check: Store implements engine.Store.
var _ engine.Store = (*Store)(nil)

// Config holds connection parameters for an Elasticsearch cluster.
type Config struct {
	Addresses []string
	Username  string
	Password  string
}

// Store implements engine.Store via the official Elasticsearch client.
type Store struct {
	es *elasticsearch.Client
}

// NewStore creates an Elasticsearch-backed store.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addresses) == 0 {
		return nil, fmt.Errorf("addresses is required")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{es: es}, nil
}

// Ping checks cluster connectivity.
func (s *Store) Ping(ctx context.Context) error {
	res, err := s.es.Ping(s.es.Ping.WithContext(ctx))
	if err != nil {
		return &engine.Error{Op: engine.OpPing, Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return &engine.Error{Op: engine.OpPing, Err: fmt.Errorf("cluster responded %s", res.Status())}
	}
	return nil
}

// WaitForReady polls Ping until the cluster responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for engine: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close releases client resources. The underlying HTTP transport keeps no
// state that requires explicit shutdown.
func (s *Store) Close() {}
