package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/apatrida/cardindex/internal/engine"
)

// IndexExists reports whether an index is present.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	res, err := s.es.Indices.Exists(
		[]string{name},
		s.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, &engine.Error{Op: engine.OpIndexExists, Index: name, Err: err}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, &engine.Error{
			Op: engine.OpIndexExists, Index: name,
			Err: fmt.Errorf("unexpected status %s", res.Status()),
		}
	}
}

// CreateIndex creates an index carrying both field mappings and analysis
// settings in a single call. A create that loses a check-then-create race
// returns engine.ErrIndexExists.
func (s *Store) CreateIndex(ctx context.Context, name string, schema *engine.IndexSchema) error {
	body, err := json.Marshal(renderSchema(schema))
	if err != nil {
		return &engine.Error{Op: engine.OpCreateIndex, Index: name, Err: err}
	}

	res, err := s.es.Indices.Create(
		name,
		s.es.Indices.Create.WithContext(ctx),
		s.es.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return &engine.Error{Op: engine.OpCreateIndex, Index: name, Err: err}
	}
	defer res.Body.Close()

	if !res.IsError() {
		return nil
	}

	var envelope struct {
		Error struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if decodeErr := json.NewDecoder(res.Body).Decode(&envelope); decodeErr == nil {
		if envelope.Error.Type == "resource_already_exists_exception" {
			return &engine.Error{Op: engine.OpCreateIndex, Index: name, Err: engine.ErrIndexExists}
		}
		if envelope.Error.Reason != "" {
			return &engine.Error{
				Op: engine.OpCreateIndex, Index: name,
				Err: fmt.Errorf("%s: %s", envelope.Error.Type, envelope.Error.Reason),
			}
		}
	}
	return &engine.Error{
		Op: engine.OpCreateIndex, Index: name,
		Err: fmt.Errorf("unexpected status %s", res.Status()),
	}
}
