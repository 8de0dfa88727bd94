package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/apatrida/cardindex/internal/engine"
)

// IndexDocument stores a document under the given id, replacing any
// previous version.
func (s *Store) IndexDocument(ctx context.Context, index, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return &engine.Error{Op: engine.OpIndexDoc, Index: index, Err: err}
	}

	res, err := s.es.Index(
		index,
		bytes.NewReader(body),
		s.es.Index.WithDocumentID(id),
		s.es.Index.WithContext(ctx),
	)
	if err != nil {
		return &engine.Error{Op: engine.OpIndexDoc, Index: index, Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return &engine.Error{
			Op: engine.OpIndexDoc, Index: index,
			Err: fmt.Errorf("document %s: unexpected status %s", id, res.Status()),
		}
	}
	return nil
}

// DeleteDocument removes a document by id. Deleting a missing document
// returns engine.ErrDocumentNotFound.
func (s *Store) DeleteDocument(ctx context.Context, index, id string) error {
	res, err := s.es.Delete(index, id, s.es.Delete.WithContext(ctx))
	if err != nil {
		return &engine.Error{Op: engine.OpDeleteDoc, Index: index, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return &engine.Error{Op: engine.OpDeleteDoc, Index: index, Err: engine.ErrDocumentNotFound}
	}
	if res.IsError() {
		return &engine.Error{
			Op: engine.OpDeleteDoc, Index: index,
			Err: fmt.Errorf("document %s: unexpected status %s", id, res.Status()),
		}
	}
	return nil
}

// GetDocument fetches a document's stored source by id.
func (s *Store) GetDocument(ctx context.Context, index, id string) (json.RawMessage, error) {
	res, err := s.es.Get(index, id, s.es.Get.WithContext(ctx))
	if err != nil {
		return nil, &engine.Error{Op: engine.OpGetDoc, Index: index, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, &engine.Error{Op: engine.OpGetDoc, Index: index, Err: engine.ErrDocumentNotFound}
	}
	if res.IsError() {
		return nil, &engine.Error{
			Op: engine.OpGetDoc, Index: index,
			Err: fmt.Errorf("document %s: unexpected status %s", id, res.Status()),
		}
	}

	var envelope struct {
		Source json.RawMessage `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, &engine.Error{Op: engine.OpGetDoc, Index: index, Err: err}
	}
	return envelope.Source, nil
}

// DocumentExists reports whether a document with the given id is present.
func (s *Store) DocumentExists(ctx context.Context, index, id string) (bool, error) {
	res, err := s.es.Exists(index, id, s.es.Exists.WithContext(ctx))
	if err != nil {
		return false, &engine.Error{Op: engine.OpDocExists, Index: index, Err: err}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, &engine.Error{
			Op: engine.OpDocExists, Index: index,
			Err: fmt.Errorf("document %s: unexpected status %s", id, res.Status()),
		}
	}
}
