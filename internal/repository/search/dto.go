package search

import (
	domdoc "github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/engine"
	"github.com/apatrida/cardindex/internal/repository/document"
)

func decodeTemplateHit(h engine.Hit) (domdoc.Template, error) {
	t, err := document.DecodeTemplate(h.Source)
	if err != nil {
		return domdoc.Template{}, err
	}
	if t.ID == "" {
		t.ID = h.ID
	}
	return t, nil
}

func decodeSuggestionHit(h engine.Hit) (domdoc.Suggestion, error) {
	s, err := document.DecodeSuggestion(h.Source)
	if err != nil {
		return domdoc.Suggestion{}, err
	}
	if s.ID == "" {
		s.ID = h.ID
	}
	return s, nil
}
