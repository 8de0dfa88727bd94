package cardindex

import (
	"testing"
	"time"

	domdoc "github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/result"
)

func TestTemplateConversionRoundTrip(t *testing.T) {
	in := Template{
		ID:          "t-1",
		Title:       "Birthday Card",
		Description: "A colorful birthday card",
		Author:      "jane",
		Code:        "ABC-12-345",
		Classes:     "greeting",
		Tags:        []string{"birthday", "party"},
		Modified:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	out := templateFromInternal(templateToInternal(in))
	if out.ID != in.ID || out.Title != in.Title || out.Code != in.Code {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if len(out.Tags) != 2 || out.Tags[0] != "birthday" {
		t.Errorf("tags = %v", out.Tags)
	}
	if !out.Modified.Equal(in.Modified) {
		t.Errorf("modified = %v, want %v", out.Modified, in.Modified)
	}
}

func TestSuggestionConversionRoundTrip(t *testing.T) {
	in := Suggestion{ID: "s-1", Value: "birthday wishes", Deleted: true}

	out := suggestionFromInternal(suggestionToInternal(in))
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestResultFromInternal(t *testing.T) {
	set := result.Set[domdoc.Template]{
		Hits: []result.Hit[domdoc.Template]{
			{
				Doc:        domdoc.Template{ID: "t-1", Title: "Birthday"},
				Score:      3.5,
				Highlights: map[string][]string{"title": {"<em>Birthday</em>"}},
			},
		},
		Total:   9,
		Elapsed: 5 * time.Millisecond,
	}

	out := resultFromInternal(set, templateFromInternal)
	if out.Total != 9 || out.Elapsed != 5*time.Millisecond {
		t.Errorf("metadata lost: %+v", out)
	}
	if len(out.Hits) != 1 || out.Hits[0].Item.Title != "Birthday" || out.Hits[0].Score != 3.5 {
		t.Errorf("hits = %+v", out.Hits)
	}
	if got := out.Hits[0].Highlights["title"]; len(got) != 1 || got[0] != "<em>Birthday</em>" {
		t.Errorf("highlights = %v", out.Hits[0].Highlights)
	}
}

func TestNewRequiresAddresses(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no engine address is configured")
	}
}
