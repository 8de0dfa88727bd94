// Package analysis declares the text-analysis pipelines for each index
// kind. Everything here is pure configuration: no engine calls, no side
// effects. The schema manager serializes these values into the
// create-index request, and they are immutable after that: changing an
// analyzer requires dropping and recreating the index.
package analysis

// Analyzer names shared between schema creation and query planning.
const (
	AnalyzerSuggestion = "suggestionAnalyzer"
	AnalyzerFilter     = "filterAnalyzer"
	AnalyzerSearch     = "searchAnalyzer"
)

// Tokenizer type identifiers.
const (
	TokenizerStandard   = "standard"
	TokenizerWhitespace = "whitespace"
	TokenizerLetter     = "letter"
	TokenizerEdgeNGram  = "edge_ngram"
)

// Token filter type identifiers.
const (
	FilterLowercase    = "lowercase"
	FilterASCIIFolding = "asciifolding"
	FilterEdgeNGram    = "edge_ngram"
	FilterSynonym      = "synonym"
)

// Tokenizer is a named tokenizer definition. Gram bounds and token
// character classes only apply to edge_ngram tokenizers.
type Tokenizer struct {
	Name       string
	Type       string
	MinGram    int
	MaxGram    int
	TokenChars []string
}

// TokenFilter is a named token filter definition. Gram bounds apply to
// edge_ngram filters, Synonyms to synonym filters.
type TokenFilter struct {
	Name     string
	Type     string
	MinGram  int
	MaxGram  int
	Synonyms []string
}

// Analyzer is a named pipeline: one tokenizer followed by an ordered
// filter chain.
type Analyzer struct {
	Name      string
	Tokenizer string
	Filters   []string
}

// Analysis is the complete analysis block of one index.
type Analysis struct {
	Tokenizers []Tokenizer
	Filters    []TokenFilter
	Analyzers  []Analyzer
}

// holidaySynonyms improves recall for seasonal terms: the possessive forms
// users type are folded onto the singular tag values.
var holidaySynonyms = []string{
	"valentines,valentine",
	"fathers,father",
	"mothers,mother",
	"grandparents,grandparent",
	"veterans,veteran",
	"presidents,president",
	"patricks,patrick",
}

const (
	autocompleteFilter = "autocompleteFilter"
	synonymFilter      = "holidaySynonymFilter"

	// autocompleteTokenizer is declared but unused by the analyzers below,
	// which n-gram at the filter level. Kept for field-level overrides.
	autocompleteTokenizer = "autocompleteTokenizer"
)

// ForSuggestions returns the analysis block of the suggestion index: a
// single edge-n-gram analyzer supporting prefix matching on the value field.
func ForSuggestions() Analysis {
	return Analysis{
		Tokenizers: []Tokenizer{
			{
				Name:       autocompleteTokenizer,
				Type:       TokenizerEdgeNGram,
				MinGram:    1,
				MaxGram:    12,
				TokenChars: []string{"letter", "digit", "whitespace"},
			},
		},
		Filters: []TokenFilter{
			{Name: autocompleteFilter, Type: FilterEdgeNGram, MinGram: 1, MaxGram: 15},
		},
		Analyzers: []Analyzer{
			{
				Name:      AnalyzerSuggestion,
				Tokenizer: TokenizerStandard,
				Filters:   []string{FilterLowercase, autocompleteFilter},
			},
		},
	}
}

// ForTemplates returns the analysis block of the template index: the
// autocomplete analyzer for title/description/author/code, an exact-tag
// analyzer insensitive to case and accents, and a synonym-expanding search
// analyzer for seasonal terms.
func ForTemplates() Analysis {
	return Analysis{
		Tokenizers: []Tokenizer{
			{
				Name:       autocompleteTokenizer,
				Type:       TokenizerEdgeNGram,
				MinGram:    1,
				MaxGram:    12,
				TokenChars: []string{"letter", "digit", "whitespace", "punctuation", "symbol"},
			},
		},
		Filters: []TokenFilter{
			{Name: autocompleteFilter, Type: FilterEdgeNGram, MinGram: 1, MaxGram: 15},
			{Name: synonymFilter, Type: FilterSynonym, Synonyms: holidaySynonyms},
		},
		Analyzers: []Analyzer{
			{
				Name:      AnalyzerSuggestion,
				Tokenizer: TokenizerStandard,
				Filters:   []string{FilterLowercase, autocompleteFilter},
			},
			{
				Name:      AnalyzerFilter,
				Tokenizer: TokenizerWhitespace,
				Filters:   []string{FilterLowercase, FilterASCIIFolding},
			},
			{
				Name:      AnalyzerSearch,
				Tokenizer: TokenizerLetter,
				Filters:   []string{FilterLowercase, FilterASCIIFolding, synonymFilter},
			},
		},
	}
}
