package schema

import (
	"github.com/apatrida/cardindex/internal/analysis"
	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/engine"
)

// TemplateSchema returns the template index schema: autocomplete analysis
// on the free-text fields, a keyword subfield on code for exact lookups,
// and query-time synonym expansion on tags.
func TemplateSchema() *engine.IndexSchema {
	return &engine.IndexSchema{
		Analysis: analysis.ForTemplates(),
		Fields: []engine.FieldMapping{
			{Name: document.FieldID, Type: engine.FieldKeyword},
			{Name: document.FieldTitle, Type: engine.FieldText, Analyzer: analysis.AnalyzerSuggestion},
			{Name: document.FieldDescription, Type: engine.FieldText, Analyzer: analysis.AnalyzerSuggestion},
			{Name: document.FieldAuthor, Type: engine.FieldText, Analyzer: analysis.AnalyzerSuggestion},
			{Name: document.FieldCode, Type: engine.FieldText, Analyzer: analysis.AnalyzerSuggestion, ExactSubfield: true},
			{Name: document.FieldClasses, Type: engine.FieldText, Analyzer: analysis.AnalyzerSuggestion},
			{
				Name:           document.FieldTags,
				Type:           engine.FieldText,
				Analyzer:       analysis.AnalyzerFilter,
				SearchAnalyzer: analysis.AnalyzerSearch,
			},
			{Name: document.FieldDeleted, Type: engine.FieldBoolean},
			{Name: document.FieldModified, Type: engine.FieldDate},
		},
	}
}

// SuggestionSchema returns the suggestion index schema: a single
// edge-n-gram analyzed value field.
func SuggestionSchema() *engine.IndexSchema {
	return &engine.IndexSchema{
		Analysis: analysis.ForSuggestions(),
		Fields: []engine.FieldMapping{
			{Name: document.FieldID, Type: engine.FieldKeyword},
			{Name: document.FieldValue, Type: engine.FieldText, Analyzer: analysis.AnalyzerSuggestion},
			{Name: document.FieldDeleted, Type: engine.FieldBoolean},
			{Name: document.FieldModified, Type: engine.FieldDate},
		},
	}
}
