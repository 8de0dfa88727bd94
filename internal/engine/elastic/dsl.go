package elastic

import (
	"fmt"

	"github.com/apatrida/cardindex/internal/analysis"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/engine"
)

// renderPlan serializes a plan tree into the Elasticsearch query DSL.
func renderPlan(p *plan.Plan) map[string]any {
	body := map[string]any{
		"query": renderClause(p.Root),
		"from":  p.From,
		"size":  p.Size,
	}
	if p.MinScore > 0 {
		body["min_score"] = p.MinScore
	}
	if len(p.Sort) > 0 {
		sorts := make([]any, 0, len(p.Sort))
		for _, k := range p.Sort {
			order := "asc"
			if k.Desc {
				order = "desc"
			}
			sorts = append(sorts, map[string]any{k.Field: map[string]any{"order": order}})
		}
		body["sort"] = sorts
	}
	if p.Highlight != nil {
		fields := make(map[string]any, len(p.Highlight.Fields))
		for _, f := range p.Highlight.Fields {
			fields[f] = map[string]any{}
		}
		body["highlight"] = map[string]any{
			"pre_tags":  []string{p.Highlight.PreTag},
			"post_tags": []string{p.Highlight.PostTag},
			"fields":    fields,
		}
	}
	return body
}

func renderClause(c plan.Clause) map[string]any {
	switch v := c.(type) {
	case plan.MatchAll:
		return map[string]any{"match_all": map[string]any{}}
	case plan.Term:
		return map[string]any{"term": map[string]any{v.Field: map[string]any{"value": v.Value}}}
	case plan.Match:
		m := map[string]any{"query": v.Query}
		if v.AllTerms {
			m["operator"] = "and"
		}
		return map[string]any{"match": map[string]any{v.Field: m}}
	case plan.MultiMatch:
		fields := make([]string, 0, len(v.Fields))
		for _, f := range v.Fields {
			fields = append(fields, fmt.Sprintf("%s^%g", f.Field, f.Boost))
		}
		return map[string]any{"multi_match": map[string]any{
			"query":  v.Query,
			"fields": fields,
		}}
	case plan.Bool:
		b := map[string]any{}
		if len(v.Must) > 0 {
			must := make([]any, 0, len(v.Must))
			for _, m := range v.Must {
				must = append(must, renderClause(m))
			}
			b["must"] = must
		}
		if len(v.Filter) > 0 {
			filter := make([]any, 0, len(v.Filter))
			for _, f := range v.Filter {
				filter = append(filter, renderClause(f))
			}
			b["filter"] = filter
		}
		return map[string]any{"bool": b}
	default:
		// Unknown clause kinds cannot occur: the planner only builds the
		// variants above.
		return map[string]any{"match_none": map[string]any{}}
	}
}

// renderSchema serializes an index schema into the create-index payload:
// settings.analysis plus mappings.properties.
func renderSchema(s *engine.IndexSchema) map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"analysis": renderAnalysis(s.Analysis),
		},
		"mappings": map[string]any{
			"properties": renderProperties(s.Fields),
		},
	}
}

func renderAnalysis(a analysis.Analysis) map[string]any {
	out := map[string]any{}

	if len(a.Tokenizers) > 0 {
		tokenizers := make(map[string]any, len(a.Tokenizers))
		for _, t := range a.Tokenizers {
			def := map[string]any{"type": t.Type}
			if t.Type == analysis.TokenizerEdgeNGram {
				def["min_gram"] = t.MinGram
				def["max_gram"] = t.MaxGram
				def["token_chars"] = t.TokenChars
			}
			tokenizers[t.Name] = def
		}
		out["tokenizer"] = tokenizers
	}

	if len(a.Filters) > 0 {
		filters := make(map[string]any, len(a.Filters))
		for _, f := range a.Filters {
			def := map[string]any{"type": f.Type}
			switch f.Type {
			case analysis.FilterEdgeNGram:
				def["min_gram"] = f.MinGram
				def["max_gram"] = f.MaxGram
			case analysis.FilterSynonym:
				def["synonyms"] = f.Synonyms
			}
			filters[f.Name] = def
		}
		out["filter"] = filters
	}

	analyzers := make(map[string]any, len(a.Analyzers))
	for _, an := range a.Analyzers {
		analyzers[an.Name] = map[string]any{
			"type":      "custom",
			"tokenizer": an.Tokenizer,
			"filter":    an.Filters,
		}
	}
	out["analyzer"] = analyzers

	return out
}

func renderProperties(fields []engine.FieldMapping) map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		def := map[string]any{"type": string(f.Type)}
		if f.Analyzer != "" {
			def["analyzer"] = f.Analyzer
		}
		if f.SearchAnalyzer != "" {
			def["search_analyzer"] = f.SearchAnalyzer
		}
		if f.ExactSubfield {
			def["fields"] = map[string]any{
				"keyword": map[string]any{"type": "keyword"},
			}
		}
		props[f.Name] = def
	}
	return props
}
