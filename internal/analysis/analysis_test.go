package analysis

import (
	"strings"
	"testing"
)

func analyzerByName(t *testing.T, a Analysis, name string) Analyzer {
	t.Helper()
	for _, an := range a.Analyzers {
		if an.Name == name {
			return an
		}
	}
	t.Fatalf("analyzer %q not found", name)
	return Analyzer{}
}

func filterByName(t *testing.T, a Analysis, name string) TokenFilter {
	t.Helper()
	for _, f := range a.Filters {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("filter %q not found", name)
	return TokenFilter{}
}

func TestForSuggestions(t *testing.T) {
	a := ForSuggestions()

	if len(a.Analyzers) != 1 {
		t.Fatalf("expected 1 analyzer, got %d", len(a.Analyzers))
	}
	an := analyzerByName(t, a, AnalyzerSuggestion)
	if an.Tokenizer != TokenizerStandard {
		t.Errorf("tokenizer = %q, want standard", an.Tokenizer)
	}
	if len(an.Filters) != 2 || an.Filters[0] != FilterLowercase {
		t.Errorf("unexpected filter chain: %v", an.Filters)
	}

	ngram := filterByName(t, a, an.Filters[1])
	if ngram.Type != FilterEdgeNGram {
		t.Errorf("second filter type = %q, want edge_ngram", ngram.Type)
	}
	if ngram.MinGram != 1 || ngram.MaxGram != 15 {
		t.Errorf("gram bounds = %d..%d, want 1..15", ngram.MinGram, ngram.MaxGram)
	}
}

func TestForSuggestionsDeclaresAuxiliaryTokenizer(t *testing.T) {
	a := ForSuggestions()

	if len(a.Tokenizers) != 1 {
		t.Fatalf("expected 1 tokenizer declaration, got %d", len(a.Tokenizers))
	}
	tok := a.Tokenizers[0]
	if tok.Type != TokenizerEdgeNGram || tok.MinGram != 1 || tok.MaxGram != 12 {
		t.Errorf("unexpected auxiliary tokenizer: %+v", tok)
	}
	for _, class := range []string{"letter", "digit", "whitespace"} {
		if !containsString(tok.TokenChars, class) {
			t.Errorf("token chars missing %q: %v", class, tok.TokenChars)
		}
	}
	if containsString(tok.TokenChars, "symbol") {
		t.Error("suggestion tokenizer should not accept symbol chars")
	}
}

func TestForTemplates(t *testing.T) {
	a := ForTemplates()

	if len(a.Analyzers) != 3 {
		t.Fatalf("expected 3 analyzers, got %d", len(a.Analyzers))
	}

	fa := analyzerByName(t, a, AnalyzerFilter)
	if fa.Tokenizer != TokenizerWhitespace {
		t.Errorf("filterAnalyzer tokenizer = %q, want whitespace", fa.Tokenizer)
	}
	wantChain := []string{FilterLowercase, FilterASCIIFolding}
	for i, f := range wantChain {
		if fa.Filters[i] != f {
			t.Errorf("filterAnalyzer chain[%d] = %q, want %q", i, fa.Filters[i], f)
		}
	}

	sa := analyzerByName(t, a, AnalyzerSearch)
	if sa.Tokenizer != TokenizerLetter {
		t.Errorf("searchAnalyzer tokenizer = %q, want letter", sa.Tokenizer)
	}
	syn := filterByName(t, a, sa.Filters[len(sa.Filters)-1])
	if syn.Type != FilterSynonym {
		t.Fatalf("searchAnalyzer last filter type = %q, want synonym", syn.Type)
	}
	for _, pair := range []string{"fathers,father", "valentines,valentine", "patricks,patrick"} {
		if !containsString(syn.Synonyms, pair) {
			t.Errorf("synonym table missing %q", pair)
		}
	}
}

func TestTemplateTokenizerAcceptsSymbols(t *testing.T) {
	a := ForTemplates()

	tok := a.Tokenizers[0]
	for _, class := range []string{"punctuation", "symbol"} {
		if !containsString(tok.TokenChars, class) {
			t.Errorf("template tokenizer missing %q class", class)
		}
	}
}

func TestAnalyzerFiltersResolve(t *testing.T) {
	// Every analyzer filter must be either a builtin or declared in the block.
	builtin := map[string]bool{FilterLowercase: true, FilterASCIIFolding: true}
	for _, a := range []Analysis{ForSuggestions(), ForTemplates()} {
		declared := make(map[string]bool)
		for _, f := range a.Filters {
			declared[f.Name] = true
		}
		for _, an := range a.Analyzers {
			for _, f := range an.Filters {
				if !builtin[f] && !declared[f] {
					t.Errorf("analyzer %s references undeclared filter %q", an.Name, f)
				}
			}
		}
	}
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
