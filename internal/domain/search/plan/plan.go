// Package plan models a boolean query tree independent of any engine's
// query DSL. Planners build Plan values with pure functions; the gateway
// serializes them into the engine's native query language.
package plan

import (
	"fmt"
	"strings"
)

// Score is the relevance pseudo-field accepted by sort keys.
const Score = "_score"

// Clause is a node in the boolean query tree.
type Clause interface {
	isClause()
	fingerprint(b *strings.Builder)
}

// MatchAll matches every document.
type MatchAll struct{}

// Term is an exact, unanalyzed match on a single field.
type Term struct {
	Field string
	Value any
}

// Match is an analyzed match on a single field. AllTerms requires every
// token of the query to be present (AND semantics instead of the default OR).
type Match struct {
	Field    string
	Query    string
	AllTerms bool
}

// FieldBoost pairs a field name with its relevance multiplier.
type FieldBoost struct {
	Field string
	Boost float64
}

// MultiMatch is a weighted match across several fields; at least one field
// must match.
type MultiMatch struct {
	Query  string
	Fields []FieldBoost
}

// Bool combines scored required clauses (Must) with unscored hard
// exclusions (Filter). Filter clauses are never relaxed by ranking.
type Bool struct {
	Must   []Clause
	Filter []Clause
}

func (MatchAll) isClause()   {}
func (Term) isClause()       {}
func (Match) isClause()      {}
func (MultiMatch) isClause() {}
func (Bool) isClause()       {}

// Key is a single sort criterion. Field may be Score.
type Key struct {
	Field string
	Desc  bool
}

// Highlight requests match highlighting on the given fields with a fixed
// pre/post marker pair.
type Highlight struct {
	Fields  []string
	PreTag  string
	PostTag string
}

// Plan is a complete, engine-agnostic query: the boolean tree, sort order,
// paging window, relevance floor, and optional highlighting.
type Plan struct {
	Root      Bool
	Sort      []Key
	From      int
	Size      int
	MinScore  float64
	Highlight *Highlight
}

// Fingerprint returns a deterministic textual form of the plan, suitable
// as a cache key component. Two equal plans always fingerprint identically.
func (p *Plan) Fingerprint() string {
	var b strings.Builder
	p.Root.fingerprint(&b)
	for _, k := range p.Sort {
		fmt.Fprintf(&b, "|sort(%s,%t)", k.Field, k.Desc)
	}
	fmt.Fprintf(&b, "|from=%d|size=%d|min=%g", p.From, p.Size, p.MinScore)
	if p.Highlight != nil {
		fmt.Fprintf(&b, "|hl(%s)", strings.Join(p.Highlight.Fields, ","))
	}
	return b.String()
}

func (MatchAll) fingerprint(b *strings.Builder) {
	b.WriteString("all()")
}

func (t Term) fingerprint(b *strings.Builder) {
	fmt.Fprintf(b, "term(%s=%v)", t.Field, t.Value)
}

func (m Match) fingerprint(b *strings.Builder) {
	fmt.Fprintf(b, "match(%s=%q,and=%t)", m.Field, m.Query, m.AllTerms)
}

func (m MultiMatch) fingerprint(b *strings.Builder) {
	fmt.Fprintf(b, "multi(%q", m.Query)
	for _, f := range m.Fields {
		fmt.Fprintf(b, ",%s^%g", f.Field, f.Boost)
	}
	b.WriteString(")")
}

func (c Bool) fingerprint(b *strings.Builder) {
	b.WriteString("bool(must:")
	for _, m := range c.Must {
		m.fingerprint(b)
		b.WriteString(";")
	}
	b.WriteString("filter:")
	for _, f := range c.Filter {
		f.fingerprint(b)
		b.WriteString(";")
	}
	b.WriteString(")")
}
