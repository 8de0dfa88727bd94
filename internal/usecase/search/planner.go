package search

import (
	"regexp"

	"github.com/apatrida/cardindex/internal/domain/document"
	"github.com/apatrida/cardindex/internal/domain/search/plan"
	"github.com/apatrida/cardindex/internal/domain/search/request"
)

// codePattern recognizes a full product code, e.g. "ABC-12-345".
var codePattern = regexp.MustCompile(`^[A-Za-z]{3}-[0-9]+-[0-9]+$`)

const (
	highlightPreTag  = "<em>"
	highlightPostTag = "</em>"
)

// Planner translates validated requests into engine-agnostic query plans.
type Planner struct {
	boosts Boosts
}

// NewPlanner creates a planner with the given ranking profile. Zero or
// negative weights fall back to the defaults.
func NewPlanner(boosts Boosts) *Planner {
	return &Planner{boosts: boosts.orDefaults()}
}

// IsExactCode reports whether the query is a full product code, which
// routes the request to the exact branch instead of relevance ranking.
func (pl *Planner) IsExactCode(query string) bool {
	return codePattern.MatchString(query)
}

// Suggestions builds the suggestion plan: match on value, deleted
// excluded, ranked by score.
func (pl *Planner) Suggestions(req request.Request) *plan.Plan {
	root := plan.Bool{Filter: []plan.Clause{notDeleted()}}
	if req.HasQuery() {
		root.Must = append(root.Must, plan.Match{Field: document.FieldValue, Query: req.Query()})
	} else {
		root.Must = append(root.Must, plan.MatchAll{})
	}
	return &plan.Plan{
		Root:     root,
		Sort:     []plan.Key{{Field: plan.Score, Desc: true}},
		From:     req.Offset(),
		Size:     req.PageSize(),
		MinScore: req.MinScore(),
	}
}

// ExactCode builds the exact-code plan: a term lookup on the keyword
// subfield, newest first. Relevance plays no part here.
func (pl *Planner) ExactCode(req request.Request) *plan.Plan {
	return &plan.Plan{
		Root: plan.Bool{
			Must:   []plan.Clause{plan.Term{Field: document.FieldCodeExact, Value: req.Query()}},
			Filter: []plan.Clause{notDeleted()},
		},
		Sort: []plan.Key{{Field: document.FieldModified, Desc: true}},
		From: req.Offset(),
		Size: req.PageSize(),
	}
}

// Fuzzy builds the ranked template plan. The MUST clauses depend on what
// the request carries: a tag filter requires every term to match, a free
// query is spread over the boosted text fields, and an empty request
// degrades to match-all browsing.
func (pl *Planner) Fuzzy(req request.Request) *plan.Plan {
	root := plan.Bool{Filter: []plan.Clause{notDeleted()}}

	if req.HasFilter() {
		root.Must = append(root.Must, plan.Match{
			Field:    document.FieldTags,
			Query:    req.Filter(),
			AllTerms: true,
		})
	}
	if req.HasQuery() {
		root.Must = append(root.Must, plan.MultiMatch{
			Query:  req.Query(),
			Fields: pl.boostedFields(),
		})
	}
	if len(root.Must) == 0 {
		root.Must = append(root.Must, plan.MatchAll{})
	}

	return &plan.Plan{
		Root: root,
		Sort: []plan.Key{
			{Field: plan.Score, Desc: true},
			{Field: document.FieldModified, Desc: true},
		},
		From:     req.Offset(),
		Size:     req.PageSize(),
		MinScore: req.MinScore(),
		Highlight: &plan.Highlight{
			Fields:  document.TextFields(),
			PreTag:  highlightPreTag,
			PostTag: highlightPostTag,
		},
	}
}

func (pl *Planner) boostedFields() []plan.FieldBoost {
	return []plan.FieldBoost{
		{Field: document.FieldTags, Boost: pl.boosts.Tags},
		{Field: document.FieldTitle, Boost: pl.boosts.Title},
		{Field: document.FieldAuthor, Boost: pl.boosts.Author},
		{Field: document.FieldClasses, Boost: pl.boosts.Classes},
		{Field: document.FieldDescription, Boost: pl.boosts.Description},
	}
}

// notDeleted is the mandatory exclusion on every plan. It is a FILTER
// clause: soft-deleted documents are invisible, never just down-ranked.
func notDeleted() plan.Clause {
	return plan.Term{Field: document.FieldDeleted, Value: false}
}
