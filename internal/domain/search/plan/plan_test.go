package plan

import "testing"

func samplePlan(query string) *Plan {
	return &Plan{
		Root: Bool{
			Must: []Clause{
				Match{Field: "tags", Query: query, AllTerms: true},
				MultiMatch{Query: query, Fields: []FieldBoost{{Field: "title", Boost: 10}}},
			},
			Filter: []Clause{Term{Field: "deleted", Value: false}},
		},
		Sort:     []Key{{Field: Score, Desc: true}, {Field: "modified", Desc: true}},
		From:     20,
		Size:     10,
		MinScore: 1.5,
		Highlight: &Highlight{
			Fields:  []string{"title"},
			PreTag:  "<em>",
			PostTag: "</em>",
		},
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := samplePlan("birthday").Fingerprint()
	b := samplePlan("birthday").Fingerprint()
	if a != b {
		t.Errorf("equal plans fingerprint differently:\n%s\n%s", a, b)
	}
}

func TestFingerprintDistinguishesPlans(t *testing.T) {
	base := samplePlan("birthday")

	variants := map[string]*Plan{
		"query":     samplePlan("wedding"),
		"paging":    func() *Plan { p := samplePlan("birthday"); p.From = 0; return p }(),
		"min score": func() *Plan { p := samplePlan("birthday"); p.MinScore = 0; return p }(),
		"sort":      func() *Plan { p := samplePlan("birthday"); p.Sort = p.Sort[:1]; return p }(),
		"filter": func() *Plan {
			p := samplePlan("birthday")
			p.Root.Filter = nil
			return p
		}(),
	}
	for name, v := range variants {
		if v.Fingerprint() == base.Fingerprint() {
			t.Errorf("%s change did not alter fingerprint", name)
		}
	}
}
