package search

// Boosts holds the per-field relevance weights for the fuzzy template
// query. They are deployment configuration, never request-tunable.
type Boosts struct {
	Tags        float64 `yaml:"tags"`
	Title       float64 `yaml:"title"`
	Author      float64 `yaml:"author"`
	Classes     float64 `yaml:"classes"`
	Description float64 `yaml:"description"`
}

// DefaultBoosts returns the standard ranking profile. Tags dominate,
// then title and description; classes barely nudge the score.
func DefaultBoosts() Boosts {
	return Boosts{
		Tags:        12,
		Title:       10,
		Author:      4,
		Classes:     1,
		Description: 7,
	}
}

// orDefaults substitutes defaults for unset weights so a partially filled
// config block does not zero out whole fields.
func (b Boosts) orDefaults() Boosts {
	def := DefaultBoosts()
	if b.Tags <= 0 {
		b.Tags = def.Tags
	}
	if b.Title <= 0 {
		b.Title = def.Title
	}
	if b.Author <= 0 {
		b.Author = def.Author
	}
	if b.Classes <= 0 {
		b.Classes = def.Classes
	}
	if b.Description <= 0 {
		b.Description = def.Description
	}
	return b
}
