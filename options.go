package cardindex

import "go.uber.org/zap"

// Boosts mirrors the per-field relevance weights for template search.
type Boosts struct {
	Tags        float64
	Title       float64
	Author      float64
	Classes     float64
	Description float64
}

type clientConfig struct {
	addresses        []string
	username         string
	password         string
	templatesIndex   string
	suggestionsIndex string
	boosts           Boosts
	defaultPageSize  int
	logger           *zap.Logger
}

// Option configures the Client.
type Option func(*clientConfig)

// WithAddresses sets the search engine endpoints.
func WithAddresses(addrs ...string) Option {
	return func(c *clientConfig) {
		c.addresses = addrs
	}
}

// WithBasicAuth sets engine credentials.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithIndexNames overrides the default index names.
func WithIndexNames(templates, suggestions string) Option {
	return func(c *clientConfig) {
		c.templatesIndex = templates
		c.suggestionsIndex = suggestions
	}
}

// WithBoosts overrides the default ranking profile.
func WithBoosts(b Boosts) Option {
	return func(c *clientConfig) {
		c.boosts = b
	}
}

// WithDefaultPageSize sets the page size used when a search does not
// specify one.
func WithDefaultPageSize(n int) Option {
	return func(c *clientConfig) {
		c.defaultPageSize = n
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}
