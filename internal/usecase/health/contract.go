package health

import "context"

// EnginePinger checks search engine availability.
type EnginePinger interface {
	Ping(ctx context.Context) error
}

// SourcePinger checks change-feed source availability.
type SourcePinger interface {
	Ping(ctx context.Context) error
}
