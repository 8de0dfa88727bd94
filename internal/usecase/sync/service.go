// Package sync mirrors a relational change feed into the search indexes.
package sync

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Syncer polls the source for changed rows and reindexes them. Soft
// deletes flow through the same path: a deleted row is indexed with its
// deleted flag set, which removes it from query results without a
// physical delete.
type Syncer struct {
	source   Source
	indexer  Indexer
	interval time.Duration
	overlap  time.Duration
	logger   *zap.Logger

	watermark time.Time
	now       func() time.Time
}

// New creates a syncer. The overlap window is re-read on every cycle to
// absorb clock skew between this process and the source database.
func New(source Source, indexer Indexer, interval, overlap time.Duration, logger *zap.Logger) *Syncer {
	return &Syncer{
		source:   source,
		indexer:  indexer,
		interval: interval,
		overlap:  overlap,
		logger:   logger,
		now:      time.Now,
	}
}

// Run polls until ctx is canceled. A failed cycle is logged and retried
// on the next tick; the watermark only advances after a clean cycle, so
// nothing is skipped.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cycle(ctx)
		}
	}
}

// Cycle runs a single sync pass. Exposed for one-shot catch-up runs.
func (s *Syncer) Cycle(ctx context.Context) error {
	return s.cycle(ctx)
}

func (s *Syncer) cycle(ctx context.Context) error {
	start := s.now()
	since := s.watermark.Add(-s.overlap)

	templates, err := s.source.Templates(ctx, since)
	if err != nil {
		s.logger.Warn("Sync cycle failed to read templates", zap.Error(err))
		return err
	}
	suggestions, err := s.source.Suggestions(ctx, since)
	if err != nil {
		s.logger.Warn("Sync cycle failed to read suggestions", zap.Error(err))
		return err
	}

	for _, t := range templates {
		if err := s.indexer.IndexTemplate(ctx, t); err != nil {
			s.logger.Warn("Sync cycle failed to index template",
				zap.String("id", t.ID), zap.Error(err))
			return err
		}
	}
	for _, sg := range suggestions {
		if err := s.indexer.IndexSuggestion(ctx, sg); err != nil {
			s.logger.Warn("Sync cycle failed to index suggestion",
				zap.String("id", sg.ID), zap.Error(err))
			return err
		}
	}

	s.watermark = start
	if len(templates)+len(suggestions) > 0 {
		s.logger.Info("Sync cycle complete",
			zap.Int("templates", len(templates)),
			zap.Int("suggestions", len(suggestions)))
	}
	return nil
}
