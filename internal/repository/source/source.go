// Package source reads the relational change feed that drives index sync.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	domdoc "github.com/apatrida/cardindex/internal/domain/document"
)

const (
	templateQuery = `
		SELECT id, title, description, author, code, classes, tags, deleted, modified
		FROM templates
		WHERE modified > $1
		ORDER BY modified`

	suggestionQuery = `
		SELECT id, value, deleted, modified
		FROM suggestions
		WHERE modified > $1
		ORDER BY modified`
)

// Repo implements usecase/sync.Source over a Postgres pool.
type Repo struct {
	pool *pgxpool.Pool
}

// New connects to the change-feed database.
func New(ctx context.Context, dsn string) (*Repo, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect source db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping source db: %w", err)
	}
	return &Repo{pool: pool}, nil
}

// Ping checks source database availability.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Templates returns templates modified after the watermark, oldest first.
func (r *Repo) Templates(ctx context.Context, since time.Time) ([]domdoc.Template, error) {
	rows, err := r.pool.Query(ctx, templateQuery, since)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var out []domdoc.Template
	for rows.Next() {
		var t domdoc.Template
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Author,
			&t.Code, &t.Classes, &t.Tags, &t.Deleted, &t.Modified,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return out, nil
}

// Suggestions returns suggestions modified after the watermark, oldest first.
func (r *Repo) Suggestions(ctx context.Context, since time.Time) ([]domdoc.Suggestion, error) {
	rows, err := r.pool.Query(ctx, suggestionQuery, since)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var out []domdoc.Suggestion
	for rows.Next() {
		var s domdoc.Suggestion
		if err := rows.Scan(&s.ID, &s.Value, &s.Deleted, &s.Modified); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}
	return out, nil
}

// Close releases the pool.
func (r *Repo) Close() {
	r.pool.Close()
}
