// Package backfill copies each news article's title into its empty display
// title, the job the newsroom runs after bulk imports.
package backfill

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/db"
)

const DefaultChunk = 200

type Runner struct {
	DB    db.DB
	Chunk int
}

// Run walks news articles missing a display title in id order, chunk by
// chunk, and returns how many were updated. Articles that already have one
// are never touched.
func (r *Runner) Run(ctx context.Context) (int, error) {
	chunk := r.Chunk
	if chunk <= 0 {
		chunk = DefaultChunk
	}

	var processed int
	var afterID int64
	for {
		articles, err := r.DB.ListNewsMissingDisplayTitle(ctx, afterID, chunk)
		if err != nil {
			return processed, fmt.Errorf("listing articles: %w", err)
		}
		if len(articles) == 0 {
			return processed, nil
		}

		for _, a := range articles {
			if err := r.DB.SetDisplayTitle(ctx, a.ID, a.Title); err != nil {
				return processed, fmt.Errorf("updating article %d: %w", a.ID, err)
			}
			log.Info().Int64("id", a.ID).Str("title", a.Title).Msg("updated article")
			processed++
			afterID = a.ID
		}
	}
}
