package customsizes

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
)

type batchResult struct {
	done   int
	failed int
	errors []string
}

// listPhotos loads the batch before the setting changes, so a listing
// failure leaves nothing persisted.
func (m *Maintainer) listPhotos(ctx context.Context, ownerID string) ([]models.Photo, error) {
	const op = "customsizes.Maintainer.listPhotos"

	photos, err := m.photos.ListPhotos(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence("failed to list photos", fmt.Errorf("%s: %w", op, err))
	}

	return photos, nil
}

// forEachPhoto runs fn for every photo on at most m.workers goroutines. Item
// failures are collected in photo order and never stop the batch.
func (m *Maintainer) forEachPhoto(ctx context.Context, photos []models.Photo, fn func(context.Context, models.Photo) error) batchResult {
	const op = "customsizes.Maintainer.forEachPhoto"

	errs := make([]error, len(photos))

	g := new(errgroup.Group)
	g.SetLimit(m.workers)

	for i, p := range photos {
		i, p := i, p
		g.Go(func() error {
			errs[i] = fn(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	res := batchResult{errors: []string{}}
	for i, p := range photos {
		if errs[i] == nil {
			res.done++
			continue
		}

		m.log.Warn("batch item failed",
			slog.String("op", op),
			slog.Int64("id", p.ID),
			slog.String("image_id", p.ImageID.String()),
			sl.Err(errs[i]),
		)
		res.failed++
		res.errors = append(res.errors, fmt.Sprintf("photo %d: %s", p.ID, apperr.Message(errs[i], "processing failed")))
	}

	if len(photos) > 0 {
		m.acct.Invalidate(ctx)
	}

	return res
}
