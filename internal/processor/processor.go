// Package processor consumes photo lifecycle events and reconciles what is on
// disk with what the metadata store records.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
	"photofolio/internal/storage"
)

type PhotoRepository interface {
	GetPhotoByImageID(ctx context.Context, imageID uuid.UUID) (*models.Photo, error)
	UpdatePhotoFootprint(ctx context.Context, id int64, footprint int64) error
}

type RenditionStore interface {
	DeleteAllRenditions(ctx context.Context, imageID uuid.UUID)
}

type Accountant interface {
	ComputeFootprint(imageID uuid.UUID) int64
	Invalidate(ctx context.Context)
}

type FootprintProcessor struct {
	log    *slog.Logger
	photos PhotoRepository
	store  RenditionStore
	acct   Accountant
}

func NewFootprintProcessor(log *slog.Logger, photos PhotoRepository, store RenditionStore, acct Accountant) *FootprintProcessor {
	return &FootprintProcessor{
		log:    log,
		photos: photos,
		store:  store,
		acct:   acct,
	}
}

// ProcessMessage handles one event. Stored footprints that drifted from the
// directory size are corrected, and directories of deleted photos that still
// exist are swept.
func (p *FootprintProcessor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "processor.FootprintProcessor.ProcessMessage"

	var ev models.Event
	if err := json.Unmarshal(message, &ev); err != nil {
		p.log.Error("failed to unmarshal event", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log := p.log.With(slog.String("op", op), slog.String("type", ev.Type), slog.String("owner_id", ev.OwnerID))

	defer p.acct.Invalidate(ctx)

	if ev.ImageID == nil {
		log.Info("event received", slog.String("size", ev.Size))
		return nil
	}

	imageID := *ev.ImageID
	log = log.With(slog.String("image_id", imageID.String()))

	photo, err := p.photos.GetPhotoByImageID(ctx, imageID)
	switch {
	case errors.Is(err, storage.ErrPhotoNotFound):
		if ev.Type == models.EventPhotoDeleted {
			p.store.DeleteAllRenditions(ctx, imageID)
			log.Info("renditions swept")
		} else {
			log.Info("photo is gone, skipping")
		}
		return nil
	case err != nil:
		log.Error("failed to load photo", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	n := p.acct.ComputeFootprint(imageID)
	if n == photo.AssetFootprint {
		log.Debug("footprint is up to date", slog.Int64("footprint", n))
		return nil
	}

	if err = p.photos.UpdatePhotoFootprint(ctx, photo.ID, n); err != nil {
		log.Error("failed to update footprint", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("footprint corrected", slog.Int64("was", photo.AssetFootprint), slog.Int64("now", n))

	return nil
}
