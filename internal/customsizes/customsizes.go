// Package customsizes adds and removes owner-defined rendition sizes and
// brings the existing photos in line with the change.
package customsizes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/keylock"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
	"photofolio/internal/sizes"
	"photofolio/internal/storage"
)

const DefaultWorkers = 2

type SettingRepository interface {
	SaveSetting(ctx context.Context, setting models.Setting) (*models.Setting, error)
	DeleteSetting(ctx context.Context, ownerID, category, key string) error
}

type PhotoRepository interface {
	ListPhotos(ctx context.Context, ownerID string) ([]models.Photo, error)
	UpdatePhotoFootprint(ctx context.Context, id int64, footprint int64) error
}

type SizeRegistry interface {
	Custom(ctx context.Context, ownerID string) ([]sizes.Spec, error)
	Load(ctx context.Context, ownerID string) (sizes.Set, error)
}

type Transcoder interface {
	Transcode(src []byte, spec sizes.Spec) ([]byte, error)
}

type RenditionStore interface {
	ReadSourceForRegeneration(ctx context.Context, imageID uuid.UUID, order []string) ([]byte, string, error)
	WriteRendition(ctx context.Context, imageID uuid.UUID, size string, data []byte) error
	DeleteRendition(ctx context.Context, imageID uuid.UUID, size string) error
}

type Accountant interface {
	ComputeFootprint(imageID uuid.UUID) int64
	Invalidate(ctx context.Context)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev models.Event)
}

type Maintainer struct {
	log      *slog.Logger
	settings SettingRepository
	photos   PhotoRepository
	registry SizeRegistry
	tc       Transcoder
	store    RenditionStore
	acct     Accountant
	events   EventPublisher
	workers  int

	images *keylock.Locker
	owners keylock.Locker
}

type Option func(*Maintainer)

// WithLocker shares the per-image lock with the photo lifecycle manager.
func WithLocker(l *keylock.Locker) Option {
	return func(m *Maintainer) {
		m.images = l
	}
}

func WithEvents(p EventPublisher) Option {
	return func(m *Maintainer) {
		m.events = p
	}
}

func WithWorkers(n int) Option {
	return func(m *Maintainer) {
		if n > 0 {
			m.workers = n
		}
	}
}

func New(
	log *slog.Logger,
	settings SettingRepository,
	photos PhotoRepository,
	registry SizeRegistry,
	tc Transcoder,
	store RenditionStore,
	acct Accountant,
	opts ...Option,
) *Maintainer {
	m := &Maintainer{
		log:      log,
		settings: settings,
		photos:   photos,
		registry: registry,
		tc:       tc,
		store:    store,
		acct:     acct,
		workers:  DefaultWorkers,
		images:   &keylock.Locker{},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Sizes lists the owner's merged size set.
func (m *Maintainer) Sizes(ctx context.Context, ownerID string) ([]sizes.Spec, error) {
	const op = "customsizes.Maintainer.Sizes"

	set, err := m.registry.Load(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence("failed to load image sizes", fmt.Errorf("%s: %w", op, err))
	}

	return set.All(), nil
}

type AddSizeInput struct {
	Name            string
	Width           int
	Height          int
	Quality         int
	ProcessExisting bool
}

type AddSizeResult struct {
	Size      sizes.Spec `json:"size"`
	Processed int        `json:"processed"`
	Failed    int        `json:"failed"`
	Errors    []string   `json:"errors"`
}

// AddSize stores a new custom size and, when asked, derives it for every
// photo of the owner from the largest rendition each photo already has.
func (m *Maintainer) AddSize(ctx context.Context, ownerID string, in AddSizeInput) (*AddSizeResult, error) {
	const op = "customsizes.Maintainer.AddSize"

	log := m.log.With(slog.String("op", op), slog.String("owner_id", ownerID), slog.String("size", in.Name))

	spec := sizes.Spec{Name: in.Name, Width: in.Width, Height: in.Height, Quality: in.Quality, IsCustom: true}

	if sizes.IsBuiltIn(spec.Name) {
		return nil, apperr.Conflict("size %q is a built-in size", spec.Name)
	}
	if err := sizes.Validate(spec); err != nil {
		return nil, err
	}

	unlock := m.owners.Lock(ownerID)
	defer unlock()

	custom, err := m.registry.Custom(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence("failed to load image sizes", fmt.Errorf("%s: %w", op, err))
	}
	for _, c := range custom {
		if c.Name == spec.Name {
			return nil, apperr.Conflict("size %q already exists", spec.Name)
		}
	}

	var photos []models.Photo
	if in.ProcessExisting {
		if photos, err = m.listPhotos(ctx, ownerID); err != nil {
			log.Error("failed to list photos", sl.Err(err))
			return nil, err
		}
	}

	setting, err := sizes.EncodeSetting(ownerID, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = m.settings.SaveSetting(ctx, setting); err != nil {
		if errors.Is(err, storage.ErrSettingExists) {
			return nil, apperr.Conflict("size %q already exists", spec.Name)
		}
		log.Error("failed to save size", sl.Err(err))
		return nil, apperr.Persistence("failed to save size", fmt.Errorf("%s: %w", op, err))
	}

	m.publish(ctx, models.EventSizeAdded, ownerID, spec.Name)

	res := &AddSizeResult{Size: spec, Errors: []string{}}

	if in.ProcessExisting {
		b := m.forEachPhoto(ctx, photos, func(ctx context.Context, p models.Photo) error {
			return m.regenerate(ctx, p, spec)
		})
		res.Processed, res.Failed, res.Errors = b.done, b.failed, b.errors
	}

	log.Info("custom size added", slog.Int("processed", res.Processed), slog.Int("failed", res.Failed))

	return res, nil
}

func (m *Maintainer) regenerate(ctx context.Context, p models.Photo, spec sizes.Spec) error {
	unlock := m.images.Lock(p.ImageID.String())
	defer unlock()

	src, from, err := m.store.ReadSourceForRegeneration(ctx, p.ImageID, sizes.RegenerationOrder())
	if err != nil {
		return err
	}

	data, err := m.tc.Transcode(src, spec)
	if err != nil {
		return fmt.Errorf("from %s: %w", from, err)
	}

	if err = m.store.WriteRendition(ctx, p.ImageID, spec.Name, data); err != nil {
		return err
	}

	m.refreshFootprint(ctx, p)

	return nil
}

type DeleteSizeResult struct {
	Deleted int      `json:"deleted"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// DeleteSize removes a custom size. With deleteFiles the rendition of that
// size is removed from every photo of the owner.
func (m *Maintainer) DeleteSize(ctx context.Context, ownerID, name string, deleteFiles bool) (*DeleteSizeResult, error) {
	const op = "customsizes.Maintainer.DeleteSize"

	log := m.log.With(slog.String("op", op), slog.String("owner_id", ownerID), slog.String("size", name))

	if sizes.IsBuiltIn(name) {
		return nil, apperr.Validation("built-in size %q cannot be deleted", name)
	}

	unlock := m.owners.Lock(ownerID)
	defer unlock()

	var photos []models.Photo
	if deleteFiles {
		var err error
		if photos, err = m.listPhotos(ctx, ownerID); err != nil {
			log.Error("failed to list photos", sl.Err(err))
			return nil, err
		}
	}

	err := m.settings.DeleteSetting(ctx, ownerID, models.CategoryImageSizes, name)
	if err != nil {
		if errors.Is(err, storage.ErrSettingNotFound) {
			return nil, apperr.NotFound("size %q not found", name)
		}
		log.Error("failed to delete size", sl.Err(err))
		return nil, apperr.Persistence("failed to delete size", fmt.Errorf("%s: %w", op, err))
	}

	m.publish(ctx, models.EventSizeDeleted, ownerID, name)

	res := &DeleteSizeResult{Errors: []string{}}

	if deleteFiles {
		b := m.forEachPhoto(ctx, photos, func(ctx context.Context, p models.Photo) error {
			unlock := m.images.Lock(p.ImageID.String())
			defer unlock()

			if err := m.store.DeleteRendition(ctx, p.ImageID, name); err != nil {
				return err
			}
			m.refreshFootprint(ctx, p)

			return nil
		})
		res.Deleted, res.Failed, res.Errors = b.done, b.failed, b.errors
	}

	log.Info("custom size deleted", slog.Int("deleted", res.Deleted), slog.Int("failed", res.Failed))

	return res, nil
}

// refreshFootprint persists the photo's current directory size. A failure
// leaves the old value in place and is only logged.
func (m *Maintainer) refreshFootprint(ctx context.Context, p models.Photo) {
	const op = "customsizes.Maintainer.refreshFootprint"

	n := m.acct.ComputeFootprint(p.ImageID)

	err := m.photos.UpdatePhotoFootprint(ctx, p.ID, n)
	if err != nil && !errors.Is(err, storage.ErrPhotoNotFound) {
		m.log.Warn("failed to update footprint", slog.String("op", op), slog.Int64("id", p.ID), sl.Err(err))
	}
}

func (m *Maintainer) publish(ctx context.Context, typ, ownerID, size string) {
	if m.events == nil {
		return
	}

	m.events.Publish(ctx, models.Event{Type: typ, OwnerID: ownerID, Size: size})
}
