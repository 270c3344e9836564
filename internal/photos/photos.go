// Package photos keeps photo records and their rendition directories in
// agreement. It is the only code that mutates both.
package photos

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"photofolio/internal/footprint"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/keylock"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/lib/sanitize"
	"photofolio/internal/models"
	"photofolio/internal/sizes"
	"photofolio/internal/storage"
)

const (
	DefaultMaxUploadBytes int64 = 10 << 20
	DefaultWorkers              = 2
)

var DefaultAllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

type PhotoRepository interface {
	SavePhoto(ctx context.Context, photo models.Photo, galleryID *int64) (*models.Photo, error)
	GetPhoto(ctx context.Context, ownerID string, id int64) (*models.Photo, error)
	GetPhotoByImageID(ctx context.Context, imageID uuid.UUID) (*models.Photo, error)
	GetPhotosByIDs(ctx context.Context, ownerID string, ids []int64) ([]models.Photo, error)
	UpdatePhotoMetadata(ctx context.Context, ownerID string, id int64, title string, description *string, tags []string) (*models.Photo, error)
	DeletePhoto(ctx context.Context, ownerID string, id int64) error
	GalleryPhotoIDs(ctx context.Context, galleryID int64) ([]int64, error)
	AppendToGallery(ctx context.Context, galleryID int64, photoIDs []int64) error
}

type SizeLoader interface {
	Load(ctx context.Context, ownerID string) (sizes.Set, error)
}

type Transcoder interface {
	Decode(src []byte) (image.Image, error)
	Encode(img image.Image, spec sizes.Spec) ([]byte, error)
}

type RenditionStore interface {
	WriteRendition(ctx context.Context, imageID uuid.UUID, size string, data []byte) error
	DeleteAllRenditions(ctx context.Context, imageID uuid.UUID)
	URL(imageID uuid.UUID, size string) string
}

type Accountant interface {
	ComputeFootprint(imageID uuid.UUID) int64
	Invalidate(ctx context.Context)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev models.Event)
}

type Config struct {
	MaxUploadBytes int64
	AllowedTypes   []string
	Workers        int
}

type Manager struct {
	log    *slog.Logger
	repo   PhotoRepository
	sizes  SizeLoader
	tc     Transcoder
	store  RenditionStore
	acct   Accountant
	events EventPublisher
	cfg    Config
	locks  *keylock.Locker
}

type Option func(*Manager)

// WithLocker shares the per-image lock with other writers of the rendition tree.
func WithLocker(l *keylock.Locker) Option {
	return func(m *Manager) {
		m.locks = l
	}
}

func WithEvents(p EventPublisher) Option {
	return func(m *Manager) {
		m.events = p
	}
}

func New(
	log *slog.Logger,
	repo PhotoRepository,
	sizeLoader SizeLoader,
	tc Transcoder,
	store RenditionStore,
	acct Accountant,
	cfg Config,
	opts ...Option,
) *Manager {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if len(cfg.AllowedTypes) == 0 {
		cfg.AllowedTypes = DefaultAllowedTypes
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	m := &Manager{
		log:   log,
		repo:  repo,
		sizes: sizeLoader,
		tc:    tc,
		store: store,
		acct:  acct,
		cfg:   cfg,
		locks: &keylock.Locker{},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

type UploadInput struct {
	File        []byte
	Filename    string
	Title       string
	Description *string
	Tags        []string
	GalleryID   *int64
}

type UpdateInput struct {
	Title       string
	Description *string
	Tags        []string
}

// Upload stores every rendition of the owner's size set and then the record.
// The photo becomes visible only when both succeeded; on any failure after
// the first write the rendition directory is removed again.
func (m *Manager) Upload(ctx context.Context, ownerID string, in UploadInput) (*models.Photo, error) {
	const op = "photos.Manager.Upload"

	log := m.log.With(slog.String("op", op), slog.String("owner_id", ownerID))

	if err := m.checkFile(in.File); err != nil {
		return nil, err
	}

	title := sanitize.Text(in.Title)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	if in.GalleryID != nil && *in.GalleryID <= 0 {
		return nil, apperr.Validation("gallery id must be positive")
	}

	set, err := m.sizes.Load(ctx, ownerID)
	if err != nil {
		log.Error("failed to load sizes", sl.Err(err))
		return nil, apperr.Persistence("failed to load image sizes", fmt.Errorf("%s: %w", op, err))
	}

	img, err := m.tc.Decode(in.File)
	if err != nil {
		return nil, err
	}

	imageID := uuid.New()
	log = log.With(slog.String("image_id", imageID.String()))

	unlock := m.locks.Lock(imageID.String())
	defer unlock()

	for _, spec := range set.All() {
		data, err := m.tc.Encode(img, spec)
		if err != nil {
			m.compensate(ctx, log, imageID)
			log.Error("failed to encode rendition", slog.String("size", spec.Name), sl.Err(err))
			return nil, apperr.Persistence("failed to process image", fmt.Errorf("%s: %w", op, err))
		}

		if err = m.store.WriteRendition(ctx, imageID, spec.Name, data); err != nil {
			m.compensate(ctx, log, imageID)
			log.Error("failed to write rendition", slog.String("size", spec.Name), sl.Err(err))
			return nil, apperr.Persistence("failed to store image", fmt.Errorf("%s: %w", op, err))
		}
	}

	photo := models.Photo{
		ImageID:          imageID,
		OwnerID:          ownerID,
		OriginalFilename: in.Filename,
		Title:            title,
		Description:      sanitize.OptionalText(in.Description),
		Tags:             sanitize.Tags(in.Tags),
		AssetFootprint:   m.acct.ComputeFootprint(imageID),
	}

	saved, err := m.repo.SavePhoto(ctx, photo, in.GalleryID)
	if err != nil {
		m.compensate(ctx, log, imageID)
		log.Error("failed to save photo", sl.Err(err))
		return nil, apperr.Persistence("failed to save photo", fmt.Errorf("%s: %w", op, err))
	}

	m.acct.Invalidate(ctx)
	m.publish(ctx, models.EventPhotoUploaded, saved)

	log.Info("photo uploaded",
		slog.Int64("id", saved.ID),
		slog.Int("renditions", set.Len()),
		slog.Int64("footprint", saved.AssetFootprint),
	)

	return saved, nil
}

func (m *Manager) checkFile(file []byte) error {
	if len(file) == 0 {
		return apperr.Validation("file is empty")
	}
	if int64(len(file)) > m.cfg.MaxUploadBytes {
		return apperr.Validation("file exceeds the %s upload limit", footprint.FormatBytes(m.cfg.MaxUploadBytes))
	}

	mt := mimetype.Detect(file)
	if !slices.ContainsFunc(m.cfg.AllowedTypes, mt.Is) {
		return apperr.Validation("unsupported file type %s, allowed: %s", mt.String(), strings.Join(m.cfg.AllowedTypes, ", "))
	}

	return nil
}

func (m *Manager) compensate(ctx context.Context, log *slog.Logger, imageID uuid.UUID) {
	m.store.DeleteAllRenditions(context.WithoutCancel(ctx), imageID)
	log.Warn("removed renditions of failed upload")
}

func (m *Manager) Get(ctx context.Context, ownerID string, id int64) (*models.Photo, error) {
	const op = "photos.Manager.Get"

	p, err := m.repo.GetPhoto(ctx, ownerID, id)
	if err != nil {
		return nil, m.lookupErr(op, id, err)
	}

	return p, nil
}

// Update changes metadata only; no rendition is touched.
func (m *Manager) Update(ctx context.Context, ownerID string, id int64, in UpdateInput) (*models.Photo, error) {
	const op = "photos.Manager.Update"

	title := sanitize.Text(in.Title)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}

	p, err := m.repo.GetPhoto(ctx, ownerID, id)
	if err != nil {
		return nil, m.lookupErr(op, id, err)
	}

	unlock := m.locks.Lock(p.ImageID.String())
	defer unlock()

	updated, err := m.repo.UpdatePhotoMetadata(ctx, ownerID, id, title, sanitize.OptionalText(in.Description), sanitize.Tags(in.Tags))
	if err != nil {
		return nil, m.lookupErr(op, id, err)
	}

	m.publish(ctx, models.EventPhotoUpdated, updated)

	m.log.Info("photo updated", slog.String("op", op), slog.Int64("id", id))

	return updated, nil
}

// Delete removes the renditions and then the record. File errors are logged
// by the store and never block the record removal.
func (m *Manager) Delete(ctx context.Context, ownerID string, id int64) error {
	const op = "photos.Manager.Delete"

	p, err := m.repo.GetPhoto(ctx, ownerID, id)
	if err != nil {
		return m.lookupErr(op, id, err)
	}

	if err = m.deleteOne(ctx, *p); err != nil {
		return m.lookupErr(op, id, err)
	}

	m.acct.Invalidate(ctx)
	m.publish(ctx, models.EventPhotoDeleted, p)

	m.log.Info("photo deleted", slog.String("op", op), slog.Int64("id", id))

	return nil
}

func (m *Manager) deleteOne(ctx context.Context, p models.Photo) error {
	unlock := m.locks.Lock(p.ImageID.String())
	defer unlock()

	m.store.DeleteAllRenditions(ctx, p.ImageID)

	return m.repo.DeletePhoto(ctx, p.OwnerID, p.ID)
}

type BulkFailure struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

type BulkDeleteResult struct {
	Total   int           `json:"total"`
	Deleted []int64       `json:"deleted"`
	Failed  []BulkFailure `json:"failed"`
}

// BulkDelete requires every id to exist, then deletes each photo on its own.
// A failing item is reported and never stops the others. Total is the number
// of ids requested; repeated ids are deleted once.
func (m *Manager) BulkDelete(ctx context.Context, ownerID string, ids []int64) (*BulkDeleteResult, error) {
	const op = "photos.Manager.BulkDelete"

	photos, err := m.resolveAll(ctx, op, ownerID, ids)
	if err != nil {
		return nil, err
	}

	errs := make([]error, len(photos))

	g := new(errgroup.Group)
	g.SetLimit(m.cfg.Workers)

	for i, p := range photos {
		i, p := i, p
		g.Go(func() error {
			errs[i] = m.deleteOne(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	res := &BulkDeleteResult{
		Total:   len(ids),
		Deleted: make([]int64, 0, len(photos)),
		Failed:  make([]BulkFailure, 0),
	}
	for i, p := range photos {
		if errs[i] != nil {
			m.log.Error("bulk delete item failed", slog.String("op", op), slog.Int64("id", p.ID), sl.Err(errs[i]))
			res.Failed = append(res.Failed, BulkFailure{ID: p.ID, Error: itemMessage(errs[i], "failed to delete photo")})
			continue
		}
		res.Deleted = append(res.Deleted, p.ID)
		m.publish(ctx, models.EventPhotoDeleted, &photos[i])
	}

	if len(res.Deleted) > 0 {
		m.acct.Invalidate(ctx)
	}

	m.log.Info("bulk delete finished",
		slog.String("op", op),
		slog.Int("deleted", len(res.Deleted)),
		slog.Int("failed", len(res.Failed)),
	)

	return res, nil
}

type GalleryResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// BulkAddToGallery links photos to a gallery after the current last one.
// Photos already in the gallery are skipped.
func (m *Manager) BulkAddToGallery(ctx context.Context, ownerID string, ids []int64, galleryID int64) (*GalleryResult, error) {
	const op = "photos.Manager.BulkAddToGallery"

	if galleryID <= 0 {
		return nil, apperr.Validation("gallery id must be positive")
	}

	photos, err := m.resolveAll(ctx, op, ownerID, ids)
	if err != nil {
		return nil, err
	}

	existing, err := m.repo.GalleryPhotoIDs(ctx, galleryID)
	if err != nil {
		return nil, apperr.Persistence("failed to load gallery", fmt.Errorf("%s: %w", op, err))
	}

	toAdd := make([]int64, 0, len(photos))
	for _, p := range photos {
		if !slices.Contains(existing, p.ID) {
			toAdd = append(toAdd, p.ID)
		}
	}

	if len(toAdd) > 0 {
		if err = m.repo.AppendToGallery(ctx, galleryID, toAdd); err != nil {
			return nil, apperr.Persistence("failed to add photos to gallery", fmt.Errorf("%s: %w", op, err))
		}
	}

	res := &GalleryResult{Added: len(toAdd), Skipped: len(photos) - len(toAdd)}

	m.log.Info("photos added to gallery",
		slog.String("op", op),
		slog.Int64("gallery_id", galleryID),
		slog.Int("added", res.Added),
		slog.Int("skipped", res.Skipped),
	)

	return res, nil
}

// resolveAll loads the owner's photos for ids in request order. Duplicate ids
// collapse to one entry; any unknown id fails the whole call.
func (m *Manager) resolveAll(ctx context.Context, op, ownerID string, ids []int64) ([]models.Photo, error) {
	if len(ids) == 0 {
		return nil, apperr.Validation("ids must not be empty")
	}

	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	found, err := m.repo.GetPhotosByIDs(ctx, ownerID, unique)
	if err != nil {
		return nil, apperr.Persistence("failed to load photos", fmt.Errorf("%s: %w", op, err))
	}

	byID := make(map[int64]models.Photo, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	out := make([]models.Photo, 0, len(unique))
	var missing []string
	for _, id := range unique {
		p, ok := byID[id]
		if !ok {
			missing = append(missing, strconv.FormatInt(id, 10))
			continue
		}
		out = append(out, p)
	}

	if len(missing) > 0 {
		return nil, apperr.NotFound("photos not found: %s", strings.Join(missing, ", "))
	}

	return out, nil
}

type PublicPhoto struct {
	ImageID     uuid.UUID         `json:"image_id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Tags        []string          `json:"tags"`
	Renditions  map[string]string `json:"renditions"`
}

// GetPublic returns the read-only view of a photo with the URL of every
// rendition in its owner's size set.
func (m *Manager) GetPublic(ctx context.Context, imageID uuid.UUID) (*PublicPhoto, error) {
	const op = "photos.Manager.GetPublic"

	p, err := m.repo.GetPhotoByImageID(ctx, imageID)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			return nil, apperr.NotFound("photo not found")
		}
		return nil, apperr.Persistence("failed to load photo", fmt.Errorf("%s: %w", op, err))
	}

	set, err := m.sizes.Load(ctx, p.OwnerID)
	if err != nil {
		return nil, apperr.Persistence("failed to load image sizes", fmt.Errorf("%s: %w", op, err))
	}

	urls := make(map[string]string, set.Len())
	for _, spec := range set.All() {
		urls[spec.Name] = m.store.URL(p.ImageID, spec.Name)
	}

	return &PublicPhoto{
		ImageID:     p.ImageID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Renditions:  urls,
	}, nil
}

func (m *Manager) lookupErr(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrPhotoNotFound) {
		return apperr.NotFound("photo %d not found", id)
	}
	return apperr.Persistence("failed to access photo", fmt.Errorf("%s: %w", op, err))
}

func (m *Manager) publish(ctx context.Context, typ string, p *models.Photo) {
	if m.events == nil {
		return
	}

	imageID := p.ImageID
	m.events.Publish(ctx, models.Event{
		Type:    typ,
		OwnerID: p.OwnerID,
		PhotoID: p.ID,
		ImageID: &imageID,
	})
}

func itemMessage(err error, fallback string) string {
	if errors.Is(err, storage.ErrPhotoNotFound) {
		return "photo not found"
	}
	return apperr.Message(err, fallback)
}
