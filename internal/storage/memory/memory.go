// Package memory is a process-local metadata store with the same behavior as
// the Postgres one. It backs the "memory" database driver and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"photofolio/internal/models"
	"photofolio/internal/storage"
)

type settingKey struct {
	owner, category, key string
}

type Storage struct {
	mu sync.RWMutex

	nextPhotoID   int64
	nextSettingID int64

	photos   map[int64]models.Photo
	gallery  map[int64][]models.GalleryPhoto
	settings map[settingKey]models.Setting
}

func New() *Storage {
	return &Storage{
		photos:   make(map[int64]models.Photo),
		gallery:  make(map[int64][]models.GalleryPhoto),
		settings: make(map[settingKey]models.Setting),
	}
}

func clonePhoto(p models.Photo) models.Photo {
	p.Tags = append([]string{}, p.Tags...)
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}

func (s *Storage) SavePhoto(_ context.Context, photo models.Photo, galleryID *int64) (*models.Photo, error) {
	const op = "storage.memory.SavePhoto"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.photos {
		if p.ImageID == photo.ImageID {
			return nil, fmt.Errorf("%s: duplicate image id %s", op, photo.ImageID)
		}
	}

	s.nextPhotoID++
	now := time.Now().UTC()

	photo = clonePhoto(photo)
	photo.ID = s.nextPhotoID
	photo.CreatedAt = now
	photo.UpdatedAt = now
	s.photos[photo.ID] = photo

	if galleryID != nil {
		s.appendLocked(*galleryID, []int64{photo.ID})
	}

	out := clonePhoto(photo)
	return &out, nil
}

func (s *Storage) GetPhoto(_ context.Context, ownerID string, id int64) (*models.Photo, error) {
	const op = "storage.memory.GetPhoto"

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.photos[id]
	if !ok || p.OwnerID != ownerID {
		return nil, fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	out := clonePhoto(p)
	return &out, nil
}

func (s *Storage) GetPhotoByImageID(_ context.Context, imageID uuid.UUID) (*models.Photo, error) {
	const op = "storage.memory.GetPhotoByImageID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.photos {
		if p.ImageID == imageID {
			out := clonePhoto(p)
			return &out, nil
		}
	}

	return nil, fmt.Errorf("%s: image %s: %w", op, imageID, storage.ErrPhotoNotFound)
}

func (s *Storage) sortedLocked(keep func(models.Photo) bool) []models.Photo {
	var out []models.Photo
	for _, p := range s.photos {
		if keep(p) {
			out = append(out, clonePhoto(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Storage) GetPhotosByIDs(_ context.Context, ownerID string, ids []int64) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked(func(p models.Photo) bool {
		return p.OwnerID == ownerID && slices.Contains(ids, p.ID)
	}), nil
}

func (s *Storage) ListPhotos(_ context.Context, ownerID string) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked(func(p models.Photo) bool { return p.OwnerID == ownerID }), nil
}

func (s *Storage) UpdatePhotoMetadata(_ context.Context, ownerID string, id int64, title string, description *string, tags []string) (*models.Photo, error) {
	const op = "storage.memory.UpdatePhotoMetadata"

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.photos[id]
	if !ok || p.OwnerID != ownerID {
		return nil, fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	p.Title = title
	p.Description = description
	p.Tags = tags
	p.UpdatedAt = time.Now().UTC()
	p = clonePhoto(p)
	s.photos[id] = p

	out := clonePhoto(p)
	return &out, nil
}

func (s *Storage) UpdatePhotoFootprint(_ context.Context, id int64, footprint int64) error {
	const op = "storage.memory.UpdatePhotoFootprint"

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.photos[id]
	if !ok {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	p.AssetFootprint = footprint
	p.UpdatedAt = time.Now().UTC()
	s.photos[id] = p

	return nil
}

func (s *Storage) DeletePhoto(_ context.Context, ownerID string, id int64) error {
	const op = "storage.memory.DeletePhoto"

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.photos[id]
	if !ok || p.OwnerID != ownerID {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	delete(s.photos, id)

	for gid, rows := range s.gallery {
		s.gallery[gid] = slices.DeleteFunc(rows, func(r models.GalleryPhoto) bool { return r.PhotoID == id })
	}

	return nil
}

func (s *Storage) GalleryPhotoIDs(_ context.Context, galleryID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := slices.Clone(s.gallery[galleryID])
	sort.Slice(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PhotoID)
	}

	return ids, nil
}

// GalleryRows returns the membership rows of a gallery ordered by sort order.
func (s *Storage) GalleryRows(galleryID int64) []models.GalleryPhoto {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := slices.Clone(s.gallery[galleryID])
	sort.Slice(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })

	return rows
}

func (s *Storage) AppendToGallery(_ context.Context, galleryID int64, photoIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendLocked(galleryID, photoIDs)

	return nil
}

func (s *Storage) appendLocked(galleryID int64, photoIDs []int64) {
	rows := s.gallery[galleryID]

	maxOrder := -1
	for _, r := range rows {
		maxOrder = max(maxOrder, r.SortOrder)
	}

	next := maxOrder + 1
	for _, id := range photoIDs {
		if slices.ContainsFunc(rows, func(r models.GalleryPhoto) bool { return r.PhotoID == id }) {
			continue
		}
		rows = append(rows, models.GalleryPhoto{PhotoID: id, GalleryID: galleryID, SortOrder: next})
		next++
	}

	s.gallery[galleryID] = rows
}

func (s *Storage) ListSettings(_ context.Context, ownerID, category string) ([]models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Setting
	for k, st := range s.settings {
		if k.owner == ownerID && k.category == category {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func (s *Storage) SaveSetting(_ context.Context, setting models.Setting) (*models.Setting, error) {
	const op = "storage.memory.SaveSetting"

	s.mu.Lock()
	defer s.mu.Unlock()

	k := settingKey{owner: setting.OwnerID, category: setting.Category, key: setting.Key}
	if _, ok := s.settings[k]; ok {
		return nil, fmt.Errorf("%s: %s: %w", op, setting.Key, storage.ErrSettingExists)
	}

	s.nextSettingID++
	now := time.Now().UTC()
	setting.ID = s.nextSettingID
	setting.CreatedAt = now
	setting.UpdatedAt = now
	s.settings[k] = setting

	return &setting, nil
}

func (s *Storage) DeleteSetting(_ context.Context, ownerID, category, key string) error {
	const op = "storage.memory.DeleteSetting"

	s.mu.Lock()
	defer s.mu.Unlock()

	k := settingKey{owner: ownerID, category: category, key: key}
	if _, ok := s.settings[k]; !ok {
		return fmt.Errorf("%s: %s: %w", op, key, storage.ErrSettingNotFound)
	}
	delete(s.settings, k)

	return nil
}

func (s *Storage) Close() error {
	return nil
}
