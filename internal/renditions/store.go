// Package renditions owns the on-disk rendition tree. Every photo has one
// directory named after its image ID holding one file per size:
//
//	{root}/{imageID}/{size}.{ext}
//
// The same layout is served under the public URL prefix, so size names and
// the extension are part of the external contract.
package renditions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
)

// Mirror receives a best-effort copy of every rendition change.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Mirror
type Mirror interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
	RemovePrefix(ctx context.Context, prefix string) error
}

type Config struct {
	Root        string
	URLPrefix   string
	Ext         string
	ContentType string
}

type Store struct {
	cfg    Config
	log    *slog.Logger
	mirror Mirror
}

type Option func(*Store)

func WithMirror(m Mirror) Option {
	return func(s *Store) {
		s.mirror = m
	}
}

func New(log *slog.Logger, cfg Config, opts ...Option) (*Store, error) {
	const op = "renditions.New"

	if cfg.Root == "" || cfg.Ext == "" {
		return nil, fmt.Errorf("%s: root and ext are required", op)
	}

	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Store{
		cfg: cfg,
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Store) Root() string {
	return s.cfg.Root
}

func (s *Store) Ext() string {
	return s.cfg.Ext
}

func (s *Store) Dir(imageID uuid.UUID) string {
	return filepath.Join(s.cfg.Root, imageID.String())
}

func (s *Store) Path(imageID uuid.UUID, size string) string {
	return filepath.Join(s.Dir(imageID), s.fileName(size))
}

// URL is the public path of a rendition, e.g. /photos/{imageID}/thumbnail.webp.
func (s *Store) URL(imageID uuid.UUID, size string) string {
	return path.Join("/", s.cfg.URLPrefix, imageID.String(), s.fileName(size))
}

func (s *Store) fileName(size string) string {
	return size + "." + s.cfg.Ext
}

func (s *Store) key(imageID uuid.UUID, size string) string {
	return imageID.String() + "/" + s.fileName(size)
}

func checkSizeName(size string) error {
	if size == "" || size == "." || size == ".." || strings.ContainsAny(size, `/\`) {
		return fmt.Errorf("invalid size name %q", size)
	}
	return nil
}

// WriteRendition creates the photo directory on first use and replaces the
// rendition file atomically.
func (s *Store) WriteRendition(ctx context.Context, imageID uuid.UUID, size string, data []byte) error {
	const op = "renditions.Store.WriteRendition"

	if err := checkSizeName(size); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := s.Dir(imageID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, "."+size+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = os.Rename(tmpName, s.Path(imageID, size)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.mirror != nil {
		if err = s.mirror.Put(ctx, s.key(imageID, size), data, s.cfg.ContentType); err != nil {
			s.log.Warn("failed to mirror rendition",
				slog.String("op", op),
				slog.String("image_id", imageID.String()),
				slog.String("size", size),
				sl.Err(err),
			)
		}
	}

	return nil
}

// ReadSourceForRegeneration returns the first rendition present in order
// together with its size name. No original is retained, so a new size is
// always derived from the largest rendition that exists.
func (s *Store) ReadSourceForRegeneration(_ context.Context, imageID uuid.UUID, order []string) ([]byte, string, error) {
	const op = "renditions.Store.ReadSourceForRegeneration"

	for _, size := range order {
		if checkSizeName(size) != nil {
			continue
		}

		data, err := os.ReadFile(s.Path(imageID, size))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}

		return data, size, nil
	}

	return nil, "", apperr.NoSource(imageID.String())
}

// DeleteRendition removes one rendition. A missing file counts as deleted.
func (s *Store) DeleteRendition(ctx context.Context, imageID uuid.UUID, size string) error {
	const op = "renditions.Store.DeleteRendition"

	if err := checkSizeName(size); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := os.Remove(s.Path(imageID, size))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.mirror != nil {
		if err = s.mirror.Remove(ctx, s.key(imageID, size)); err != nil {
			s.log.Warn("failed to remove mirrored rendition",
				slog.String("op", op),
				slog.String("image_id", imageID.String()),
				slog.String("size", size),
				sl.Err(err),
			)
		}
	}

	return nil
}

// DeleteAllRenditions removes the photo directory. It never fails: a
// filesystem inconsistency must not block removing the photo record, so
// errors are only logged.
func (s *Store) DeleteAllRenditions(ctx context.Context, imageID uuid.UUID) {
	const op = "renditions.Store.DeleteAllRenditions"

	if err := os.RemoveAll(s.Dir(imageID)); err != nil {
		s.log.Error("failed to remove rendition directory",
			slog.String("op", op),
			slog.String("image_id", imageID.String()),
			sl.Err(err),
		)
	}

	if s.mirror != nil {
		if err := s.mirror.RemovePrefix(ctx, imageID.String()+"/"); err != nil {
			s.log.Warn("failed to remove mirrored renditions",
				slog.String("op", op),
				slog.String("image_id", imageID.String()),
				sl.Err(err),
			)
		}
	}
}

// DirectorySize is the byte total of the photo directory, 0 when it is
// missing or unreadable.
func (s *Store) DirectorySize(imageID uuid.UUID) int64 {
	return dirSize(s.Dir(imageID))
}

// TotalSize is the byte total of the whole rendition tree.
func (s *Store) TotalSize() int64 {
	return dirSize(s.cfg.Root)
}

// isPartialWrite matches the temp files WriteRendition renames into place.
func isPartialWrite(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, ".tmp")
}

func dirSize(root string) int64 {
	var total int64

	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || isPartialWrite(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		total += info.Size()

		return nil
	})
	if err != nil {
		return 0
	}

	return total
}
