package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"photofolio/internal/config"
	"photofolio/internal/models"
	"photofolio/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS photos (
    id                BIGSERIAL PRIMARY KEY,
    image_id          UUID        NOT NULL UNIQUE,
    owner_id          TEXT        NOT NULL,
    original_filename TEXT        NOT NULL,
    title             TEXT        NOT NULL,
    description       TEXT,
    tags              TEXT[]      NOT NULL DEFAULT '{}',
    asset_footprint   BIGINT      NOT NULL DEFAULT 0,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_photos_owner ON photos (owner_id);

CREATE TABLE IF NOT EXISTS gallery_photos (
    photo_id   BIGINT  NOT NULL REFERENCES photos (id) ON DELETE CASCADE,
    gallery_id BIGINT  NOT NULL,
    sort_order INTEGER NOT NULL,
    PRIMARY KEY (photo_id, gallery_id)
);
CREATE INDEX IF NOT EXISTS idx_gallery_photos_gallery ON gallery_photos (gallery_id, sort_order);

CREATE TABLE IF NOT EXISTS settings (
    id         BIGSERIAL PRIMARY KEY,
    owner_id   TEXT        NOT NULL,
    key        TEXT        NOT NULL,
    value      TEXT        NOT NULL,
    type       TEXT        NOT NULL,
    category   TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (owner_id, category, key)
);`

const photoColumns = `id, image_id, owner_id, original_filename, title, description, tags, asset_footprint, created_at, updated_at`

const uniqueViolation = "23505"

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhoto(row rowScanner) (*models.Photo, error) {
	var (
		p           models.Photo
		description sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.ImageID,
		&p.OwnerID,
		&p.OriginalFilename,
		&p.Title,
		&description,
		pq.Array(&p.Tags),
		&p.AssetFootprint,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	return &p, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// SavePhoto inserts the photo and, when galleryID is set, its membership row
// at the end of that gallery, in one transaction.
func (s *Storage) SavePhoto(ctx context.Context, photo models.Photo, galleryID *int64) (*models.Photo, error) {
	const op = "storage.postgres.SavePhoto"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
        INSERT INTO photos (image_id, owner_id, original_filename, title, description, tags, asset_footprint)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + photoColumns

	saved, err := scanPhoto(tx.QueryRowContext(ctx, query,
		photo.ImageID,
		photo.OwnerID,
		photo.OriginalFilename,
		photo.Title,
		photo.Description,
		pq.Array(nonNilTags(photo.Tags)),
		photo.AssetFootprint,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if galleryID != nil {
		if err = appendToGallery(ctx, tx, *galleryID, []int64{saved.ID}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Storage) GetPhoto(ctx context.Context, ownerID string, id int64) (*models.Photo, error) {
	const op = "storage.postgres.GetPhoto"

	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1 AND owner_id = $2`

	photo, err := scanPhoto(s.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

func (s *Storage) GetPhotoByImageID(ctx context.Context, imageID uuid.UUID) (*models.Photo, error) {
	const op = "storage.postgres.GetPhotoByImageID"

	query := `SELECT ` + photoColumns + ` FROM photos WHERE image_id = $1`

	photo, err := scanPhoto(s.DB.QueryRowContext(ctx, query, imageID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: image %s: %w", op, imageID, storage.ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

func (s *Storage) queryPhotos(ctx context.Context, query string, args ...any) ([]models.Photo, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}

	return photos, rows.Err()
}

func (s *Storage) GetPhotosByIDs(ctx context.Context, ownerID string, ids []int64) ([]models.Photo, error) {
	const op = "storage.postgres.GetPhotosByIDs"

	query := `SELECT ` + photoColumns + ` FROM photos WHERE owner_id = $1 AND id = ANY($2) ORDER BY id`

	photos, err := s.queryPhotos(ctx, query, ownerID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

func (s *Storage) ListPhotos(ctx context.Context, ownerID string) ([]models.Photo, error) {
	const op = "storage.postgres.ListPhotos"

	query := `SELECT ` + photoColumns + ` FROM photos WHERE owner_id = $1 ORDER BY id`

	photos, err := s.queryPhotos(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

func (s *Storage) UpdatePhotoMetadata(ctx context.Context, ownerID string, id int64, title string, description *string, tags []string) (*models.Photo, error) {
	const op = "storage.postgres.UpdatePhotoMetadata"

	query := `
        UPDATE photos
        SET title = $1, description = $2, tags = $3, updated_at = NOW()
        WHERE id = $4 AND owner_id = $5
        RETURNING ` + photoColumns

	photo, err := scanPhoto(s.DB.QueryRowContext(ctx, query, title, description, pq.Array(nonNilTags(tags)), id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

func (s *Storage) UpdatePhotoFootprint(ctx context.Context, id int64, footprint int64) error {
	const op = "storage.postgres.UpdatePhotoFootprint"

	query := `UPDATE photos SET asset_footprint = $1, updated_at = NOW() WHERE id = $2`

	result, err := s.DB.ExecContext(ctx, query, footprint, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	return nil
}

// DeletePhoto removes the photo row; gallery membership rows cascade.
func (s *Storage) DeletePhoto(ctx context.Context, ownerID string, id int64) error {
	const op = "storage.postgres.DeletePhoto"

	query := `
        DELETE FROM photos
        WHERE id = $1 AND owner_id = $2`

	result, err := s.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	return nil
}

func (s *Storage) GalleryPhotoIDs(ctx context.Context, galleryID int64) ([]int64, error) {
	const op = "storage.postgres.GalleryPhotoIDs"

	rows, err := s.DB.QueryContext(ctx, `SELECT photo_id FROM gallery_photos WHERE gallery_id = $1 ORDER BY sort_order`, galleryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// AppendToGallery adds photoIDs to the gallery in order, continuing from the
// current highest sort order.
func (s *Storage) AppendToGallery(ctx context.Context, galleryID int64, photoIDs []int64) error {
	const op = "storage.postgres.AppendToGallery"

	if len(photoIDs) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err = appendToGallery(ctx, tx, galleryID, photoIDs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func appendToGallery(ctx context.Context, tx *sql.Tx, galleryID int64, photoIDs []int64) error {
	// Serializes concurrent appends to the same gallery until commit.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, galleryID); err != nil {
		return err
	}

	var maxOrder int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order), -1) FROM gallery_photos WHERE gallery_id = $1`, galleryID,
	).Scan(&maxOrder)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO gallery_photos (photo_id, gallery_id, sort_order)
        VALUES ($1, $2, $3)
        ON CONFLICT (photo_id, gallery_id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range photoIDs {
		if _, err = stmt.ExecContext(ctx, id, galleryID, maxOrder+1+i); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) ListSettings(ctx context.Context, ownerID, category string) ([]models.Setting, error) {
	const op = "storage.postgres.ListSettings"

	query := `
        SELECT id, owner_id, key, value, type, category, created_at, updated_at
        FROM settings
        WHERE owner_id = $1 AND category = $2
        ORDER BY key`

	rows, err := s.DB.QueryContext(ctx, query, ownerID, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var st models.Setting
		err = rows.Scan(&st.ID, &st.OwnerID, &st.Key, &st.Value, &st.Type, &st.Category, &st.CreatedAt, &st.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		settings = append(settings, st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (s *Storage) SaveSetting(ctx context.Context, setting models.Setting) (*models.Setting, error) {
	const op = "storage.postgres.SaveSetting"

	query := `
        INSERT INTO settings (owner_id, key, value, type, category)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, owner_id, key, value, type, category, created_at, updated_at`

	var st models.Setting
	err := s.DB.QueryRowContext(ctx, query, setting.OwnerID, setting.Key, setting.Value, setting.Type, setting.Category).Scan(
		&st.ID, &st.OwnerID, &st.Key, &st.Value, &st.Type, &st.Category, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s: %s: %w", op, setting.Key, storage.ErrSettingExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &st, nil
}

func (s *Storage) DeleteSetting(ctx context.Context, ownerID, category, key string) error {
	const op = "storage.postgres.DeleteSetting"

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM settings WHERE owner_id = $1 AND category = $2 AND key = $3`,
		ownerID, category, key,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %s: %w", op, key, storage.ErrSettingNotFound)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
