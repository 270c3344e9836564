package models

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID               int64     `json:"id" db:"id"`
	ImageID          uuid.UUID `json:"image_id" db:"image_id"`
	OwnerID          string    `json:"owner_id" db:"owner_id"`
	OriginalFilename string    `json:"original_filename" db:"original_filename"`
	Title            string    `json:"title" db:"title"`
	Description      *string   `json:"description,omitempty" db:"description"`
	Tags             []string  `json:"tags" db:"tags"`
	AssetFootprint   int64     `json:"asset_footprint" db:"asset_footprint"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// GalleryPhoto is a gallery membership row. Rows are removed with the photo.
type GalleryPhoto struct {
	PhotoID   int64 `json:"photo_id" db:"photo_id"`
	GalleryID int64 `json:"gallery_id" db:"gallery_id"`
	SortOrder int   `json:"sort_order" db:"sort_order"`
}
