package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventPhotoUploaded = "photo.uploaded"
	EventPhotoUpdated  = "photo.updated"
	EventPhotoDeleted  = "photo.deleted"
	EventSizeAdded     = "size.added"
	EventSizeDeleted   = "size.deleted"
)

// Event is published to Kafka after a mutation has been committed.
type Event struct {
	Type       string     `json:"type"`
	OwnerID    string     `json:"owner_id"`
	PhotoID    int64      `json:"photo_id,omitempty"`
	ImageID    *uuid.UUID `json:"image_id,omitempty"`
	Size       string     `json:"size,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
