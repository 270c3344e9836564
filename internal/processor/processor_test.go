package processor_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"photofolio/internal/footprint"
	"photofolio/internal/lib/logger/handlers/slogdiscard"
	"photofolio/internal/models"
	"photofolio/internal/processor"
	"photofolio/internal/renditions"
	"photofolio/internal/storage/memory"
)

type env struct {
	proc  *processor.FootprintProcessor
	repo  *memory.Storage
	store *renditions.Store
}

func newEnv(t *testing.T) *env {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()

	store, err := renditions.New(log, renditions.Config{
		Root:        filepath.Join(t.TempDir(), "photos"),
		URLPrefix:   "/photos",
		Ext:         "jpg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)

	repo := memory.New()
	acct := footprint.New(log, store, nil, 0)

	return &env{
		proc:  processor.NewFootprintProcessor(log, repo, store, acct),
		repo:  repo,
		store: store,
	}
}

func message(t *testing.T, ev models.Event) []byte {
	t.Helper()

	b, err := json.Marshal(ev)
	require.NoError(t, err)

	return b
}

func TestCorrectsDriftedFootprint(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	imageID := uuid.New()
	require.NoError(t, e.store.WriteRendition(ctx, imageID, "thumbnail", make([]byte, 300)))
	require.NoError(t, e.store.WriteRendition(ctx, imageID, "small", make([]byte, 700)))

	saved, err := e.repo.SavePhoto(ctx, models.Photo{ImageID: imageID, OwnerID: "alice", Title: "t", AssetFootprint: 10}, nil)
	require.NoError(t, err)

	err = e.proc.ProcessMessage(ctx, message(t, models.Event{
		Type: models.EventPhotoUploaded, OwnerID: "alice", PhotoID: saved.ID, ImageID: &imageID,
	}))
	require.NoError(t, err)

	got, err := e.repo.GetPhoto(ctx, "alice", saved.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000), got.AssetFootprint)
}

func TestSweepsDeletedPhoto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	imageID := uuid.New()
	require.NoError(t, e.store.WriteRendition(ctx, imageID, "thumbnail", []byte("left over")))

	err := e.proc.ProcessMessage(ctx, message(t, models.Event{
		Type: models.EventPhotoDeleted, OwnerID: "alice", PhotoID: 4, ImageID: &imageID,
	}))
	require.NoError(t, err)

	_, err = os.Stat(e.store.Dir(imageID))
	require.True(t, os.IsNotExist(err))
}

func TestIgnoresGonePhoto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	imageID := uuid.New()
	require.NoError(t, e.store.WriteRendition(ctx, imageID, "thumbnail", []byte("still here")))

	err := e.proc.ProcessMessage(ctx, message(t, models.Event{
		Type: models.EventPhotoUpdated, OwnerID: "alice", ImageID: &imageID,
	}))
	require.NoError(t, err)

	_, err = os.Stat(e.store.Path(imageID, "thumbnail"))
	require.NoError(t, err)
}

func TestSizeEventsAndBadPayloads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.proc.ProcessMessage(ctx, message(t, models.Event{
		Type: models.EventSizeAdded, OwnerID: "alice", Size: "banner",
	})))

	require.Error(t, e.proc.ProcessMessage(ctx, []byte("{not json")))
}
