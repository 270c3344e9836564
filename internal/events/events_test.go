package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/events"
	"photofolio/internal/kafka/producer/mocks"
	"photofolio/internal/lib/logger/handlers/slogdiscard"
	"photofolio/internal/models"
)

func TestPublish(t *testing.T) {
	imageID := uuid.New()

	tests := []struct {
		name    string
		event   models.Event
		wantKey string
		sendErr error
	}{
		{
			name:    "keyed by image",
			event:   models.Event{Type: models.EventPhotoUploaded, OwnerID: "owner-1", PhotoID: 7, ImageID: &imageID},
			wantKey: imageID.String(),
		},
		{
			name:    "keyed by owner",
			event:   models.Event{Type: models.EventSizeAdded, OwnerID: "owner-1", Size: "banner"},
			wantKey: "owner-1",
		},
		{
			name:    "send failure is swallowed",
			event:   models.Event{Type: models.EventSizeDeleted, OwnerID: "owner-1", Size: "banner"},
			wantKey: "owner-1",
			sendErr: errors.New("broker down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			producerMock := mocks.NewProducerIface(t)

			var sent models.Event
			producerMock.On("SendMessage", mock.Anything, []byte(tt.wantKey), mock.Anything).
				Run(func(args mock.Arguments) {
					require.NoError(t, json.Unmarshal(args.Get(2).([]byte), &sent))
				}).
				Return(tt.sendErr).Once()

			p := events.NewPublisher(slogdiscard.NewDiscardLogger(), producerMock)
			p.Publish(context.Background(), tt.event)

			require.Equal(t, tt.event.Type, sent.Type)
			require.Equal(t, tt.event.OwnerID, sent.OwnerID)
			require.False(t, sent.OccurredAt.IsZero())
		})
	}
}

func TestPublishWithoutProducer(t *testing.T) {
	p := events.NewPublisher(slogdiscard.NewDiscardLogger(), nil)
	p.Publish(context.Background(), models.Event{Type: models.EventPhotoDeleted})

	var nilPublisher *events.Publisher
	nilPublisher.Publish(context.Background(), models.Event{Type: models.EventPhotoDeleted})
}
