package savePhoto_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/http-server/handlers/photo/savePhoto"
	"photofolio/internal/http-server/handlers/photo/savePhoto/mocks"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/models"
	"photofolio/internal/photos"
)

func TestSavePhoto(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	imageID := uuid.New()
	saved := &models.Photo{ID: 11, ImageID: imageID, OwnerID: "alice", Title: "Sunset"}

	tests := []struct {
		name           string
		withFile       bool
		fields         map[string]string
		callUpload     bool
		mockErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			withFile:       true,
			fields:         map[string]string{"title": "Sunset", "description": "warm", "tags": "sky,sea", "gallery_id": "3"},
			callUpload:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing File",
			fields:         map[string]string{"title": "Sunset"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "failed to get file from request",
		},
		{
			name:           "Invalid Gallery",
			withFile:       true,
			fields:         map[string]string{"title": "Sunset", "gallery_id": "abc"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid gallery_id",
		},
		{
			name:           "Validation Error",
			withFile:       true,
			fields:         map[string]string{"title": ""},
			callUpload:     true,
			mockErr:        apperr.Validation("title is required"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "title is required",
		},
		{
			name:           "Invalid Image",
			withFile:       true,
			fields:         map[string]string{"title": "Sunset"},
			callUpload:     true,
			mockErr:        apperr.InvalidImage(errors.New("unexpected EOF")),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "uploaded file is not a valid image",
		},
		{
			name:           "Persistence Error",
			withFile:       true,
			fields:         map[string]string{"title": "Sunset"},
			callUpload:     true,
			mockErr:        apperr.Persistence("failed to save photo", errors.New("connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to upload photo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploaderMock := mocks.NewPhotoUploader(t)

			if tt.callUpload {
				var photo *models.Photo
				if tt.mockErr == nil {
					photo = saved
				}
				uploaderMock.On("Upload", mock.Anything, "alice", mock.MatchedBy(func(in photos.UploadInput) bool {
					return string(in.File) == "image bytes" && in.Filename == "sunset.jpg" && in.Title == tt.fields["title"]
				})).Return(photo, tt.mockErr).Once()
			}

			body := new(bytes.Buffer)
			writer := multipart.NewWriter(body)
			if tt.withFile {
				part, err := writer.CreateFormFile("image", "sunset.jpg")
				require.NoError(t, err)
				_, err = part.Write([]byte("image bytes"))
				require.NoError(t, err)
			}
			for k, v := range tt.fields {
				require.NoError(t, writer.WriteField(k, v))
			}
			require.NoError(t, writer.Close())

			req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
			req.Header.Set("Content-Type", writer.FormDataContentType())
			req = req.WithContext(owner.WithID(req.Context(), "alice"))

			rr := httptest.NewRecorder()

			handler := savePhoto.New(log, uploaderMock, 1<<20)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var resp savePhoto.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tt.expectedError, resp.Error)

			if tt.expectedStatus == http.StatusOK {
				require.Equal(t, "OK", resp.Status)
				require.Equal(t, imageID, resp.Photo.ImageID)
			} else {
				require.Equal(t, "Error", resp.Status)
				require.Nil(t, resp.Photo)
			}
		})
	}
}

func TestSavePhotoParsesOptionalFields(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))
	uploaderMock := mocks.NewPhotoUploader(t)

	var got photos.UploadInput
	uploaderMock.On("Upload", mock.Anything, "alice", mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(2).(photos.UploadInput) }).
		Return(&models.Photo{ID: 1}, nil).Once()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "a.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, writer.WriteField("title", "A"))
	require.NoError(t, writer.WriteField("description", "about"))
	require.NoError(t, writer.WriteField("tags", "one, two, ,one"))
	require.NoError(t, writer.WriteField("gallery_id", "9"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(owner.WithID(req.Context(), "alice"))
	rr := httptest.NewRecorder()

	savePhoto.New(log, uploaderMock, 1<<20).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "about", *got.Description)
	require.Equal(t, []string{"one", "two"}, got.Tags)
	require.Equal(t, int64(9), *got.GalleryID)
}
