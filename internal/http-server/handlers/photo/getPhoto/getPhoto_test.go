package getPhoto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/http-server/handlers/photo/getPhoto"
	"photofolio/internal/http-server/handlers/photo/getPhoto/mocks"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/photos"
)

func TestGetPhoto(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID := uuid.New()
	public := &photos.PublicPhoto{
		ImageID:    testUUID,
		Title:      "Sunset",
		Tags:       []string{"sky"},
		Renditions: map[string]string{"thumbnail": "/photos/" + testUUID.String() + "/thumbnail.webp"},
	}

	tests := []struct {
		name           string
		imageID        string
		callGet        bool
		mockErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			imageID:        testUUID.String(),
			callGet:        true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid UUID",
			imageID:        "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid image ID",
		},
		{
			name:           "Not Found",
			imageID:        testUUID.String(),
			callGet:        true,
			mockErr:        apperr.NotFound("photo not found"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "photo not found",
		},
		{
			name:           "Internal Error",
			imageID:        testUUID.String(),
			callGet:        true,
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to get photo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getterMock := mocks.NewPublicPhotoGetter(t)

			if tt.callGet {
				var res *photos.PublicPhoto
				if tt.mockErr == nil {
					res = public
				}
				getterMock.On("GetPublic", mock.Anything, testUUID).Return(res, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/public/photos/"+tt.imageID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("imageId", tt.imageID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := getPhoto.New(log, getterMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var resp getPhoto.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tt.expectedError, resp.Error)

			if tt.expectedStatus == http.StatusOK {
				require.Equal(t, public, resp.Photo)
			}
		})
	}
}
