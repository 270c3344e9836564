package deletePhoto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/http-server/handlers/photo/deletePhoto"
	"photofolio/internal/http-server/handlers/photo/deletePhoto/mocks"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/apperr"
)

func TestDeletePhoto(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	tests := []struct {
		name           string
		photoID        string
		callDelete     bool
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			photoID:        "42",
			callDelete:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid ID",
			photoID:        "invalid-id",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid photo ID"}`,
		},
		{
			name:           "Not Found",
			photoID:        "42",
			callDelete:     true,
			mockErr:        apperr.NotFound("photo 42 not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"photo 42 not found"}`,
		},
		{
			name:           "Internal Error",
			photoID:        "42",
			callDelete:     true,
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete photo"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleterMock := mocks.NewPhotoDeleter(t)

			if tt.callDelete {
				deleterMock.On("Delete", mock.Anything, "alice", int64(42)).Return(tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/photos/%s", tt.photoID), nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.photoID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(owner.WithID(ctx, "alice"))

			rr := httptest.NewRecorder()

			handler := deletePhoto.New(log, deleterMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
