package deleteSize_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/customsizes"
	"photofolio/internal/http-server/handlers/size/deleteSize"
	"photofolio/internal/http-server/handlers/size/deleteSize/mocks"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/apperr"
)

func TestDeleteSize(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	tests := []struct {
		name           string
		sizeName       string
		query          string
		callDelete     bool
		deleteFiles    bool
		mockRes        *customsizes.DeleteSizeResult
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Delete With Files",
			sizeName:       "banner",
			query:          "?delete_files=true",
			callDelete:     true,
			deleteFiles:    true,
			mockRes:        &customsizes.DeleteSizeResult{Deleted: 3, Errors: []string{}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","deleted":3,"failed":0,"errors":[]}`,
		},
		{
			name:           "Keep Files By Default",
			sizeName:       "banner",
			callDelete:     true,
			mockRes:        &customsizes.DeleteSizeResult{Errors: []string{}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","deleted":0,"failed":0,"errors":[]}`,
		},
		{
			name:           "Invalid Flag",
			sizeName:       "banner",
			query:          "?delete_files=maybe",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid delete_files"}`,
		},
		{
			name:           "Built-in Size",
			sizeName:       "thumbnail",
			callDelete:     true,
			mockErr:        apperr.Validation("built-in size %q cannot be deleted", "thumbnail"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"built-in size \"thumbnail\" cannot be deleted"}`,
		},
		{
			name:           "Unknown Size",
			sizeName:       "nope",
			callDelete:     true,
			mockErr:        apperr.NotFound("size %q not found", "nope"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"size \"nope\" not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleterMock := mocks.NewSizeDeleter(t)

			if tt.callDelete {
				deleterMock.On("DeleteSize", mock.Anything, "alice", tt.sizeName, tt.deleteFiles).Return(tt.mockRes, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/sizes/"+tt.sizeName+tt.query, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.sizeName)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(owner.WithID(ctx, "alice"))

			rr := httptest.NewRecorder()

			deleteSize.New(log, deleterMock).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
