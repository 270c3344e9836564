package listSizes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/http-server/handlers/size/listSizes"
	"photofolio/internal/http-server/handlers/size/listSizes/mocks"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/sizes"
)

func TestListSizes(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	list := append(sizes.BuiltIns(), sizes.Spec{Name: "banner", Width: 1000, Height: 300, Quality: 80, IsCustom: true})

	tests := []struct {
		name           string
		mockList       []sizes.Spec
		mockErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			mockList:       list,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Persistence Error",
			mockErr:        apperr.Persistence("failed to load image sizes", errors.New("db down")),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to load image sizes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listerMock := mocks.NewSizeLister(t)
			listerMock.On("Sizes", mock.Anything, "alice").Return(tt.mockList, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/sizes", nil)
			req = req.WithContext(owner.WithID(req.Context(), "alice"))

			rr := httptest.NewRecorder()

			listSizes.New(log, listerMock).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var resp listSizes.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tt.expectedError, resp.Error)
			require.Equal(t, tt.mockList, resp.Sizes)
		})
	}
}
