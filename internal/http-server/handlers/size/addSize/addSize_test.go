package addSize_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/customsizes"
	"photofolio/internal/http-server/handlers/size/addSize"
	"photofolio/internal/http-server/handlers/size/addSize/mocks"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/sizes"
)

func TestAddSize(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	banner := customsizes.AddSizeInput{Name: "banner", Width: 1000, Height: 300, Quality: 80, ProcessExisting: true}

	tests := []struct {
		name           string
		body           string
		callAdd        bool
		mockRes        *customsizes.AddSizeResult
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			body:    `{"name":"banner","width":1000,"height":300,"quality":80,"process_existing":true}`,
			callAdd: true,
			mockRes: &customsizes.AddSizeResult{
				Size:      sizes.Spec{Name: "banner", Width: 1000, Height: 300, Quality: 80, IsCustom: true},
				Processed: 2,
				Failed:    1,
				Errors:    []string{"photo 3: no existing rendition to derive from"},
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","size":{"name":"banner","width":1000,"height":300,"quality":80,"is_custom":true},` +
				`"processed":2,"failed":1,"errors":["photo 3: no existing rendition to derive from"]}`,
		},
		{
			name:           "Missing Quality",
			body:           `{"name":"banner","width":1000,"height":300}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Quality is a required field"}`,
		},
		{
			name:           "Built-in Name",
			body:           `{"name":"banner","width":1000,"height":300,"quality":80,"process_existing":true}`,
			callAdd:        true,
			mockErr:        apperr.Conflict("size %q is a built-in size", "banner"),
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"size \"banner\" is a built-in size"}`,
		},
		{
			name:           "Out Of Range",
			body:           `{"name":"banner","width":1000,"height":300,"quality":80,"process_existing":true}`,
			callAdd:        true,
			mockErr:        apperr.Validation("quality must be between 1 and 100"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"quality must be between 1 and 100"}`,
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adderMock := mocks.NewSizeAdder(t)

			if tt.callAdd {
				adderMock.On("AddSize", mock.Anything, "alice", banner).Return(tt.mockRes, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/sizes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(owner.WithID(req.Context(), "alice"))

			rr := httptest.NewRecorder()

			addSize.New(log, adderMock).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
