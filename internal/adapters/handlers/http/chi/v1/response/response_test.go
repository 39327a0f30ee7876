package response_test

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{"config missing", domain.ErrConfigMissing, http.StatusInternalServerError, "VdoCipher API secret not configured", ""},
		{"validation", domain.Validationf("videoId is required"), http.StatusBadRequest, "validation error: videoId is required", ""},
		{"provider json", &domain.ProviderError{StatusCode: 403, Body: []byte(`{"message":"Invalid API secret"}`)}, http.StatusForbidden, "VdoCipher API error", `{"message":"Invalid API secret"}`},
		{"provider text", &domain.ProviderError{StatusCode: 404, Body: []byte("not found")}, http.StatusNotFound, "VdoCipher API error", `"not found"`},
		{"upload below 400", &domain.UploadError{StatusCode: 302}, http.StatusBadGateway, "Upload failed", ""},
		{"network", &domain.NetworkError{Op: "GET /videos", Err: errors.New("refused")}, http.StatusBadGateway, "Failed to reach VdoCipher", `"GET /videos: refused"`},
		{"wrapped provider", fmt.Errorf("ctx: %w", &domain.ProviderError{StatusCode: 500}), http.StatusInternalServerError, "VdoCipher API error", ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			response.Error(w, discardLogger, tt.err)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			var gotError string
			require.NoError(t, json.Unmarshal(body["error"], &gotError))
			assert.Equal(t, tt.wantError, gotError)
			if tt.wantDetails == "" {
				assert.NotContains(t, body, "details")
			} else {
				assert.JSONEq(t, tt.wantDetails, string(body["details"]))
			}
		})
	}
}
