package video_test

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/video"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/service/proxy"
	"drm-play/internal/core/service/upload"
	"encoding/json"
	"errors"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListVideosV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockProxy.On("ListAssets", mock.Anything).Return([]domain.AssetSummary{
			{ID: "a", Title: "First", Status: domain.AssetStatusReady},
			{ID: "b", Title: "Second", Status: domain.AssetStatusQueued},
		}, nil)
		h := newRouter(mockProxy, upload.NewMockUploadService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var resp video.V1ListVideosResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Rows, 2)
		assert.Equal(t, domain.AssetID("a"), resp.Rows[0].ID)
		assert.Equal(t, domain.AssetStatusQueued, resp.Rows[1].Status)
	})

	t.Run("empty list is not null", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockProxy.On("ListAssets", mock.Anything).Return([]domain.AssetSummary{}, nil)
		h := newRouter(mockProxy, upload.NewMockUploadService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		assert.JSONEq(t, `{"rows":[]}`, w.Body.String())
	})

	t.Run("network error", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockProxy.On("ListAssets", mock.Anything).
			Return(([]domain.AssetSummary)(nil), &domain.NetworkError{Op: "GET /videos", Err: errors.New("connection refused")})
		h := newRouter(mockProxy, upload.NewMockUploadService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadGateway, w.Code)
	})
}
