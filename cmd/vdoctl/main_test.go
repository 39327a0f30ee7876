package main

import (
	"bytes"
	"context"
	"drm-play/internal/core/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("DRMPLAY_URL", server.URL)
}

func TestRun_List(t *testing.T) {

	t.Run("empty state", func(t *testing.T) {
		// Arrange
		startAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rows":[]}`))
		})
		var stdout, stderr bytes.Buffer

		// Act
		code := run(context.Background(), []string{"list"}, &stdout, &stderr)

		// Assert
		assert.Equal(t, 0, code)
		assert.Equal(t, domain.NoAssetsMessage+"\n", stdout.String())
	})

	t.Run("rows", func(t *testing.T) {
		// Arrange
		startAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rows":[{"id":"vid123","title":"My clip","status":"ready","length":12}]}`))
		})
		var stdout, stderr bytes.Buffer

		// Act
		code := run(context.Background(), []string{"list"}, &stdout, &stderr)

		// Assert
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "vid123")
		assert.Contains(t, stdout.String(), "My clip")
		assert.NotContains(t, stdout.String(), domain.NoAssetsMessage)
	})

	t.Run("api error", func(t *testing.T) {
		// Arrange
		startAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"VdoCipher API secret not configured"}`))
		})
		var stdout, stderr bytes.Buffer

		// Act
		code := run(context.Background(), []string{"list"}, &stdout, &stderr)

		// Assert
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "not configured")
		assert.Empty(t, stdout.String())
	})
}

func TestRun_Watch(t *testing.T) {
	// Arrange
	statuses := []string{"pre-upload", "queued", "ready"}
	calls := 0
	startAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "vid123", req["videoId"])
		s := statuses[calls]
		calls++
		w.Write([]byte(`{"success":true,"status":"` + s + `"}`))
	})
	var stdout, stderr bytes.Buffer

	// Act
	code := run(context.Background(), []string{"watch", "-interval", "1ms", "-max", "5", "vid123"}, &stdout, &stderr)

	// Assert
	assert.Equal(t, 0, code)
	assert.Equal(t, 3, calls)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(stdout.String()), "ready"))
}

func TestRun_PlayNotReady(t *testing.T) {
	// Arrange
	otpCalls := 0
	startAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/videos/otp" {
			otpCalls++
		}
		w.Write([]byte(`{"success":true,"status":"queued"}`))
	})
	var stdout, stderr bytes.Buffer

	// Act
	code := run(context.Background(), []string{"play", "vid123"}, &stdout, &stderr)

	// Assert
	assert.Equal(t, 1, code)
	assert.Equal(t, 0, otpCalls)
	assert.Contains(t, stdout.String(), "queued")
	assert.Contains(t, stderr.String(), "not ready")
}

func TestRun_Usage(t *testing.T) {
	// Arrange
	var stdout, stderr bytes.Buffer

	// Act
	code := run(context.Background(), nil, &stdout, &stderr)

	// Assert
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "usage: vdoctl")
}
