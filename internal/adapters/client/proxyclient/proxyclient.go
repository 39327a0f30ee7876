// Package proxyclient talks to the drm-play api so that the CLI goes through
// the same credential proxy as the browser and never holds the provider secret.
package proxyclient

import (
	"bytes"
	"context"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client of the /api/v1 surface
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates Client. A nil httpClient gets one with cfg.Timeout.
func NewClient(cfg config.ClientConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With("adapter", "proxyclient"),
	}
}

type errorBody struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

type videoRequest struct {
	VideoID domain.AssetID `json:"videoId"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// decodeError turns the api {error, details} body back into domain errors
func decodeError(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &domain.ProviderError{StatusCode: status, Body: raw}
	}

	switch {
	case status == http.StatusInternalServerError && strings.Contains(body.Error, "not configured"):
		return domain.ErrConfigMissing
	case status == http.StatusBadRequest:
		return domain.Validationf("%s", strings.TrimPrefix(body.Error, domain.ErrValidation.Error()+": "))
	case len(body.Details) > 0:
		details := []byte(body.Details)
		var text string
		if json.Unmarshal(details, &text) == nil {
			details = []byte(text)
		}
		return &domain.ProviderError{StatusCode: status, Body: details}
	default:
		return &domain.ProviderError{StatusCode: status, Body: []byte(body.Error)}
	}
}

type initUploadResponse struct {
	VideoID          domain.AssetID     `json:"videoId"`
	UploadTarget     string             `json:"uploadTarget"`
	SignedFormFields []domain.FormField `json:"signedFormFields"`
}

func (c *Client) InitUpload(ctx context.Context, title string, filename string) (*domain.UploadCredential, error) {
	var resp initUploadResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/videos", map[string]string{"title": title, "filename": filename}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.VideoID == "" || resp.UploadTarget == "" {
		return nil, domain.ErrInvalidCredential
	}
	return &domain.UploadCredential{
		AssetID:      resp.VideoID,
		UploadTarget: resp.UploadTarget,
		Fields:       resp.SignedFormFields,
	}, nil
}

type statusResponse struct {
	Status     string     `json:"status"`
	Title      string     `json:"title"`
	Length     float64    `json:"length"`
	UploadTime *time.Time `json:"uploadTime"`
}

func (c *Client) FetchStatus(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/videos/status", videoRequest{VideoID: assetID}, &resp); err != nil {
		return nil, err
	}
	return &domain.AssetSummary{
		ID:         assetID,
		Title:      resp.Title,
		Status:     domain.NormalizeStatus(resp.Status),
		Length:     resp.Length,
		UploadTime: resp.UploadTime,
	}, nil
}

type otpResponse struct {
	OTP          string    `json:"otp"`
	PlaybackInfo string    `json:"playbackInfo"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func (c *Client) IssuePlaybackCredential(ctx context.Context, assetID domain.AssetID) (*domain.PlaybackCredential, error) {
	issuedAt := time.Now()
	var resp otpResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/videos/otp", videoRequest{VideoID: assetID}, &resp); err != nil {
		return nil, err
	}
	if resp.OTP == "" || resp.PlaybackInfo == "" {
		return nil, domain.ErrInvalidCredential
	}
	return &domain.PlaybackCredential{
		AssetID:      assetID,
		OTP:          resp.OTP,
		PlaybackInfo: resp.PlaybackInfo,
		IssuedAt:     issuedAt,
		ExpiresAt:    resp.ExpiresAt,
	}, nil
}

type listResponse struct {
	Rows []struct {
		ID         domain.AssetID `json:"id"`
		Title      string         `json:"title"`
		Status     string         `json:"status"`
		Length     float64        `json:"length"`
		UploadTime *time.Time     `json:"uploadTime"`
	} `json:"rows"`
}

func (c *Client) ListAssets(ctx context.Context) ([]domain.AssetSummary, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/videos", nil, &resp); err != nil {
		return nil, err
	}
	assets := make([]domain.AssetSummary, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		assets = append(assets, domain.AssetSummary{
			ID:         row.ID,
			Title:      row.Title,
			Status:     domain.NormalizeStatus(row.Status),
			Length:     row.Length,
			UploadTime: row.UploadTime,
		})
	}
	return assets, nil
}
