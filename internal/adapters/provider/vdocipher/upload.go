package vdocipher

import (
	"bytes"
	"context"
	"drm-play/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const uploadLinkKey = "uploadLink"

type createUploadResponse struct {
	VideoID       string          `json:"videoId"`
	ClientPayload json.RawMessage `json:"clientPayload"`
}

// CreateUpload obtains upload credentials for a new video
func (c *Client) CreateUpload(ctx context.Context, title string) (*domain.UploadCredential, error) {
	query := url.Values{}
	query.Set("title", title)

	var resp createUploadResponse
	if err := c.do(ctx, http.MethodPut, "/videos", query, struct{}{}, &resp); err != nil {
		return nil, err
	}
	if resp.VideoID == "" {
		return nil, fmt.Errorf("%w: empty videoId", domain.ErrInvalidCredential)
	}

	uploadLink, signed, err := parseClientPayload(resp.ClientPayload)
	if err != nil {
		return nil, err
	}

	c.logger.Info("upload credentials issued", "video_id", resp.VideoID, "fields", len(signed))

	return &domain.UploadCredential{
		AssetID:      domain.AssetID(resp.VideoID),
		UploadTarget: uploadLink,
		Fields:       domain.WithSuccessActions(signed),
	}, nil
}

// parseClientPayload walks the payload object token by token so the signed
// fields keep the order the provider emitted them in.
func parseClientPayload(raw json.RawMessage) (string, []domain.FormField, error) {
	if len(raw) == 0 {
		return "", nil, fmt.Errorf("%w: missing clientPayload", domain.ErrInvalidCredential)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read clientPayload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", nil, fmt.Errorf("%w: clientPayload is not an object", domain.ErrInvalidCredential)
	}

	var uploadLink string
	var fields []domain.FormField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", nil, fmt.Errorf("failed to read clientPayload key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return "", nil, errors.New("unexpected clientPayload key")
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return "", nil, fmt.Errorf("failed to read clientPayload value for %s: %w", key, err)
		}
		str, err := fieldValue(value)
		if err != nil {
			return "", nil, fmt.Errorf("clientPayload field %s: %w", key, err)
		}

		if key == uploadLinkKey {
			uploadLink = str
			continue
		}
		fields = append(fields, domain.FormField{Name: key, Value: str})
	}

	if uploadLink == "" {
		return "", nil, fmt.Errorf("%w: missing uploadLink", domain.ErrInvalidCredential)
	}
	return uploadLink, fields, nil
}

func fieldValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		return "", errors.New("nested values are not supported")
	}
}
