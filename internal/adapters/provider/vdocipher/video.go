package vdocipher

import (
	"context"
	"drm-play/internal/core/domain"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type videoResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	Length     float64         `json:"length"`
	UploadTime json.RawMessage `json:"upload_time"`
}

type listVideosResponse struct {
	Rows  []videoResponse `json:"rows"`
	Count int             `json:"count"`
}

// GetVideo fetches the metadata of a video
func (c *Client) GetVideo(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error) {
	var resp videoResponse
	if err := c.do(ctx, http.MethodGet, videoPath(assetID, ""), nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		resp.ID = assetID.String()
	}
	summary := resp.toSummary()
	return &summary, nil
}

// ListVideos lists the videos of the account
func (c *Client) ListVideos(ctx context.Context) ([]domain.AssetSummary, error) {
	var resp listVideosResponse
	if err := c.do(ctx, http.MethodGet, "/videos", nil, nil, &resp); err != nil {
		return nil, err
	}

	summaries := make([]domain.AssetSummary, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}

func (v videoResponse) toSummary() domain.AssetSummary {
	return domain.AssetSummary{
		ID:         domain.AssetID(v.ID),
		Title:      v.Title,
		Status:     domain.NormalizeStatus(v.Status),
		Length:     v.Length,
		UploadTime: parseUploadTime(v.UploadTime),
	}
}

// parseUploadTime accepts unix seconds or an RFC 3339 string
func parseUploadTime(raw json.RawMessage) *time.Time {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.Unix(secs, 0).UTC()
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
