package domain

import "time"

// HostedAsset is an asset held by the sandbox provider
type HostedAsset struct {
	ID          AssetID
	Title       string
	Status      AssetStatus
	ObjectKey   string
	Size        int64
	ContentType string
	Length      float64
	CreatedAt   time.Time
	UploadedAt  *time.Time
	ReadyAt     *time.Time
}

// Summary projects the asset the way the provider API reports it
func (a HostedAsset) Summary() AssetSummary {
	return AssetSummary{
		ID:         a.ID,
		Title:      a.Title,
		Status:     a.Status,
		Length:     a.Length,
		UploadTime: a.UploadedAt,
	}
}

// PostPolicy is a signed browser upload form for one object key
type PostPolicy struct {
	UploadLink string
	Fields     []FormField
	ExpiresAt  time.Time
}

// HostedPlayback is a playback grant issued by the sandbox
type HostedPlayback struct {
	AssetID       AssetID `json:"videoId"`
	AllowedOrigin string  `json:"whitelisthref,omitempty"`
	ExpiresAt     int64   `json:"expires"`
}
