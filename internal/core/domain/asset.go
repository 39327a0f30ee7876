package domain

import (
	"strings"
	"time"
)

// AssetID is the provider issued identifier of a video asset
type AssetID string

// String returns the raw identifier
func (id AssetID) String() string {
	return string(id)
}

// AssetStatus represents the lifecycle status of an asset at the provider
type AssetStatus string

const (
	AssetStatusUnknown   AssetStatus = "unknown"
	AssetStatusPreUpload AssetStatus = "pre-upload"
	AssetStatusQueued    AssetStatus = "queued"
	AssetStatusReady     AssetStatus = "ready"
)

// StatusCategory groups provider statuses for display purposes
type StatusCategory string

const (
	StatusCategoryUnknown    StatusCategory = "unknown"
	StatusCategoryNotUpload  StatusCategory = "not-uploaded"
	StatusCategoryProcessing StatusCategory = "processing"
	StatusCategoryReady      StatusCategory = "ready"
)

// NormalizeStatus case-normalizes a provider status. Unrecognized values are kept verbatim.
func NormalizeStatus(raw string) AssetStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return AssetStatusUnknown
	}
	return AssetStatus(s)
}

// IsReady reports whether the asset can be played
func (s AssetStatus) IsReady() bool {
	return s == AssetStatusReady
}

// Category buckets the status; provider defined values fall into processing
func (s AssetStatus) Category() StatusCategory {
	switch s {
	case AssetStatusReady:
		return StatusCategoryReady
	case AssetStatusPreUpload:
		return StatusCategoryNotUpload
	case AssetStatusQueued:
		return StatusCategoryProcessing
	case AssetStatusUnknown, "":
		return StatusCategoryUnknown
	default:
		return StatusCategoryProcessing
	}
}

// AssetSummary is a read only projection of a provider asset
type AssetSummary struct {
	ID         AssetID
	Title      string
	Status     AssetStatus
	Length     float64
	UploadTime *time.Time
}

// NoAssetsMessage is the listing empty state
const NoAssetsMessage = "No videos uploaded yet"
