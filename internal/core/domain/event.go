package domain

import "time"

// MinIOEvent represents a MinIO bucket notification
type MinIOEvent struct {
	EventName string `json:"EventName"`
	Key       string `json:"Key"`
	Records   []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key  string `json:"key"`
				Size int64  `json:"size"`
				ETag string `json:"eTag"`
			} `json:"object"`
		} `json:"s3"`
		EventTime string `json:"eventTime"`
	} `json:"Records"`
}

// AssetEventType is a type that represents the type of an asset lifecycle event
type AssetEventType string

const (
	AssetEventUploadInitiated AssetEventType = "asset.upload_initiated"
	AssetEventUploaded        AssetEventType = "asset.uploaded"
	AssetEventStatusObserved  AssetEventType = "asset.status_observed"
	AssetEventReady           AssetEventType = "asset.ready"
)

// AssetEvent is a lifecycle notification published for downstream consumers
type AssetEvent struct {
	ID         string         `json:"id"`
	Type       AssetEventType `json:"type"`
	AssetID    AssetID        `json:"asset_id"`
	Status     AssetStatus    `json:"status,omitempty"`
	Title      string         `json:"title,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
