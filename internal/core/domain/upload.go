package domain

import (
	"strings"
	"time"
)

const (
	// SuccessActionStatusField is appended after the signed fields of every upload form
	SuccessActionStatusField = "success_action_status"
	// SuccessActionRedirectField is appended after SuccessActionStatusField
	SuccessActionRedirectField = "success_action_redirect"
	// UploadFileField is the multipart part carrying the payload, always last
	UploadFileField = "file"
)

// EffectiveTitle is the trimmed title, or the trimmed filename when the title is blank
func EffectiveTitle(title, filename string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return strings.TrimSpace(filename)
}

// FormField is a single signed form parameter
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UploadCredential is a single use bundle authorizing a direct storage upload
type UploadCredential struct {
	AssetID      AssetID
	UploadTarget string
	Fields       []FormField
}

// WithSuccessActions returns the signed fields followed by the success action fields
func WithSuccessActions(signed []FormField) []FormField {
	fields := make([]FormField, 0, len(signed)+2)
	fields = append(fields, signed...)
	fields = append(fields,
		FormField{Name: SuccessActionStatusField, Value: "201"},
		FormField{Name: SuccessActionRedirectField, Value: ""},
	)
	return fields
}

// PlaybackCredential is an OTP and playback token pair scoped to one asset
type PlaybackCredential struct {
	AssetID      AssetID
	OTP          string
	PlaybackInfo string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// ValidAt reports whether the credential window still covers t
func (c PlaybackCredential) ValidAt(t time.Time) bool {
	return c.OTP != "" && c.PlaybackInfo != "" && t.Before(c.ExpiresAt)
}

// OTPOptions are the parameters sent with an OTP issuance request
type OTPOptions struct {
	TTL time.Duration
	// AllowedHrefPattern is a regular expression of origins allowed to embed the player. Empty means the dashboard whitelist applies.
	AllowedHrefPattern string
}
