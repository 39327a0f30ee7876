package domain

import (
	"errors"
	"fmt"
)

// ErrConfigMissing is an error thrown when the provider secret is not configured
var ErrConfigMissing = errors.New("VdoCipher API secret not configured")

// ErrValidation is an error thrown when a required input is missing or malformed
var ErrValidation = errors.New("validation error")

// ErrAssetNotReady is an error thrown when playback is requested before the asset is ready
var ErrAssetNotReady = errors.New("asset not ready")

// ErrBusy is an error thrown when a logical action is already in flight
var ErrBusy = errors.New("request already in flight")

// ErrPollLimit is an error thrown when the auto poll exhausts its attempts
var ErrPollLimit = errors.New("poll limit reached")

// ErrStale is an error thrown when a response arrives for a target that is no longer current
var ErrStale = errors.New("stale response discarded")

// ErrAssetNotFound is an error thrown when an asset does not exist
var ErrAssetNotFound = errors.New("asset not found")

// ErrInvalidCredential is an error thrown when the provider returns an unusable credential
var ErrInvalidCredential = errors.New("invalid credential")

// Validationf wraps ErrValidation with a message
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ProviderError is a non success response of the provider API
type ProviderError struct {
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// UploadError is a failed submission to the one time upload target
type UploadError struct {
	StatusCode int
	Body       []byte
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload target returned status %d", e.StatusCode)
}

// NetworkError is a transport failure where no response was received
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
