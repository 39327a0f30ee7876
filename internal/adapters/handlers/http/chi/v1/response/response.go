package response

import (
	"drm-play/internal/core/domain"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrorResponse is the uniform failure body
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes v with status
func JSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("error encoding response", "error", err)
	}
}

// Error maps err to a status code and writes the uniform failure body
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	status, resp := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	JSON(w, logger, status, resp)
}

// StatusOf returns the status code Error would write for err
func StatusOf(err error) int {
	status, _ := classify(err)
	return status
}

func classify(err error) (int, ErrorResponse) {
	var providerErr *domain.ProviderError
	var uploadErr *domain.UploadError
	var networkErr *domain.NetworkError

	switch {
	case errors.Is(err, domain.ErrConfigMissing):
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrBusy):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.As(err, &providerErr):
		status := providerErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return status, ErrorResponse{Error: "VdoCipher API error", Details: details(providerErr.Body)}
	case errors.As(err, &uploadErr):
		status := uploadErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return status, ErrorResponse{Error: "Upload failed", Details: details(uploadErr.Body)}
	case errors.As(err, &networkErr):
		return http.StatusBadGateway, ErrorResponse{Error: "Failed to reach VdoCipher", Details: networkErr.Error()}
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusBadGateway, ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}

// details keeps a JSON payload as raw JSON and anything else as a string
func details(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
