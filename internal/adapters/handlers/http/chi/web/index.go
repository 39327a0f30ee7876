package web

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

type indexPage struct {
	Title      string
	Error      *banner
	Listed     bool
	Rows       []domain.AssetSummary
	EmptyState string
}

// Index renders the upload form and the video listing
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Title: "Videos", EmptyState: EmptyState}
	status := http.StatusOK

	rows, err := h.proxy.ListAssets(r.Context())
	if err != nil {
		status = response.StatusOf(err)
		page.Error = errorBanner("Failed to load videos", err)
		h.logger.Warn("listing failed", "error", err)
	} else {
		page.Listed = true
		page.Rows = rows
	}

	h.render(w, indexTemplate, status, page)
}

// Upload runs the orchestrated upload from the browser form and opens the player page
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	fail := func(err error) {
		h.render(w, indexTemplate, response.StatusOf(err), indexPage{
			Title:      "Videos",
			Error:      errorBanner("Upload failed", err),
			EmptyState: EmptyState,
		})
	}

	if err := r.ParseMultipartForm(h.memoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.logger.Warn("upload rejected", "limit", maxBytesErr.Limit)
			h.render(w, indexTemplate, http.StatusRequestEntityTooLarge, indexPage{
				Title:      "Videos",
				Error:      &banner{Title: "Upload failed", Message: "file too large"},
				EmptyState: EmptyState,
			})
			return
		}
		h.logger.Error("error parsing upload form", "error", err)
		fail(domain.Validationf("invalid upload form"))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to remove multipart temp files", "error", err)
		}
	}()

	file, header, err := r.FormFile(domain.UploadFileField)
	if err != nil {
		fail(domain.Validationf("file is required"))
		return
	}
	defer file.Close()

	videoID, err := h.uploadService.Upload(r.Context(), file, header.Filename, r.FormValue("title"))
	if err != nil {
		fail(err)
		return
	}

	http.Redirect(w, r, "/videos/"+url.PathEscape(videoID.String()), http.StatusSeeOther)
}

// OpenVideo redirects the lookup form to the player page
func (h *Handler) OpenVideo(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/videos/"+url.PathEscape(id), http.StatusSeeOther)
}

func errorBanner(title string, err error) *banner {
	var providerErr *domain.ProviderError
	var uploadErr *domain.UploadError
	switch {
	case errors.Is(err, domain.ErrConfigMissing), errors.Is(err, domain.ErrValidation):
		return &banner{Title: title, Message: err.Error()}
	case errors.As(err, &providerErr):
		return &banner{Title: title, Message: "VdoCipher API error: " + trimBody(providerErr.Body)}
	case errors.As(err, &uploadErr):
		return &banner{Title: title, Message: "Storage rejected the upload: " + trimBody(uploadErr.Body)}
	default:
		return &banner{Title: title, Message: err.Error()}
	}
}

func trimBody(body []byte) string {
	const limit = 300
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	if s == "" {
		return "no details"
	}
	return s
}
