package formpost

import (
	"context"
	"drm-play/internal/core/domain"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
)

const maxErrorBody = 64 << 10

// Submitter posts a file to a one time upload target as a multipart form
type Submitter struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSubmitter returns Submitter
func NewSubmitter(httpClient *http.Client, logger *slog.Logger) *Submitter {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Submitter{httpClient: httpClient, logger: logger}
}

// WriteForm writes the credential fields in order, then the file part last.
// The storage endpoint validates the signature against this order.
func WriteForm(mw *multipart.Writer, fields []domain.FormField, filename string, file io.Reader) error {
	for _, field := range fields {
		if err := mw.WriteField(field.Name, field.Value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", field.Name, err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		domain.UploadFileField, escapeQuotes(filepath.Base(filename))))
	header.Set("Content-Type", contentType(filename))

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}
	return mw.Close()
}

// Submit streams the form to the credential's upload target. No secret is attached.
func (s *Submitter) Submit(ctx context.Context, credential domain.UploadCredential, filename string, file io.Reader) error {
	pr, pw := io.Pipe()
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(WriteForm(mw, credential.Fields, filename, file))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, credential.UploadTarget, pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		_ = pr.CloseWithError(err)
		return &domain.NetworkError{Op: "upload " + credential.AssetID.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		s.logger.Error("upload target rejected file", "video_id", credential.AssetID, "status", resp.StatusCode)
		return &domain.UploadError{StatusCode: resp.StatusCode, Body: body}
	}

	s.logger.Info("file uploaded to target", "video_id", credential.AssetID, "status", resp.StatusCode)
	return nil
}

// videoMimeTypes does not rely on OS mime databases (Docker-safe)
var videoMimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".ogv":  "video/ogg",
	".3gp":  "video/3gpp",
}

func contentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := videoMimeTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
