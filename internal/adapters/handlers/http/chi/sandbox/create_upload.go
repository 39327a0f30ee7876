package sandbox

import (
	"bytes"
	"drm-play/internal/core/domain"
	"encoding/json"
	"net/http"
)

// ClientPayload is the signed upload form. Fields marshal in signing order,
// followed by uploadLink.
type ClientPayload struct {
	Fields     []domain.FormField
	UploadLink string
}

func (p ClientPayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, field := range p.Fields {
		if err := writeMember(&buf, field.Name, field.Value); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, "uploadLink", p.UploadLink); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key, value string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// CreateUploadResponse is the body of PUT /videos
type CreateUploadResponse struct {
	VideoID       string        `json:"videoId"`
	ClientPayload ClientPayload `json:"clientPayload"`
}

func (h *Handler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	asset, policy, err := h.hosting.CreateUpload(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CreateUploadResponse{
		VideoID: asset.ID.String(),
		ClientPayload: ClientPayload{
			Fields:     policy.Fields,
			UploadLink: policy.UploadLink,
		},
	})
}
