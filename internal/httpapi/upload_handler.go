package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10MB

type UploadHandler struct {
	uploadsDir string
}

func NewUploadHandler(uploadsDir string) *UploadHandler {
	return &UploadHandler{uploadsDir: uploadsDir}
}

// Upload writes a single multipart file under the public uploads
// directory as <unix-millis>-<uuid><ext> and returns its public URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing_file", "file field is required")
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "Upload failed")
		return
	}

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(h.uploadsDir, name))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "Upload failed")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "Upload failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": "/uploads/" + name})
}
