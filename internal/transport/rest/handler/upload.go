package handler

import (
	"net/http"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/storage"
)

// maxUploadSize caps profile picture uploads at 10 MB.
const maxUploadSize = 10 << 20

// UploadHandler handles profile picture uploads
type UploadHandler struct {
	store *storage.DiskStore
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store *storage.DiskStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles POST /upload. The file arrives as multipart field
// "avatar"; the response path can be stored as profilePicture via the
// profile update endpoints.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing avatar file")
		return
	}
	defer file.Close()

	name, err := h.store.Save("avatar", header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"path": "/uploads/" + name})
}
