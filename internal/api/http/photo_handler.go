package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"rewear-backend/internal/service"
)

// PhotoHandler serves photo upload slots, raw uploads, and downloads. Uploads
// go through a pending key issued via CreateUpload so the purge job can reap
// abandoned blobs.
type PhotoHandler struct {
	photos      service.PhotoService
	maxBodySize int64
}

func NewPhotoHandler(photos service.PhotoService, maxFileSizeMB int64) *PhotoHandler {
	return &PhotoHandler{
		photos:      photos,
		maxBodySize: maxFileSizeMB << 20,
	}
}

type createUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

func (h *PhotoHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var body createUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	photo, err := h.photos.CreatePendingUpload(r.Context(), claims.UserID, body.FileName, body.ContentType)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeJSONError(w, http.StatusBadRequest, "missing key")
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := h.photos.StoreUpload(r.Context(), key, body); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeJSONError(w, http.StatusBadRequest, "missing key")
		return
	}

	rc, contentType, err := h.photos.OpenPhoto(r.Context(), key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, rc)
}
