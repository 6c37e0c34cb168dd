package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"microtwit/internal/httputil"
	"microtwit/internal/model"
	"microtwit/internal/service"
	"microtwit/internal/transport/http/middleware"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/medias
// Accepts a multipart file, stores the blob and creates a standalone media
// record; the returned media_id is referenced later when posting a tweet.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, model.MaxMediaSize+1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteBadRequest(w, "Missing file upload")
		return
	}
	defer file.Close()

	if header.Size > model.MaxMediaSize {
		httputil.WriteBadRequest(w, "File exceeds 10MB limit")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, model.MaxMediaSize+1))
	if err != nil {
		httputil.WriteBadRequest(w, "Failed to read upload")
		return
	}
	if len(data) > model.MaxMediaSize {
		httputil.WriteBadRequest(w, "File exceeds 10MB limit")
		return
	}

	media, err := h.mediaService.Upload(r.Context(), user.ID, data)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyFile):
			httputil.WriteBadRequest(w, "Empty file")
		case errors.Is(err, model.ErrUnsupportedMediaType):
			httputil.WriteBadRequest(w, "Unsupported media type")
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteBadRequest(w, "File exceeds 10MB limit")
		default:
			log.Printf("[ERROR] Upload handler: user=%d err=%v", user.ID, err)
			httputil.WriteInternalError(w, "Failed to upload media")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, model.MediaResponse{Result: true, MediaID: media.ID})
}
