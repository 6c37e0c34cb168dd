package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"microtwit/internal/httputil"
	"microtwit/internal/model"
	"microtwit/internal/service"
	"microtwit/internal/transport/http/middleware"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create handles POST /api/tweets
// Posts a new tweet, optionally linking pre-uploaded media by id.
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	tweetID, err := h.tweetService.Create(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyContent) {
			httputil.WriteBadRequest(w, "Tweet content is required")
			return
		}
		log.Printf("[ERROR] Create tweet handler: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Failed to create tweet")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, model.TweetCreatedResponse{Result: true, TweetID: tweetID})
}

// Update handles PUT /api/tweets/{id}
// Replaces a tweet's content in place.
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	var req model.UpdateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.tweetService.Update(r.Context(), tweetID, user.ID, req.TweetData); err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteBadRequest(w, "Tweet content is required")
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrNotTweetOwner):
			httputil.WriteForbidden(w, "You can only update your own tweets")
		default:
			log.Printf("[ERROR] Update tweet handler: user=%d tweet=%d err=%v", user.ID, tweetID, err)
			httputil.WriteInternalError(w, "Failed to update tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResultResponse{Result: true})
}

// Delete handles DELETE /api/tweets/{id}
// Removes a tweet with its likes, media records and backing files.
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Delete(r.Context(), tweetID, user.ID); err != nil {
		switch {
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrNotTweetOwner):
			httputil.WriteForbidden(w, "You can only delete your own tweets")
		default:
			log.Printf("[ERROR] Delete tweet handler: user=%d tweet=%d err=%v", user.ID, tweetID, err)
			httputil.WriteInternalError(w, "Failed to delete tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResultResponse{Result: true})
}

// Like handles POST /api/tweets/{id}/likes
func (h *TweetHandler) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Like(r.Context(), user.ID, tweetID); err != nil {
		switch {
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, "Tweet already liked")
		default:
			log.Printf("[ERROR] Like handler: user=%d tweet=%d err=%v", user.ID, tweetID, err)
			httputil.WriteInternalError(w, "Failed to like tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResultResponse{Result: true})
}

// Unlike handles DELETE /api/tweets/{id}/likes
// Removing a like that does not exist still succeeds.
func (h *TweetHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Unlike(r.Context(), user.ID, tweetID); err != nil {
		log.Printf("[ERROR] Unlike handler: user=%d tweet=%d err=%v", user.ID, tweetID, err)
		httputil.WriteInternalError(w, "Failed to unlike tweet")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResultResponse{Result: true})
}
