package handler

import (
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

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /api/users/{id}/follow
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.followService.Follow(r.Context(), user.ID, followeeID); err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w, "Cannot follow yourself")
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteConflict(w, "Already following this user")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Follow handler: follower=%d followee=%d err=%v", user.ID, followeeID, err)
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResultResponse{Result: true})
}

// Unfollow handles DELETE /api/users/{id}/follow
// Unfollowing a user who was never followed still succeeds.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	removed, err := h.followService.Unfollow(r.Context(), user.ID, followeeID)
	if err != nil {
		log.Printf("[ERROR] Unfollow handler: follower=%d followee=%d err=%v", user.ID, followeeID, err)
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}
	if !removed {
		log.Printf("Unfollow no-op: follower=%d followee=%d", user.ID, followeeID)
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResultResponse{Result: true})
}
