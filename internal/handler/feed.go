package handler

import (
	"log"
	"net/http"

	"microtwit/internal/httputil"
	"microtwit/internal/service"
	"microtwit/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed handles GET /api/tweets
// Returns all tweets ranked by like count.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	feed, err := h.feedService.GetFeed(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] GetFeed handler: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}
