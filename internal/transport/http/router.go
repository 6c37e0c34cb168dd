package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"microtwit/internal/handler"
	"microtwit/internal/httputil"
	"microtwit/internal/repository"
	authmw "microtwit/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	UserHandler   *handler.UserHandler
	TweetHandler  *handler.TweetHandler
	FeedHandler   *handler.FeedHandler
	FollowHandler *handler.FollowHandler
	MediaHandler  *handler.MediaHandler
	UserRepo      repository.UserRepository

	// MediaDir, when set, is served statically under /pictures (disk
	// storage backend).
	MediaDir string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.MediaDir != "" {
		fs := http.StripPrefix("/pictures/", http.FileServer(http.Dir(cfg.MediaDir)))
		r.Get("/pictures/*", fs.ServeHTTP)
	}

	// Every API route requires a valid api-key header.
	r.Route("/api", func(r chi.Router) {
		r.Use(authmw.APIKeyAuth(cfg.UserRepo))

		r.Post("/medias", cfg.MediaHandler.Upload)

		r.Get("/tweets", cfg.FeedHandler.GetFeed)
		r.Post("/tweets", cfg.TweetHandler.Create)
		r.Put("/tweets/{id}", cfg.TweetHandler.Update)
		r.Delete("/tweets/{id}", cfg.TweetHandler.Delete)
		r.Post("/tweets/{id}/likes", cfg.TweetHandler.Like)
		r.Delete("/tweets/{id}/likes", cfg.TweetHandler.Unlike)

		r.Get("/users/me", cfg.UserHandler.Me)
		r.Get("/users/{id}", cfg.UserHandler.GetProfile)
		r.Post("/users/{id}/follow", cfg.FollowHandler.Follow)
		r.Delete("/users/{id}/follow", cfg.FollowHandler.Unfollow)
	})

	return r
}
