package wire

import (
	"movie-discovery/internal/adaptor"
	"movie-discovery/internal/data/repository"
	"movie-discovery/pkg/middleware"
	"movie-discovery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWatchlist(
	r chi.Router,
	watchlistHandler *adaptor.WatchlistHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// The whole watch-later surface requires a session
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Cookie, log))

		r.Post("/watchlater", watchlistHandler.Save)
		r.Post("/removewatchlater", watchlistHandler.Remove)
		r.Post("/getSavedMovies", watchlistHandler.List)
	})
}
