package wire

import (
	"net/http"

	"movie-discovery/internal/adaptor"
	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/usecase"
	"movie-discovery/pkg/middleware"
	"movie-discovery/pkg/tmdb"
	"movie-discovery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize catalog client, services, and handlers
	catalog := tmdb.NewClient(config.TMDB, logger)
	service := usecase.NewService(repo, catalog, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.ClientOrigin))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireWatchlist(r, handler.Watchlist, repo, config, logger)
	wireCatalog(r, handler.Catalog)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
