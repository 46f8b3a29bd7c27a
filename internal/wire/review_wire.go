package wire

import (
	"movie-discovery/internal/adaptor"
	"movie-discovery/internal/data/repository"
	"movie-discovery/pkg/middleware"
	"movie-discovery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Anyone can read a movie's reviews and rating stats
	r.Get("/getreviews/{movieID}", reviewHandler.GetReviews)
	r.Get("/getreviewstats/{movieID}", reviewHandler.GetReviewStats)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, config.Cookie, log)).Post("/addreview", reviewHandler.AddReview)
}
