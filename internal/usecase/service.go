package usecase

import (
	"movie-discovery/internal/data/repository"
	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Review    ReviewService
	Watchlist WatchlistService
	Catalog   CatalogService
}

func NewService(repo *repository.Repository, catalog CatalogClient, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Review:    NewReviewService(repo, log),
		Watchlist: NewWatchlistService(repo.SavedMovie, log),
		Catalog:   NewCatalogService(catalog, log),
	}
}
