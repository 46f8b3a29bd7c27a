package adaptor

import (
	"movie-discovery/internal/usecase"
	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Review    *ReviewHandler
	Watchlist *WatchlistHandler
	Catalog   *CatalogHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config.Cookie, log),
		Review:    NewReviewHandler(service.Review, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
		Catalog:   NewCatalogHandler(service.Catalog, log),
	}
}
