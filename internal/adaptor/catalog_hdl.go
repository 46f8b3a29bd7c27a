package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-discovery/internal/dto/request"
	"movie-discovery/internal/usecase"
	"movie-discovery/pkg/tmdb"
	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// SearchMovies handles POST /getMovies (public)
func (h *CatalogHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	var req request.SearchMoviesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	movies, err := h.service.SearchMovies(r.Context(), &req)
	if err != nil {
		if errors.Is(err, tmdb.ErrUnavailable) {
			utils.ResponseInternalError(w, "TMDB API failed")
			return
		}
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.ResponseOK(w, movies)
}

// MovieDetails handles POST /getMovieDetails (public)
func (h *CatalogHandler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	var req request.MovieDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	movie, err := h.service.MovieDetails(r.Context(), &req)
	if err != nil {
		if errors.Is(err, tmdb.ErrUnavailable) {
			utils.ResponseInternalError(w, "TMDB API failed")
			return
		}
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.ResponseOK(w, movie)
}
