package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/dto/request"
	"movie-discovery/internal/dto/response"
	"movie-discovery/internal/usecase"
	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// Save handles POST /watchlater (protected)
func (h *WatchlistHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
		return
	}

	var req request.WatchLaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	saved, err := h.service.Save(r.Context(), userID, req.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			utils.ResponseBadRequest(w, "Movie already in watch later!")
			return
		}
		utils.ResponseInternalError(w, "Database error")
		return
	}

	utils.ResponseOK(w, response.SavedMovieResult{
		Success: true,
		Review:  *saved,
	})
}

// Remove handles POST /removewatchlater (protected)
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
		return
	}

	var req request.WatchLaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	removed, err := h.service.Remove(r.Context(), userID, req.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotSaved) {
			utils.ResponseBadRequest(w, "Movie not in watch later!")
			return
		}
		utils.ResponseInternalError(w, "Database error")
		return
	}

	utils.ResponseOK(w, response.SavedMovieResult{
		Success: true,
		Review:  *removed,
	})
}

// List handles POST /getSavedMovies (protected)
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
		return
	}

	movies, err := h.service.List(r.Context(), userID)
	if err != nil {
		utils.ResponseInternalError(w, "Database error")
		return
	}

	utils.ResponseOK(w, movies)
}
