package response

import (
	"time"

	"movie-discovery/internal/data/entity"
)

type SavedMovieResponse struct {
	UserID  string    `json:"user_id"`
	MovieID string    `json:"movie_id"`
	SavedAt time.Time `json:"saved_at"`
}

// SavedMovieResult wraps an add/remove outcome. The entry travels under
// the "review" key; the browser client depends on that name.
type SavedMovieResult struct {
	Success bool               `json:"success"`
	Review  SavedMovieResponse `json:"review"`
}

type SavedMovieID struct {
	MovieID string `json:"movie_id"`
}

type SavedMovieListResponse struct {
	Movies []SavedMovieID `json:"movies"`
}

// Helper converter
func SavedMovieToResponse(saved *entity.SavedMovie) SavedMovieResponse {
	return SavedMovieResponse{
		UserID:  saved.UserID.String(),
		MovieID: saved.MovieID,
		SavedAt: saved.SavedAt,
	}
}
