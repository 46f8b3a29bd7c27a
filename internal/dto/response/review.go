package response

import (
	"time"

	"movie-discovery/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MovieID      string    `json:"movie_id"`
	ReviewText   string    `json:"review_text"`
	ReviewNumber int       `json:"review_number"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username,omitempty"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

type ReviewCreatedResponse struct {
	Success bool           `json:"success"`
	Review  ReviewResponse `json:"review"`
}

type ReviewStatsResponse struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converters
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		UserID:       review.UserID.String(),
		MovieID:      review.MovieID,
		ReviewText:   review.ReviewText,
		ReviewNumber: review.ReviewNumber,
		CreatedAt:    review.CreatedAt,
	}
}

func ReviewWithUserToResponse(review *entity.ReviewWithUser) ReviewResponse {
	resp := ReviewToResponse(&review.Review)
	resp.Username = review.Username
	return resp
}
