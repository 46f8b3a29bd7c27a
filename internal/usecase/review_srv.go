package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-discovery/internal/data/entity"
	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/dto/request"
	"movie-discovery/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	AddReview(ctx context.Context, userID uuid.UUID, req *request.AddReviewRequest) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID string) (*response.ReviewListResponse, error)
	GetMovieReviewStats(ctx context.Context, movieID string) (*response.ReviewStatsResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log,
	}
}

// AddReview inserts a new review row with a server-assigned id and
// timestamp. Submitting again for the same movie adds another row;
// there is no dedup on (user, movie).
func (s *reviewService) AddReview(ctx context.Context, userID uuid.UUID, req *request.AddReviewRequest) (*response.ReviewResponse, error) {
	review := &entity.Review{
		ID:           uuid.New(),
		UserID:       userID,
		MovieID:      req.MovieID,
		ReviewText:   req.ReviewText,
		ReviewNumber: req.ReviewNumber,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("failed to create review")
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", review.MovieID),
		zap.Int("rating", review.ReviewNumber))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// GetMovieReviews lists a movie's reviews newest-first, each joined
// with the reviewer's username. A movie with no reviews yields an
// empty list, not an error.
func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) (*response.ReviewListResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to get reviews")
	}

	resp := &response.ReviewListResponse{
		Reviews: make([]response.ReviewResponse, 0, len(reviews)),
	}
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, response.ReviewWithUserToResponse(review))
	}

	return resp, nil
}

// GetMovieReviewStats recomputes the plain arithmetic mean on every
// call. Zero reviews means average 0.
func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID string) (*response.ReviewStatsResponse, error) {
	avgRating, count, err := s.repo.Review.GetMovieReviewStats(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to get review stats")
	}

	return &response.ReviewStatsResponse{
		AverageRating: avgRating,
		ReviewCount:   count,
	}, nil
}
