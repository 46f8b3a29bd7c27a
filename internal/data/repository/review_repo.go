package repository

import (
	"context"
	"fmt"

	"movie-discovery/internal/data/entity"
	"movie-discovery/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.ReviewWithUser, error)

	// Business queries
	GetMovieReviewStats(ctx context.Context, movieID string) (float64, int64, error) // avg rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// Create inserts a new review. There is no uniqueness constraint on
// (user_id, movie_id): a user may review the same movie repeatedly.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, review_text, review_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.ReviewText,
		review.ReviewNumber,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID, review.UserID.String(), err)
	}

	return nil
}

// FindByMovieID returns all reviews for a movie joined with the
// reviewer's username, newest first.
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.ReviewWithUser, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.review_text, r.review_number, r.created_at, u.username
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID, err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithUser
	for rows.Next() {
		var review entity.ReviewWithUser
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.ReviewText,
			&review.ReviewNumber,
			&review.CreatedAt,
			&review.Username,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// GetMovieReviewStats computes the arithmetic mean on every read; the
// aggregate is never stored. COALESCE keeps the empty set at 0.
func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID string) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(review_number), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
		WHERE movie_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("get movie review stats for %s: %w", movieID, err)
	}

	return avgRating, reviewCount, nil
}
