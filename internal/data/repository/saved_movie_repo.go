package repository

import (
	"context"
	"fmt"

	"movie-discovery/internal/data/entity"
	"movie-discovery/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SavedMovieRepository interface {
	Create(ctx context.Context, saved *entity.SavedMovie) error
	Delete(ctx context.Context, userID uuid.UUID, movieID string) (*entity.SavedMovie, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavedMovie, error)
}

type savedMovieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSavedMovieRepository(db database.PgxIface, log *zap.Logger) SavedMovieRepository {
	return &savedMovieRepository{
		db:  db,
		log: log.With(zap.String("repository", "saved_movie")),
	}
}

// Create inserts a watch-later entry. The UNIQUE(user_id, movie_id)
// index is the arbiter under concurrent adds; the loser of the race
// gets ErrAlreadySaved.
func (r *savedMovieRepository) Create(ctx context.Context, saved *entity.SavedMovie) error {
	query := `
		INSERT INTO saved_movies (user_id, movie_id, saved_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		saved.UserID,
		saved.MovieID,
		saved.SavedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadySaved
		}
		r.log.Error("Failed to save movie",
			zap.Error(err),
			zap.String("user_id", saved.UserID.String()),
			zap.String("movie_id", saved.MovieID),
		)
		return fmt.Errorf("save movie %s for user %s: %w",
			saved.MovieID, saved.UserID.String(), err)
	}

	return nil
}

// Delete removes the entry by exact composite key and returns the
// removed row. No row matched means there was nothing to remove:
// ErrNotSaved, not a silent success.
func (r *savedMovieRepository) Delete(ctx context.Context, userID uuid.UUID, movieID string) (*entity.SavedMovie, error) {
	query := `
		DELETE FROM saved_movies
		WHERE user_id = $1 AND movie_id = $2
		RETURNING user_id, movie_id, saved_at
	`

	var removed entity.SavedMovie
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&removed.UserID,
		&removed.MovieID,
		&removed.SavedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotSaved
	}
	if err != nil {
		r.log.Error("Failed to delete saved movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("delete saved movie %s for user %s: %w",
			movieID, userID.String(), err)
	}

	return &removed, nil
}

// FindByUserID lists a user's watch-later entries, most recently saved
// first. Only movie ids come back; metadata stays in the catalog.
func (r *savedMovieRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavedMovie, error) {
	query := `
		SELECT user_id, movie_id, saved_at
		FROM saved_movies
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find saved movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find saved movies for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var saved []*entity.SavedMovie
	for rows.Next() {
		var entry entity.SavedMovie
		err := rows.Scan(
			&entry.UserID,
			&entry.MovieID,
			&entry.SavedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan saved movie row", zap.Error(err))
			return nil, fmt.Errorf("scan saved movie row: %w", err)
		}
		saved = append(saved, &entry)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate saved movie rows: %w", err)
	}

	return saved, nil
}
