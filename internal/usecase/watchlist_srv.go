package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-discovery/internal/data/entity"
	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistService interface {
	Save(ctx context.Context, userID uuid.UUID, movieID string) (*response.SavedMovieResponse, error)
	Remove(ctx context.Context, userID uuid.UUID, movieID string) (*response.SavedMovieResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*response.SavedMovieListResponse, error)
}

type watchlistService struct {
	savedRepo repository.SavedMovieRepository
	log       *zap.Logger
}

func NewWatchlistService(savedRepo repository.SavedMovieRepository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		savedRepo: savedRepo,
		log:       log,
	}
}

// Save adds a watch-later entry. Adding twice is rejected with
// ErrAlreadySaved, never silently accepted; under concurrent adds the
// unique index picks exactly one winner.
func (s *watchlistService) Save(ctx context.Context, userID uuid.UUID, movieID string) (*response.SavedMovieResponse, error) {
	saved := &entity.SavedMovie{
		UserID:  userID,
		MovieID: movieID,
		SavedAt: time.Now(),
	}

	if err := s.savedRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			s.log.Warn("Movie already in watch later",
				zap.String("user_id", userID.String()),
				zap.String("movie_id", movieID))
			return nil, err
		}
		s.log.Error("Failed to save movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to save movie")
	}

	resp := response.SavedMovieToResponse(saved)
	return &resp, nil
}

// Remove deletes the entry for exactly this (user, movie) pair.
// "Nothing to remove" surfaces as ErrNotSaved.
func (s *watchlistService) Remove(ctx context.Context, userID uuid.UUID, movieID string) (*response.SavedMovieResponse, error) {
	removed, err := s.savedRepo.Delete(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotSaved) {
			s.log.Warn("Movie not in watch later",
				zap.String("user_id", userID.String()),
				zap.String("movie_id", movieID))
			return nil, err
		}
		s.log.Error("Failed to remove saved movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to remove movie")
	}

	resp := response.SavedMovieToResponse(removed)
	return &resp, nil
}

// List returns the user's saved movie ids, most recently saved first.
// Metadata is resolved per-movie by the caller through the catalog, so
// one unresolvable movie never fails the whole list.
func (s *watchlistService) List(ctx context.Context, userID uuid.UUID) (*response.SavedMovieListResponse, error) {
	saved, err := s.savedRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list saved movies",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list saved movies")
	}

	resp := &response.SavedMovieListResponse{
		Movies: make([]response.SavedMovieID, 0, len(saved)),
	}
	for _, entry := range saved {
		resp.Movies = append(resp.Movies, response.SavedMovieID{MovieID: entry.MovieID})
	}

	return resp, nil
}
