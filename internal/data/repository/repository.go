package repository

import (
	"movie-discovery/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Review     ReviewRepository
	SavedMovie SavedMovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Review:     NewReviewRepository(db, log),
		SavedMovie: NewSavedMovieRepository(db, log),
	}
}
