package repository

import (
	"context"
	"fmt"

	"movie-discovery/internal/data/entity"
	"movie-discovery/pkg/database"
	"movie-discovery/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionRepository is the session registry. FindValid treats unknown,
// expired, missing, and malformed tokens the same way: (nil, nil),
// never an error.
// Destroy of an absent token is not an error either, so logout stays
// idempotent.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValid(ctx context.Context, token string) (*entity.Session, error)
	Destroy(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) error
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		session.Token,
		session.UserID,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *sessionRepository) FindValid(ctx context.Context, token string) (*entity.Session, error) {
	// The token column is uuid-typed; a tampered cookie that does not
	// parse can never match a row, so it is an anonymous caller, not a
	// query error.
	tokenID, err := utils.ParseUUID(token)
	if err != nil {
		return nil, nil
	}

	query := `
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = $1
		  AND expires_at > NOW()
	`

	var session entity.Session
	err = r.db.QueryRow(ctx, query, tokenID).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Destroy(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	// Zero rows affected is fine: the session may already be gone.
	_, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to destroy session", zap.Error(err))
		return fmt.Errorf("destroy session: %w", err)
	}

	return nil
}

func (r *sessionRepository) PurgeExpired(ctx context.Context) error {
	query := `DELETE FROM sessions WHERE expires_at < NOW()`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to purge expired sessions", zap.Error(err))
		return fmt.Errorf("purge sessions: %w", err)
	}

	return nil
}
