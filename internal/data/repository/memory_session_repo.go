package repository

import (
	"context"
	"sync"
	"time"

	"movie-discovery/internal/data/entity"
)

// memorySessionRepository keeps sessions in a process-local map. It is
// the injectable store for tests and single-node deployments that do
// not need sessions to survive a restart.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]entity.Session),
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token.String()] = *session
	return nil
}

func (r *memorySessionRepository) FindValid(ctx context.Context, token string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}

	return &session, nil
}

func (r *memorySessionRepository) Destroy(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

func (r *memorySessionRepository) PurgeExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for token, session := range r.sessions {
		if !session.ExpiresAt.After(now) {
			delete(r.sessions, token)
		}
	}
	return nil
}
