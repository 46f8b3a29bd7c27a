package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an opaque cookie token to an authenticated user.
type Session struct {
	Token     uuid.UUID `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
