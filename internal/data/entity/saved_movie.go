package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedMovie is a watch-later entry. Identity is the (user_id, movie_id)
// pair; the unique index is the only dedup mechanism.
type SavedMovie struct {
	UserID  uuid.UUID `db:"user_id"`
	MovieID string    `db:"movie_id"`
	SavedAt time.Time `db:"saved_at"`
}
