package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review belongs to a user; the movie is an external catalog id,
// never a local row.
type Review struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	MovieID      string    `db:"movie_id"`
	ReviewText   string    `db:"review_text"`
	ReviewNumber int       `db:"review_number"` // 1-5
	CreatedAt    time.Time `db:"created_at"`
}

// ReviewWithUser is a review row joined with the reviewer's username.
type ReviewWithUser struct {
	Review
	Username string `db:"username"`
}
