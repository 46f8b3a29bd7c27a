package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint violations are tagged here so no caller above this layer
// ever inspects vendor error codes.
var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrAlreadySaved  = errors.New("movie already saved")
	ErrNotSaved      = errors.New("movie not saved")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
