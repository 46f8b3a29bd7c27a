package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken returns an unguessable opaque token (UUIDv4).
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}
