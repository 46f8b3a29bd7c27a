package repository

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestSessionRepo_FindValidMalformedToken(t *testing.T) {
	// nil db: a malformed token must resolve to anonymous before any
	// query runs, so the store is never touched.
	repo := NewSessionRepository(nil, zap.NewNop())

	for _, token := range []string{"not-a-uuid-cookie", "123", "'; DROP TABLE sessions;--"} {
		found, err := repo.FindValid(context.Background(), token)
		if err != nil {
			t.Fatalf("token %q: expected anonymous, got error %v", token, err)
		}
		if found != nil {
			t.Fatalf("token %q: expected nil session, got %+v", token, found)
		}
	}
}
