package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"movie-discovery/internal/data/entity"
	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/dto/request"
	"movie-discovery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeUserRepo enforces the same uniqueness contract as the users table.
type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repository.ErrDuplicateUser
		}
	}

	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func newAuthService(users *fakeUserRepo) AuthService {
	repo := &repository.Repository{
		User:    users,
		Session: repository.NewMemorySessionRepository(),
	}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, zap.NewNop())
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw123456",
	}
}

func TestRegister_ImpliesLogin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	session, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if session == nil || session.Token == uuid.Nil {
		t.Fatal("register must hand back a bound session")
	}

	loggedIn, err := svc.WhoAmI(context.Background(), session.Token.String())
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !loggedIn {
		t.Fatal("session issued by register should authenticate")
	}
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := users.users[0]
	if stored.PasswordHash == "pw123456" {
		t.Fatal("plaintext password must never be stored")
	}
	if !utils.CheckPasswordHash("pw123456", stored.PasswordHash) {
		t.Fatal("stored hash should verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same email, different username
	dup := registerReq()
	dup.Username = "alice2"
	_, err := svc.Register(context.Background(), dup)
	if !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	if len(users.users) != 1 {
		t.Fatalf("no partial user row expected, have %d", len(users.users))
	}
}

func TestLogin_EnumerationResistance(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassErr := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@x.com",
		Password: "nope",
	})
	_, noUserErr := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ghost@x.com",
		Password: "whatever",
	})

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if !errors.Is(noUserErr, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUserErr)
	}
	// Identical error text: nothing distinguishes the two causes
	if wrongPassErr.Error() != noUserErr.Error() {
		t.Fatalf("error text differs: %q vs %q", wrongPassErr, noUserErr)
	}
}

func TestLogin_Success(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}

	session, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@x.com",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.UserID != users.users[0].ID {
		t.Fatalf("session bound to %s, want %s", session.UserID, users.users[0].ID)
	}
}

func TestLogout_DestroysSessionAndIsIdempotent(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	session, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token := session.Token.String()

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	loggedIn, err := svc.WhoAmI(context.Background(), token)
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if loggedIn {
		t.Fatal("session should be gone after logout")
	}

	// Logging out an already-absent session is not an error
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestWhoAmI_MissingTokenIsAnonymous(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})

	loggedIn, err := svc.WhoAmI(context.Background(), "")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if loggedIn {
		t.Fatal("empty token must be anonymous")
	}
}
