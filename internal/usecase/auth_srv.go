package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-discovery/internal/data/entity"
	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/dto/request"
	"movie-discovery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// a caller cannot enumerate registered accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.Session, error)
	Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error)
	Logout(ctx context.Context, token string) error
	WhoAmI(ctx context.Context, token string) (bool, error)
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Register creates the user and logs them straight in: the returned
// session is already bound to the new account.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.Session, error) {
	// 1. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 2. Create user entity
	user := &entity.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	// 3. Save user; the unique indexes decide duplicates, not a
	//    read-then-write check
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			s.log.Warn("Duplicate registration attempt", zap.String("email", req.Email))
			return nil, err
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 4. Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return session, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error) {
	// 1. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to find user")
	}

	// 2. Unknown email: same answer as a wrong password
	if user == nil {
		s.log.Warn("Login attempt for unknown email")
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return session, nil
}

// Logout destroys the session. An already-absent session is not an
// error; only a failing store is.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Destroy(ctx, token); err != nil {
		s.log.Error("Failed to destroy session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// WhoAmI reports whether the token maps to a live session. A missing,
// unknown, or expired token is an anonymous caller, not an error.
func (s *authService) WhoAmI(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	session, err := s.repo.Session.FindValid(ctx, token)
	if err != nil {
		s.log.Error("Failed to resolve session", zap.Error(err))
		return false, fmt.Errorf("failed to resolve session")
	}

	return session != nil, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		Token:     utils.GenerateSessionToken(),
		UserID:    userID,
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
		CreatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
