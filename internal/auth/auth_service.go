package auth

import (
	"context"
	"os"
	"time"

	autherrors "hr-ops/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

type Service interface {
	// Login verifies credentials and mints a session token bound to
	// the user id. Unknown user and wrong password return the same
	// generic failure.
	Login(ctx context.Context, username, password string) (string, error)

	// SeedAdmin creates the initial login when the users table is
	// empty; a no-op otherwise.
	SeedAdmin(ctx context.Context, username, password string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", autherrors.ErrInvalidCredentials
	}

	token, err := s.generateSessionToken(user.ID.String())
	if err != nil {
		s.logger.Error("session token generation failed", zap.Error(err))
		return "", autherrors.ErrSessionIssueFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))
	return token, nil
}

func (s *service) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hashed),
		Role:     "ADMIN",
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("seeded initial admin user", zap.String("username", username))
	return nil
}

func (s *service) generateSessionToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("SESSION_SECRET")))
}
