package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/repository"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthService struct {
	users  repository.UserRepository
	rdb    *redis.Client
	secret string
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, rdb *redis.Client, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, rdb: rdb, secret: secret, ttl: ttl}
}

// Login checks credentials and issues a bearer token. Unknown emails and
// wrong passwords get the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.NewUnauthorizedError("Incorrect email or password")
	}
	if user.IsBlocked {
		return nil, models.NewUnauthorizedError("User is blocked")
	}

	token, _, err := middleware.SignToken(s.secret, user.ID, s.ttl)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.ttl.Seconds()),
	}, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *middleware.TokenClaims) error {
	if s.rdb == nil {
		return models.NewInternalError(fmt.Errorf("token revocation store unavailable"))
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, middleware.RevocationKey(claims.ID), "1", ttl).Err(); err != nil {
		return models.NewInternalError(fmt.Errorf("revoke token: %w", err))
	}
	middleware.Logger.InfoContext(ctx, "token revoked", slog.Uint64("user_id", uint64(claims.UserID)))
	return nil
}

// Me returns the signed-in user. Blocked users are refused.
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBlocked {
		return nil, models.NewUnauthorizedError("User is blocked")
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}
	hash, err := hashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}
