// Package middleware provides logging, metrics, tracing, rate limiting and
// authentication middleware for the application.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gochurch/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TokenIssuer   = "gochurch-api"
	TokenAudience = "gochurch-client"
)

// TokenClaims is the subset of access-token claims the API relies on.
type TokenClaims struct {
	UserID    uint
	ID        string
	ExpiresAt time.Time
}

// SignToken issues an HS256 access token for userID valid for ttl.
func SignToken(secret string, userID uint, ttl time.Duration) (string, *TokenClaims, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    TokenIssuer,
		Audience:  jwt.ClaimStrings{TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, &TokenClaims{UserID: userID, ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ParseToken validates signature, expiry, issuer and audience and returns the claims.
func ParseToken(secret, raw string) (*TokenClaims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || userID == 0 {
		return nil, models.NewUnauthorizedError("Invalid user ID in token")
	}

	return &TokenClaims{UserID: uint(userID), ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// RevocationKey is the Redis key marking a token ID as logged out.
func RevocationKey(jti string) string {
	return "blacklist:" + jti
}

// IsRevoked reports whether the token ID was revoked. A nil client or a
// Redis failure counts as not revoked.
func IsRevoked(ctx context.Context, rdb *redis.Client, jti string) bool {
	if rdb == nil || jti == "" {
		return false
	}
	n, err := rdb.Exists(ctx, RevocationKey(jti)).Result()
	return err == nil && n > 0
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *fiber.Ctx) string {
	parts := strings.Fields(c.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthRequired enforces a valid, unrevoked bearer token. On success the
// user ID is stored in locals ("userID") and in the request context, and the
// token claims in locals ("tokenClaims").
func AuthRequired(secret string, rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := BearerToken(c)
		if raw == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		claims, err := ParseToken(secret, raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}
		if IsRevoked(c.UserContext(), rdb, claims.ID) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Token has been revoked"))
		}

		c.Locals("userID", claims.UserID)
		c.Locals("tokenClaims", claims)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, claims.UserID))

		return c.Next()
	}
}

// OptionalUserID returns the caller's user ID when a valid, unrevoked token
// is present.
func OptionalUserID(c *fiber.Ctx, secret string, rdb *redis.Client) (uint, bool) {
	raw := BearerToken(c)
	if raw == "" {
		return 0, false
	}
	claims, err := ParseToken(secret, raw)
	if err != nil || IsRevoked(c.UserContext(), rdb, claims.ID) {
		return 0, false
	}
	return claims.UserID, true
}
