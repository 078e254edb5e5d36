package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func newAuthApp(rdb *redis.Client) *fiber.App {
	app := fiber.New()
	app.Get("/test", AuthRequired(testSecret, rdb), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": c.Locals("userID")})
	})
	return app
}

func TestSignAndParseToken(t *testing.T) {
	t.Parallel()

	raw, issued, err := SignToken(testSecret, 42, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := ParseToken(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, issued.ID, claims.ID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)

	_, err = ParseToken("another-secret-that-is-long-enough-000000", raw)
	assert.Error(t, err)
}

func TestParseToken_RejectsForeignIssuer(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"sub": "7",
		"iss": "someone-else",
		"aud": TokenAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, raw)
	assert.Error(t, err)
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	valid, _, err := SignToken(testSecret, 123, time.Hour)
	require.NoError(t, err)
	expired, _, err := SignToken(testSecret, 123, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Happy Path", "Bearer " + valid, http.StatusOK},
		{"Missing Header", "", http.StatusUnauthorized},
		{"Invalid Format", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"Expired Token", "Bearer " + expired, http.StatusUnauthorized},
		{"Garbage Token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	app := newAuthApp(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus == http.StatusOK {
				var body map[string]float64
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, float64(123), body["userID"])
			}
		})
	}
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	raw, claims, err := SignToken(testSecret, 9, time.Hour)
	require.NoError(t, err)
	require.NoError(t, rdb.Set(context.Background(), RevocationKey(claims.ID), "1", time.Hour).Err())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := newAuthApp(rdb).Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalUserID(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := fiber.New()
	app.Get("/viewer", func(c *fiber.Ctx) error {
		id, ok := OptionalUserID(c, testSecret, rdb)
		return c.JSON(fiber.Map{"user_id": id, "ok": ok})
	})
	viewer := func(header string) (uint, bool) {
		req := httptest.NewRequest(http.MethodGet, "/viewer", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		var body struct {
			UserID uint `json:"user_id"`
			OK     bool `json:"ok"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.UserID, body.OK
	}

	raw, claims, err := SignToken(testSecret, 5, time.Hour)
	require.NoError(t, err)

	id, ok := viewer("Bearer " + raw)
	assert.True(t, ok)
	assert.Equal(t, uint(5), id)

	_, ok = viewer("")
	assert.False(t, ok)
	_, ok = viewer("Bearer not-a-token")
	assert.False(t, ok)

	require.NoError(t, rdb.Set(context.Background(), RevocationKey(claims.ID), "1", time.Hour).Err())
	_, ok = viewer("Bearer " + raw)
	assert.False(t, ok)
}
