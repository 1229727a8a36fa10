package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func probeUserID(t *testing.T, authorization string) (uint, bool) {
	t.Helper()

	var (
		gotID uint
		gotOK bool
	)
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		gotID, gotOK = UserIDFromRequest(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	_, err := app.Test(req, -1)
	require.NoError(t, err)
	return gotID, gotOK
}

func TestUserIDFromRequestValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"id":  float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "solid_secret_key")

	id, ok := probeUserID(t, "Bearer "+token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestUserIDFromRequestMissingHeader(t *testing.T) {
	_, ok := probeUserID(t, "")
	assert.False(t, ok)
}

func TestUserIDFromRequestExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"id":  float64(42),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, "solid_secret_key")

	_, ok := probeUserID(t, "Bearer "+token)
	assert.False(t, ok)
}

func TestUserIDFromRequestWrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"id":  float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "some_other_key")

	_, ok := probeUserID(t, "Bearer "+token)
	assert.False(t, ok)
}
