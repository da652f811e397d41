package jwt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atslens/ats-engine/pkg/auth"
)

func protectedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	return app
}

func testToken(t *testing.T, secret, issuer string, ttl time.Duration) (auth.User, string) {
	t.Helper()
	user := auth.User{ID: uuid.New(), Email: "r@example.com", Role: auth.RoleRecruiter}
	token, err := NewGenerator(secret, issuer, ttl).Generate(context.Background(), user)
	require.NoError(t, err)
	return user, token
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	app := protectedApp("secret", "ats-engine")
	user, token := testToken(t, "secret", "ats-engine", time.Hour)

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, user.ID.String(), body["userId"])
		assert.Equal(t, auth.RoleRecruiter, body["role"])
	}
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app := protectedApp("secret", "ats-engine")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	app := protectedApp("secret", "ats-engine")
	_, token := testToken(t, "other-secret", "ats-engine", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsWrongIssuer(t *testing.T) {
	app := protectedApp("secret", "ats-engine")
	_, token := testToken(t, "secret", "someone-else", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	app := protectedApp("secret", "ats-engine")
	_, token := testToken(t, "secret", "ats-engine", -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
