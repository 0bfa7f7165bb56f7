package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arnavk03/staffdir/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func newGuardedApp(tokens *services.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		identity := c.Locals(IdentityKey).(services.Identity)
		return c.JSON(fiber.Map{"username": identity.Username})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	app := newGuardedApp(services.NewTokenService(testSecret))

	resp, body := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access denied. No token provided.", body["message"])
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	app := newGuardedApp(services.NewTokenService(testSecret))

	resp, body := doRequest(t, app, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id":  "id",
		"username": "alice",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	app := newGuardedApp(services.NewTokenService(testSecret))

	resp, body := doRequest(t, app, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token expired", body["message"])
}

func TestRequireAuthPassesIdentityDownstream(t *testing.T) {
	tokens := services.NewTokenService(testSecret)
	token, err := tokens.Issue("507f1f77bcf86cd799439011", "alice")
	require.NoError(t, err)

	app := newGuardedApp(tokens)

	resp, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["username"])
}
