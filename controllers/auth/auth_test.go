package authController_test

import (
	"bytes"
	"campapi/config"
	"campapi/middleware"
	authRoutes "campapi/routers/authRoutes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestIssueTokenRoundTrip(t *testing.T) {
	app := setupAuthApp(t)

	body, _ := json.Marshal(fiber.Map{"email": "alice@example.com", "name": "Alice"})
	req := httptest.NewRequest("POST", "/jwt", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Status)
	require.NotEmpty(t, envelope.Data.Token)

	// The issued token must open the gated route
	gated := httptest.NewRequest("GET", "/protected", nil)
	gated.Header.Set("Authorization", "Bearer "+envelope.Data.Token)

	resp, err = app.Test(gated)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	app := setupAuthApp(t)

	body, _ := json.Marshal(fiber.Map{"name": "No Email"})
	req := httptest.NewRequest("POST", "/jwt", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
