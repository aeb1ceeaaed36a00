package middleware_test

import (
	"campapi/config"
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGuardedApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"email": c.Locals("email"),
		})
	})
	app.Get("/admin-only", middleware.JWTMiddleware, middleware.AdminMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := setupGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareWrongSignature(t *testing.T) {
	app := setupGuardedApp(t)

	claims := jwt.MapClaims{
		"email": "eve@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	app := setupGuardedApp(t)

	claims := jwt.MapClaims{
		"email": "late@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := setupGuardedApp(t)

	signed, err := middleware.GenerateJWT("alice@example.com", "Alice", "user")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminMiddleware(t *testing.T) {
	app := setupGuardedApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleAdmin}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}).Error)

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "alice@example.com", fiber.StatusOK},
		{"plain user rejected", "bob@example.com", fiber.StatusForbidden},
		{"unknown caller rejected", "ghost@example.com", fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			signed, err := middleware.GenerateJWT(tc.email, "", "")
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+signed)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
