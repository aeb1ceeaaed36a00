package authRoutes

import (
	controllers "campapi/controllers/auth"
	validators "campapi/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the token issue route
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", validators.IssueToken(), controllers.IssueToken)
}
