package userRoutes

import (
	controllers "campapi/controllers/user"
	"campapi/middleware"
	validators "campapi/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up all user directory routes
func SetupUserRoutes(app *fiber.App) {
	// Self-registration; duplicates answer 409
	app.Post("/users", validators.Register(), controllers.Register)

	// Directory listing is admin only
	app.Get("/users", middleware.JWTMiddleware, middleware.AdminMiddleware, controllers.GetAllUsers)

	// Role introspection, callers may only query themselves
	app.Get("/users/admin/:email", middleware.JWTMiddleware, controllers.IsAdmin)
	app.Get("/users/instructor/:email", middleware.JWTMiddleware, controllers.IsInstructor)

	// Role mutation
	app.Patch("/user/role/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, validators.UpdateRole(), controllers.UpdateRole)
}
