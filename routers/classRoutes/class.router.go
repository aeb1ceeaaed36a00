package classRoutes

import (
	controllers "campapi/controllers/class"
	"campapi/middleware"
	validators "campapi/validators/class"

	"github.com/gofiber/fiber/v2"
)

// SetupClassRoutes sets up catalog and popularity routes
func SetupClassRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Class submission and public reads
	apiGroup.Post("/classes", validators.CreateClass(), controllers.CreateClass)
	apiGroup.Get("/all-classes", controllers.GetAllClasses)
	apiGroup.Get("/popular-classes", controllers.GetPopularClasses)
	apiGroup.Get("/popular-instructors", controllers.GetPopularInstructors)

	// Management set
	apiGroup.Get("/classes", middleware.JWTMiddleware, middleware.AdminMiddleware, controllers.GetManagedClasses)
	apiGroup.Patch("/classes/:id", validators.UpdateClass(), controllers.UpdateClassStatus)
	apiGroup.Delete("/classes/:id", validators.ClassID(), controllers.DeleteClass)
}
