package cartRoutes

import (
	controllers "campapi/controllers/cart"
	"campapi/middleware"
	validators "campapi/validators/cart"

	"github.com/gofiber/fiber/v2"
)

// SetupCartRoutes sets up the caller-scoped cart routes
func SetupCartRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/classes/cart", middleware.JWTMiddleware, validators.AddToCart(), controllers.AddToCart)
	apiGroup.Get("/all-carts", middleware.JWTMiddleware, controllers.GetCart)
	apiGroup.Delete("/carts/:id", middleware.JWTMiddleware, validators.CartID(), controllers.RemoveFromCart)
}
