package paymentRoutes

import (
	controllers "campapi/controllers/payment"
	"campapi/middleware"
	validators "campapi/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up payment intent, completion and enrollment routes
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", validators.CreateIntent(), controllers.CreatePaymentIntent)

	apiGroup := app.Group("/api")
	apiGroup.Post("/payments", middleware.JWTMiddleware, validators.CompletePayment(), controllers.CompletePayment)
	apiGroup.Get("/enrolled", middleware.JWTMiddleware, controllers.GetEnrolled)
}
