package paymentValidator

import (
	"campapi/middleware"

	"github.com/gofiber/fiber/v2"
)

// IntentRequest asks the provider for a payment intent, price in major units
type IntentRequest struct {
	Price float64 `json:"price"`
}

// CompletePaymentRequest confirms a client-side payment and triggers the
// enrollment sequence
type CompletePaymentRequest struct {
	CartItemID      uint                   `json:"cartItemId"`
	ClassID         uint                   `json:"classId"`
	Amount          float64                `json:"amount"`
	PaymentIntentID string                 `json:"paymentIntentId"`
	Extra           map[string]interface{} `json:"extra"`
}

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IntentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func CompletePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompletePaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CartItemID < 1 {
			errors["cartItemId"] = "A cart item id is required!"
		}
		if reqData.ClassID < 1 {
			errors["classId"] = "A class id is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
