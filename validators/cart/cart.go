package cartValidator

import (
	"campapi/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// AddToCartRequest references a public class by id
type AddToCartRequest struct {
	ClassID uint `json:"classId"`
}

func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddToCartRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID < 1 {
			errors["classId"] = "A class id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}

func CartID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart item id!", nil)
		}

		c.Locals("cartItemID", uint(id))
		return c.Next()
	}
}
