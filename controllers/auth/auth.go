package authController

import (
	"campapi/middleware"
	userValidator "campapi/validators/user"
	"log"

	"github.com/gofiber/fiber/v2"
)

// IssueToken exchanges a client-supplied profile for a signed bearer token.
// The token always carries a one hour expiry.
func IssueToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToken").(*userValidator.TokenRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name, reqData.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued successfully!", fiber.Map{
		"token": token,
	})
}
