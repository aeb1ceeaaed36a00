package middleware

import (
	"campapi/database"
	"campapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminMiddleware checks that the authenticated caller holds the admin role.
// A missing user record counts as non-admin, not as an error.
func AdminMiddleware(c *fiber.Ctx) error {
	// Get caller email from context (set by JWTMiddleware)
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: caller identity not found", nil)
	}

	var user models.User
	err := database.Database.Db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
		// Other DB error
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
	}

	if user.Role != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	// Admin confirmed, proceed
	return c.Next()
}
