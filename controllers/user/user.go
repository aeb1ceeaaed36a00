package userController

import (
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	userValidator "campapi/validators/user"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register creates a user record with the default role. Email uniqueness is
// enforced by the unique index, so the constraint violation is the single
// source of truth for duplicates.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*userValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	newUser := models.User{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Gender:      reqData.Gender,
		PhoneNumber: reqData.PhoneNumber,
		Address:     reqData.Address,
		PhotoURL:    reqData.PhotoURL,
		Role:        models.RoleUser,
	}

	if err := database.Database.Db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", newUser)
}

// GetAllUsers lists every user record. Admin only.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("id asc").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// hasRole answers whether the account behind email holds the role. A missing
// user record answers false rather than erroring.
func hasRole(email, role string) (bool, error) {
	var user models.User
	err := database.Database.Db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

// IsAdmin reports whether the caller's account holds the admin role. Callers
// may only ask about their own email.
func IsAdmin(c *fiber.Ctx) error {
	email := c.Params("email")

	callerEmail, ok := c.Locals("email").(string)
	if !ok || callerEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden: you can only check your own role!", nil)
	}

	isAdmin, err := hasRole(email, models.RoleAdmin)
	if err != nil {
		log.Printf("Error fetching user %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked successfully!", fiber.Map{
		"admin": isAdmin,
	})
}

// IsInstructor reports whether the caller's account holds the instructor role
func IsInstructor(c *fiber.Ctx) error {
	email := c.Params("email")

	callerEmail, ok := c.Locals("email").(string)
	if !ok || callerEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden: you can only check your own role!", nil)
	}

	isInstructor, err := hasRole(email, models.RoleInstructor)
	if err != nil {
		log.Printf("Error fetching user %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked successfully!", fiber.Map{
		"instructor": isInstructor,
	})
}

// UpdateRole sets a user's role by id. Admin only.
func UpdateRole(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRole").(*userValidator.RoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result := database.Database.Db.Model(&models.User{}).
		Where("id = ?", reqData.UserID).
		Update("role", reqData.Role)
	if result.Error != nil {
		log.Printf("Error updating user role: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", nil)
}
