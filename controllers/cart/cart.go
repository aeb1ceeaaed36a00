package cartController

import (
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	cartValidator "campapi/validators/cart"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddToCart puts a public class into the caller's cart. The (caller email,
// class id) pair is unique, so adding the same class twice conflicts.
func AddToCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCartItem").(*cartValidator.AddToCartRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var class models.PublicClass
	if err := db.Where("class_id = ?", reqData.ClassID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error fetching class %d: %v", reqData.ClassID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add item to cart!", nil)
	}

	item := models.CartItem{
		UserEmail:      email,
		ClassID:        class.ClassID,
		Title:          class.Title,
		Image:          class.Image,
		Price:          class.Price,
		InstructorName: class.InstructorName,
	}

	if err := db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Item already exists!", nil)
		}
		log.Printf("Error saving cart item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add item to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item added to cart successfully!", item)
}

// GetCart lists the caller's cart items
func GetCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var items []models.CartItem
	if err := database.Database.Db.Where("user_email = ?", email).Order("id asc").Find(&items).Error; err != nil {
		log.Printf("Error fetching cart items for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", items)
}

// RemoveFromCart deletes one of the caller's cart items by id. Deleting an
// already-removed item reports not found, which keeps retries harmless.
func RemoveFromCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	itemID, ok := c.Locals("cartItemID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart item id!", nil)
	}

	// Hard delete: a soft-deleted row would keep holding the unique
	// (user_email, class_id) slot and block re-adding the class.
	result := database.Database.Db.Unscoped().Where("user_email = ?", email).Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		log.Printf("Error deleting cart item %d: %v", itemID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove item from cart!", nil)
	}

	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item removed from cart successfully!", nil)
}
