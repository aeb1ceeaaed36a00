package classController

import (
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	classValidator "campapi/validators/class"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateClass stores a new class submission in the managed set. Every class
// starts pending with zero students.
func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*classValidator.CreateClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	newClass := models.Class{
		Title:           reqData.Title,
		Seats:           reqData.Seats,
		Price:           reqData.Price,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Status:          models.ClassPending,
		Feedback:        "",
		Students:        0,
	}

	if err := database.Database.Db.Create(&newClass).Error; err != nil {
		log.Printf("Error saving class to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "New class added successfully!", newClass)
}

// GetAllClasses lists the public (approved) catalog
func GetAllClasses(c *fiber.Ctx) error {
	var classes []models.PublicClass
	if err := database.Database.Db.Order("id asc").Find(&classes).Error; err != nil {
		log.Printf("Error fetching public classes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetManagedClasses lists the managed set regardless of status. Admin only.
func GetManagedClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Order("id asc").Find(&classes).Error; err != nil {
		log.Printf("Error fetching managed classes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// UpdateClassStatus applies a partial status/feedback update to the managed
// record. Feedback is kept in sync with the public copy. Approval
// materializes the class into the public catalog exactly once; re-approving
// an already-copied class is a no-op. Denial never copies.
func UpdateClassStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdate").(*classValidator.UpdateClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.First(&class, reqData.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error fetching class %d: %v", reqData.ClassID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
		class.Status = *reqData.Status
	}
	if reqData.Feedback != nil {
		updates["feedback"] = *reqData.Feedback
		class.Feedback = *reqData.Feedback
	}

	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	if err := tx.Model(&models.Class{}).Where("id = ?", class.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating class %d: %v", class.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	// Keep the public copy's feedback in sync. Zero matched rows just means
	// the class was never approved.
	if reqData.Feedback != nil {
		if err := tx.Model(&models.PublicClass{}).
			Where("class_id = ?", class.ID).
			Update("feedback", *reqData.Feedback).Error; err != nil {
			tx.Rollback()
			log.Printf("Error syncing feedback for class %d: %v", class.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
		}
	}

	if reqData.Status != nil && *reqData.Status == models.ClassApproved {
		var existing models.PublicClass
		err := tx.Where("class_id = ?", class.ID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			log.Printf("Error checking public copy for class %d: %v", class.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			publicCopy := models.PublicClass{
				ClassID:         class.ID,
				Title:           class.Title,
				Seats:           class.Seats,
				Price:           class.Price,
				Image:           class.Image,
				InstructorName:  class.InstructorName,
				InstructorEmail: class.InstructorEmail,
				Feedback:        class.Feedback,
				Students:        class.Students,
			}
			if err := tx.Create(&publicCopy).Error; err != nil {
				tx.Rollback()
				log.Printf("Error copying class %d to public catalog: %v", class.ID, err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing class update: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", nil)
}

// DeleteClass removes the managed record and its public copy together
func DeleteClass(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	result := tx.Delete(&models.Class{}, classID)
	if result.Error != nil {
		tx.Rollback()
		log.Printf("Error deleting class %d: %v", classID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if err := tx.Where("class_id = ?", classID).Delete(&models.PublicClass{}).Error; err != nil {
		tx.Rollback()
		log.Printf("Error deleting public copy of class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing class delete: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully!", nil)
}
