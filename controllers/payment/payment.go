package paymentController

import (
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	"campapi/utils"
	paymentValidator "campapi/validators/payment"
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePaymentIntent asks the payment provider for an intent and hands the
// client secret back. No local state is written.
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*paymentValidator.IntentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	clientSecret, err := utils.CreatePaymentIntent(reqData.Price)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created successfully!", fiber.Map{
		"clientSecret": clientSecret,
	})
}

// CompletePayment records a confirmed payment. The four related writes run
// in one transaction so a failure partway leaves nothing applied: the public
// copy's counters move, the payment is recorded, the cart item goes away and
// an enrollment snapshot is stored.
func CompletePayment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*paymentValidator.CompletePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	// Move both counters in a single atomic update. The seats guard keeps a
	// full class from going negative.
	result := tx.Model(&models.PublicClass{}).
		Where("class_id = ? AND seats > 0", reqData.ClassID).
		UpdateColumns(map[string]interface{}{
			"students": gorm.Expr("students + 1"),
			"seats":    gorm.Expr("seats - 1"),
		})
	if result.Error != nil {
		tx.Rollback()
		log.Printf("Error updating class counters: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		var class models.PublicClass
		err := database.Database.Db.Where("class_id = ?", reqData.ClassID).First(&class).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "No seats left for this class!", nil)
	}

	var class models.PublicClass
	if err := tx.Where("class_id = ?", reqData.ClassID).First(&class).Error; err != nil {
		tx.Rollback()
		log.Printf("Error fetching class %d: %v", reqData.ClassID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	meta := map[string]interface{}{
		"paymentIntentId": reqData.PaymentIntentID,
	}
	for k, v := range reqData.Extra {
		meta[k] = v
	}
	rawMeta, err := json.Marshal(meta)
	if err != nil {
		tx.Rollback()
		log.Printf("Error encoding provider meta: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	payment := models.Payment{
		TransactionID: uuid.NewString(),
		UserEmail:     email,
		ClassID:       reqData.ClassID,
		CartItemID:    reqData.CartItemID,
		ClassTitle:    class.Title,
		Amount:        reqData.Amount,
		ProviderMeta:  rawMeta,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	// Hard delete so the unique (user_email, class_id) slot frees up
	deleteResult := tx.Unscoped().Where("user_email = ?", email).Delete(&models.CartItem{}, reqData.CartItemID)
	if deleteResult.Error != nil {
		tx.Rollback()
		log.Printf("Error removing cart item %d: %v", reqData.CartItemID, deleteResult.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	enrollment := models.Enrollment{
		UserEmail:      email,
		ClassID:        class.ClassID,
		ClassTitle:     class.Title,
		Image:          class.Image,
		InstructorName: class.InstructorName,
		AmountPaid:     reqData.Amount,
		PaymentID:      payment.ID,
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	go func(to, classTitle string, amount float64) {
		if err := utils.SendEnrollmentConfirmation(to, classTitle, amount); err != nil {
			log.Printf("Error sending enrollment confirmation to %s: %v", to, err)
		}
	}(email, class.Title, reqData.Amount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed successfully!", fiber.Map{
		"insertResult": payment,
		"deleteResult": fiber.Map{
			"deletedCount": deleteResult.RowsAffected,
		},
	})
}

// GetEnrolled lists the caller's payment records
func GetEnrolled(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.Where("user_email = ?", email).Order("id asc").Find(&payments).Error; err != nil {
		log.Printf("Error fetching payments for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled classes fetched successfully!", payments)
}
