package paymentController_test

import (
	"bytes"
	"campapi/config"
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	cartRoutes "campapi/routers/cartRoutes"
	classRoutes "campapi/routers/classRoutes"
	paymentRoutes "campapi/routers/paymentRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPaymentApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:           "test-secret",
		PaymentSecretKey: "defaultSecret",
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.PublicClass{},
		&models.CartItem{},
		&models.Payment{},
		&models.Enrollment{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	classRoutes.SetupClassRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	return app
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(email, "", "")
	require.NoError(t, err)
	return token
}

func TestCreatePaymentIntentUnconfigured(t *testing.T) {
	app := setupPaymentApp(t)

	// With the placeholder provider key no upstream call is attempted
	resp, err := app.Test(jsonRequest("POST", "/create-payment-intent", fiber.Map{"price": 50}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestCreatePaymentIntentRejectsZeroPrice(t *testing.T) {
	app := setupPaymentApp(t)

	resp, err := app.Test(jsonRequest("POST", "/create-payment-intent", fiber.Map{"price": 0}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCompletePaymentMovesCounters(t *testing.T) {
	app := setupPaymentApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.PublicClass{
		ClassID: 1, Title: "Pottery", Seats: 10, Students: 0, Price: 50,
	}).Error)
	item := models.CartItem{UserEmail: "bob@example.com", ClassID: 1, Title: "Pottery", Price: 50}
	require.NoError(t, db.Create(&item).Error)

	token := tokenFor(t, "bob@example.com")

	resp, err := app.Test(jsonRequest("POST", "/api/payments", fiber.Map{
		"cartItemId":      item.ID,
		"classId":         1,
		"amount":          50,
		"paymentIntentId": "pi_123",
	}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var class models.PublicClass
	require.NoError(t, db.Where("class_id = ?", 1).First(&class).Error)
	assert.Equal(t, 9, class.Seats)
	assert.Equal(t, 1, class.Students)

	// Cart item is gone
	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&cartCount).Error)
	assert.Equal(t, int64(0), cartCount)

	// One payment, one enrollment snapshot
	var payment models.Payment
	require.NoError(t, db.Where("user_email = ?", "bob@example.com").First(&payment).Error)
	assert.Equal(t, uint(1), payment.ClassID)
	assert.Equal(t, 50.0, payment.Amount)
	assert.NotEmpty(t, payment.TransactionID)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_email = ?", "bob@example.com").First(&enrollment).Error)
	assert.Equal(t, uint(1), enrollment.ClassID)
	assert.Equal(t, "Pottery", enrollment.ClassTitle)
	assert.Equal(t, payment.ID, enrollment.PaymentID)
}

func TestCompletePaymentNoSeatsLeft(t *testing.T) {
	app := setupPaymentApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.PublicClass{
		ClassID: 1, Title: "Full House", Seats: 0, Students: 12,
	}).Error)
	item := models.CartItem{UserEmail: "bob@example.com", ClassID: 1}
	require.NoError(t, db.Create(&item).Error)

	resp, err := app.Test(jsonRequest("POST", "/api/payments", fiber.Map{
		"cartItemId": item.ID,
		"classId":    1,
		"amount":     50,
	}, tokenFor(t, "bob@example.com")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Nothing was applied: counters untouched, cart intact, no records
	var class models.PublicClass
	require.NoError(t, db.Where("class_id = ?", 1).First(&class).Error)
	assert.Equal(t, 0, class.Seats)
	assert.Equal(t, 12, class.Students)

	var cartCount, paymentCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartCount).Error)
	require.NoError(t, db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Equal(t, int64(1), cartCount)
	assert.Equal(t, int64(0), paymentCount)
}

func TestCompletePaymentUnknownClass(t *testing.T) {
	app := setupPaymentApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/payments", fiber.Map{
		"cartItemId": 1,
		"classId":    42,
		"amount":     50,
	}, tokenFor(t, "bob@example.com")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEnrolledIsCallerScoped(t *testing.T) {
	app := setupPaymentApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Payment{TransactionID: "t1", UserEmail: "bob@example.com", ClassID: 1, Amount: 50}).Error)
	require.NoError(t, db.Create(&models.Payment{TransactionID: "t2", UserEmail: "carol@example.com", ClassID: 2, Amount: 30}).Error)

	resp, err := app.Test(jsonRequest("GET", "/api/enrolled", nil, tokenFor(t, "bob@example.com")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Payment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "t1", envelope.Data[0].TransactionID)
}

// Full path: submit a class, approve it, cart it, pay for it.
func TestEnrollmentEndToEnd(t *testing.T) {
	app := setupPaymentApp(t)
	db := database.Database.Db

	resp, err := app.Test(jsonRequest("POST", "/api/classes", fiber.Map{
		"title":           "Intro",
		"seats":           10,
		"price":           "50",
		"instructorName":  "Ivan",
		"instructorEmail": "ivan@example.com",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var class models.Class
	require.NoError(t, db.Where("title = ?", "Intro").First(&class).Error)
	assert.Equal(t, 10, class.Seats)
	assert.Equal(t, 50.0, class.Price)
	assert.Equal(t, models.ClassPending, class.Status)

	resp, err = app.Test(jsonRequest("PATCH", fmt.Sprintf("/api/classes/%d", class.ID), fiber.Map{"status": "approved"}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	token := tokenFor(t, "bob@example.com")

	resp, err = app.Test(jsonRequest("POST", "/api/classes/cart", fiber.Map{"classId": class.ID}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var item models.CartItem
	require.NoError(t, db.Where("user_email = ?", "bob@example.com").First(&item).Error)

	resp, err = app.Test(jsonRequest("POST", "/api/payments", fiber.Map{
		"cartItemId": item.ID,
		"classId":    class.ID,
		"amount":     50,
	}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var publicCopy models.PublicClass
	require.NoError(t, db.Where("class_id = ?", class.ID).First(&publicCopy).Error)
	assert.Equal(t, 9, publicCopy.Seats)
	assert.Equal(t, 1, publicCopy.Students)

	var cartCount, paymentCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartCount).Error)
	require.NoError(t, db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Equal(t, int64(0), cartCount)
	assert.Equal(t, int64(1), paymentCount)
}
