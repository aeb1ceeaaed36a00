package main

import (
	"campapi/config"
	"campapi/database"
	authRoutes "campapi/routers/authRoutes"
	cartRoutes "campapi/routers/cartRoutes"
	classRoutes "campapi/routers/classRoutes"
	paymentRoutes "campapi/routers/paymentRoutes"
	userRoutes "campapi/routers/userRoutes"
	"campapi/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	defer database.CloseDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",      // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Running...")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	utils.InitializeReviewScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
