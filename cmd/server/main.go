package main

import (
	"log"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/config"
	"github.com/DKessler95/limonade-webshop/internal/database"
	"github.com/DKessler95/limonade-webshop/internal/handlers"
	"github.com/DKessler95/limonade-webshop/internal/migrations"
	"github.com/DKessler95/limonade-webshop/internal/redis"
	"github.com/DKessler95/limonade-webshop/internal/repository"
	"github.com/DKessler95/limonade-webshop/internal/services"
	"github.com/DKessler95/limonade-webshop/pkg/mailer"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed catalog and admin user on first run
	if err := migrations.SeedDefaultData(db, cfg); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize the mail relay client
	mailClient := mailer.NewClient(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailAPISecret, cfg.MailFromEmail, cfg.MailFromName)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ramenRepo := repository.NewRamenOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	mailerService := services.NewMailerService(mailClient, cfg.AdminEmail)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, mailerService)
	ramenService := services.NewRamenService(ramenRepo, mailerService, cfg.RamenCapacity, cfg.RamenThreshold)
	contactService := services.NewContactService(contactRepo, mailerService)
	authService := services.NewAuthService(adminRepo, redisClient, time.Duration(cfg.SessionTTL)*time.Second)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	ramenHandler := handlers.NewRamenHandler(ramenService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(authService, mailerService, cfg.SessionTTL)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		// Storefront
		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.POST("/orders", orderHandler.CreateOrder)
		api.POST("/orders/ramen", ramenHandler.SubmitReservation)
		api.GET("/ramen/availability/:date", ramenHandler.GetAvailability)
		api.GET("/ramen-orders", ramenHandler.GetOrders)
		api.POST("/contact", contactHandler.CreateMessage)

		// Admin authentication
		api.POST("/admin/login", adminHandler.Login)
		api.POST("/admin/logout", adminHandler.Logout)
		api.GET("/admin/status", adminHandler.Status)

		// Admin dashboard
		admin := api.Group("", adminHandler.RequireAdmin)
		{
			admin.POST("/products", productHandler.CreateProduct)
			admin.PATCH("/products/:id", productHandler.UpdateProduct)
			admin.PATCH("/products/:id/stock", productHandler.UpdateStock)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)

			admin.GET("/orders", orderHandler.GetOrders)
			admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
			admin.DELETE("/orders/:id", orderHandler.DeleteOrder)
			admin.POST("/orders/:id/send-confirmation", orderHandler.SendConfirmation)

			admin.POST("/ramen-orders/confirm", ramenHandler.ConfirmForDate)
			admin.PATCH("/ramen-orders/:id/status", ramenHandler.UpdateStatus)
			admin.DELETE("/ramen-orders/:id", ramenHandler.DeleteOrder)
			admin.POST("/ramen-orders/:id/send-confirmation", ramenHandler.SendConfirmation)

			admin.GET("/contact-messages", contactHandler.GetMessages)
			admin.PATCH("/contact-messages/:id/status", contactHandler.UpdateStatus)

			admin.POST("/test-email", adminHandler.SendTestEmail)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
