package main

import (
	"fmt"
	"log"

	"github.com/DKessler95/limonade-webshop/internal/config"
	"github.com/DKessler95/limonade-webshop/internal/database"
	"github.com/DKessler95/limonade-webshop/internal/migrations"
	"github.com/DKessler95/limonade-webshop/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Product{},
		&models.Order{},
		&models.RamenOrder{},
		&models.ContactMessage{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.RamenOrder{},
		&models.ContactMessage{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed catalog and admin user
	fmt.Println("Seeding default data...")
	if err := migrations.SeedDefaultData(db, cfg); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
