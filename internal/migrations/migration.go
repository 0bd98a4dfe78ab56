package migrations

import (
	"log"

	"github.com/DKessler95/limonade-webshop/internal/config"
	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultData creates the storefront catalog and the admin user
// when the database is empty. Safe to run on every startup.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdminUser(db, cfg); err != nil {
		return err
	}
	return seedProducts(db)
}

func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	adminRepo := repository.NewAdminRepository(db)

	existing, err := adminRepo.GetByUsername(cfg.AdminUsername)
	if err == nil && existing != nil {
		return nil
	}

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set; skipping admin user seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username: cfg.AdminUsername,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := adminRepo.Create(admin); err != nil {
		return err
	}

	log.Printf("Admin user %q created", cfg.AdminUsername)
	return nil
}

func seedProducts(db *gorm.DB) error {
	productRepo := repository.NewProductRepository(db)

	existing, err := productRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	log.Println("Seeding storefront products...")
	products := []*models.Product{
		{
			Name:        "Vlierbloesem Siroop",
			Description: "Handgeplukt bij de Hamburgervijver. 30 verse schermen per liter voor die authentieke zomersmaak. Perfect voor limonade of cocktails.",
			Price:       decimal.RequireFromString("6.99"),
			Stock:       8,
			MaxStock:    15,
			Category:    string(models.CategorySyrup),
			ImageURL:    "/images/normaal_voorkant.png",
			Featured:    true,
			Badges:      []string{"Huistuin delicatesse"},
		},
		{
			Name:        "Rozen Siroop",
			Description: "Delicate rozenblaadjes uit onze eigen tuin aan de Star Numanstraat. Een subtiele bloemensmaak die perfect past bij thee of prosecco.",
			Price:       decimal.RequireFromString("6.99"),
			Stock:       5,
			MaxStock:    15,
			Category:    string(models.CategorySyrup),
			ImageURL:    "/images/rozen_voorkant.png",
			Featured:    true,
			Badges:      []string{"Seizoenspecialiteit"},
		},
		{
			Name:        "Chicken Shoyu Ramen",
			Description: "Exclusieve Chicken Shoyu Ramen voor 6 personen. Verse lokale ingrediënten, zelfgemaakte noedels en inclusief toppings. €12.50 per persoon.",
			Price:       decimal.RequireFromString("12.50"),
			Stock:       6,
			MaxStock:    6,
			Category:    string(models.CategoryRamen),
			ImageURL:    "/images/chicken-shoyu-ramen.jpg",
			Featured:    true,
			Badges:      []string{"Premium"},
		},
	}

	for _, product := range products {
		if err := productRepo.Create(product); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d products", len(products))
	return nil
}
