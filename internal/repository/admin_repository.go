package repository

import (
	"github.com/DKessler95/limonade-webshop/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *models.AdminUser) error
	GetByUsername(username string) (*models.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
