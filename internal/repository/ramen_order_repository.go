package repository

import (
	"time"

	"github.com/DKessler95/limonade-webshop/internal/models"

	"gorm.io/gorm"
)

type RamenOrderRepository interface {
	Create(order *models.RamenOrder) error
	GetByID(id uint) (*models.RamenOrder, error)
	GetAll() ([]models.RamenOrder, error)
	GetByDate(day time.Time) ([]models.RamenOrder, error)
	UpdateStatus(id uint, status string) error
	ConfirmAllForDate(day time.Time) ([]models.RamenOrder, error)
	Delete(id uint) error
}

type ramenOrderRepository struct {
	db *gorm.DB
}

func NewRamenOrderRepository(db *gorm.DB) RamenOrderRepository {
	return &ramenOrderRepository{db: db}
}

func (r *ramenOrderRepository) Create(order *models.RamenOrder) error {
	return r.db.Create(order).Error
}

func (r *ramenOrderRepository) GetByID(id uint) (*models.RamenOrder, error) {
	var order models.RamenOrder
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *ramenOrderRepository) GetAll() ([]models.RamenOrder, error) {
	var orders []models.RamenOrder
	err := r.db.Order("preferred_date, created_at").Find(&orders).Error
	return orders, err
}

// GetByDate returns all reservations whose preferred date falls on the
// given calendar day, oldest booking first.
func (r *ramenOrderRepository) GetByDate(day time.Time) ([]models.RamenOrder, error) {
	start := models.DayStart(day)
	end := start.Add(24 * time.Hour)

	var orders []models.RamenOrder
	err := r.db.Where("preferred_date >= ? AND preferred_date < ?", start, end).
		Order("created_at").Find(&orders).Error
	return orders, err
}

func (r *ramenOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.RamenOrder{}).Where("id = ?", id).Update("status", status).Error
}

// ConfirmAllForDate flips every pending reservation on the given day to
// confirmed in one update and returns the transitioned records.
func (r *ramenOrderRepository) ConfirmAllForDate(day time.Time) ([]models.RamenOrder, error) {
	start := models.DayStart(day)
	end := start.Add(24 * time.Hour)

	var pending []models.RamenOrder
	err := r.db.Where("preferred_date >= ? AND preferred_date < ? AND status = ?",
		start, end, string(models.RamenPending)).Order("created_at").Find(&pending).Error
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []models.RamenOrder{}, nil
	}

	ids := make([]uint, 0, len(pending))
	for _, order := range pending {
		ids = append(ids, order.ID)
	}

	err = r.db.Model(&models.RamenOrder{}).Where("id IN ?", ids).
		Update("status", string(models.RamenConfirmed)).Error
	if err != nil {
		return nil, err
	}

	for i := range pending {
		pending[i].Status = string(models.RamenConfirmed)
	}
	return pending, nil
}

func (r *ramenOrderRepository) Delete(id uint) error {
	return r.db.Delete(&models.RamenOrder{}, id).Error
}
