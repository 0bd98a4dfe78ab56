package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description" gorm:"not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock        int             `json:"stock" gorm:"not null;default:0"`
	MaxStock     int             `json:"maxStock" gorm:"not null;default:20"`
	Category     string          `json:"category" gorm:"not null"` // syrup, ramen
	ImageURL     string          `json:"imageUrl"`
	Featured     bool            `json:"featured" gorm:"default:false"`
	LimitedStock bool            `json:"limitedStock" gorm:"default:false"`
	Badges       []string        `json:"badges" gorm:"serializer:json"` // e.g. "Seizoenspecialiteit", "Huistuin delicatesse", "Premium"
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}

type ProductCategory string

const (
	CategorySyrup ProductCategory = "syrup"
	CategoryRamen ProductCategory = "ramen"
)
