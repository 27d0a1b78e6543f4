package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product price and stock are the single source of truth for money
// calculations; client-submitted prices are never used.
type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	JewelerID     uint            `gorm:"index;not null" json:"jeweler_id"`
	Name          string          `gorm:"size:200;not null" json:"name"`
	Material      string          `gorm:"size:50" json:"material"`
	Karat         string          `gorm:"size:10" json:"karat"`
	Weight        float64         `json:"weight"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	Description   string          `gorm:"type:text" json:"description"`
	ImagePath     string          `gorm:"size:255" json:"image_path"`
	Categories    []Category      `gorm:"many2many:product_categories" json:"categories,omitempty"`
	Images        []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

type ProductImage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ProductID    uint   `gorm:"index;not null" json:"product_id"`
	ImagePath    string `gorm:"size:255;not null" json:"image_path"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}
