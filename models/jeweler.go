package models

import "time"

type Jeweler struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ShopName  string    `gorm:"size:100" json:"shop_name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:100" json:"email"`
	Rating    float64   `gorm:"default:0" json:"rating"`
	Products  []Product `gorm:"foreignKey:JewelerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
