package main

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

// seedDatabase inserts demo data for local development. It is a no-op
// when jewelers already exist.
func seedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Jeweler{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	jewelers := []models.Jeweler{
		{Name: "Elena Vasquez", ShopName: "Vasquez Fine Jewelry", Bio: "Third-generation goldsmith specializing in filigree work.", Phone: "+1234567001", Email: "elena@vasquezjewelry.com", Rating: 4.8},
		{Name: "Omar Khalil", ShopName: "Khalil & Sons", Bio: "Traditional and contemporary gold jewelry since 1975.", Phone: "+1234567002", Email: "omar@khalilsons.com", Rating: 4.6},
	}
	if err := db.Create(&jewelers).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Rings"},
		{Name: "Necklaces"},
		{Name: "Bracelets"},
		{Name: "Earrings"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	methods := []models.PaymentMethod{
		{MethodName: "Bank Transfer", IsActive: true, Notes: "Attach the transfer receipt at checkout."},
		{MethodName: "Cash on Delivery", IsActive: true},
	}
	if err := db.Create(&methods).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			JewelerID:     jewelers[0].ID,
			Name:          "Classic Gold Band",
			Material:      "Gold",
			Karat:         "18K",
			Weight:        4.2,
			Price:         decimal.NewFromFloat(450.00),
			StockQuantity: 12,
			Description:   "A timeless 18K gold wedding band with a polished finish.",
			Categories:    []models.Category{categories[0]},
		},
		{
			JewelerID:     jewelers[0].ID,
			Name:          "Emerald Pendant Necklace",
			Material:      "White Gold",
			Karat:         "14K",
			Weight:        6.8,
			Price:         decimal.NewFromFloat(1250.00),
			StockQuantity: 5,
			Description:   "Colombian emerald pendant on a 14K white gold chain.",
			Categories:    []models.Category{categories[1]},
		},
		{
			JewelerID:     jewelers[1].ID,
			Name:          "Silver Charm Bracelet",
			Material:      "Silver",
			Weight:        12.5,
			Price:         decimal.NewFromFloat(180.00),
			StockQuantity: 20,
			Description:   "Sterling silver bracelet with handcrafted charms.",
			Categories:    []models.Category{categories[2]},
		},
		{
			JewelerID:     jewelers[1].ID,
			Name:          "Pearl Drop Earrings",
			Material:      "Gold",
			Karat:         "22K",
			Weight:        3.1,
			Price:         decimal.NewFromFloat(620.00),
			StockQuantity: 8,
			Description:   "Freshwater pearls on 22K gold hooks.",
			Categories:    []models.Category{categories[3]},
		},
	}
	return db.Create(&products).Error
}
