package orderControllers

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hamdo00alakhras-crypto/Hamdo/database"
	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

// UpdateStatus moves an order along its lifecycle. Transitions outside
// the forward state machine are rejected; the row is locked so two
// administrators cannot race the same transition.
func UpdateStatus(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrOrderNotFound
			}
			return err
		}

		if !order.Status.CanTransitionTo(next) {
			return database.ErrInvalidStatusTransition
		}

		order.Status = next
		return tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", next).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
