package orderControllers

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hamdo00alakhras-crypto/Hamdo/database"
	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

type CheckoutRequest struct {
	PaymentMethodID *uint  `json:"payment_method_id"`
	ShippingAddress string `json:"shipping_address"`
	TransferReceipt string `json:"transfer_receipt"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts the user's cart into an immutable order. The whole
// sequence runs in one transaction: every catalog row is locked and
// validated before anything is written, unit prices are captured from
// the catalog (never from the client), stock is decremented with a
// conditional update, and the cart is emptied. Any failure rolls back
// every write.
func Checkout(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return database.ErrEmptyCart
		}

		// Lock rows in a stable order so two concurrent checkouts
		// touching the same products cannot deadlock.
		sort.Slice(cart.Items, func(i, j int) bool {
			return cart.Items[i].ProductID < cart.Items[j].ProductID
		})

		// Validation pass: lock every product row, fail fast on the
		// first short line before any mutation happens.
		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return database.ErrProductNotFound
				}
				return err
			}

			if product.StockQuantity < line.Quantity {
				return &database.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.StockQuantity,
				}
			}

			unitPrice := product.Price
			subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)

			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   unitPrice,
				Subtotal:    subtotal,
			})
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			PaymentMethodID: req.PaymentMethodID,
			Status:          models.OrderStatusPending,
			TotalAmount:     total,
			ShippingAddress: req.ShippingAddress,
			TransferReceipt: req.TransferReceipt,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Conditional decrement backs up the row locks: zero rows
		// affected means someone got the stock first.
		for i, line := range cart.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &database.InsufficientStockError{
					ProductID:   line.ProductID,
					ProductName: orderItems[i].ProductName,
					Requested:   line.Quantity,
				}
			}
		}

		// The cart row itself survives for reuse; only its lines go.
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
