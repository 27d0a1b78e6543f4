package cartControllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/database"
	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

// GetOrCreateCart returns the user's cart, creating an empty one on
// first access. The unique index on user_id keeps this idempotent even
// when two requests race on the first insert.
func GetOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if createErr := db.Create(&cart).Error; createErr != nil {
		// Lost the race to a concurrent first access; the row exists now.
		if fetchErr := db.Where("user_id = ?", userID).First(&cart).Error; fetchErr != nil {
			return nil, createErr
		}
	}
	return &cart, nil
}

// AddItem puts quantity units of a product into the user's cart. Adding
// a product already present increments its line instead of duplicating
// it. The stock check here is a convenience only; checkout re-validates
// against live stock inside the transaction.
func AddItem(db *gorm.DB, userID, productID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, database.ErrInvalidQuantity
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrProductNotFound
		}
		return nil, err
	}
	if product.StockQuantity < quantity {
		return nil, &database.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.StockQuantity,
		}
	}

	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := touchCart(db, cart.ID); err != nil {
		return nil, err
	}
	return LoadCartView(db, userID)
}

// UpdateItem sets a line's quantity. A zero or negative quantity
// deletes the line; that is a product decision, not an error.
func UpdateItem(db *gorm.DB, userID, itemID uint, quantity int) (*CartView, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrCartNotFound
		}
		return nil, err
	}

	var item models.CartItem
	if err := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrCartItemNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	}

	if err := touchCart(db, cart.ID); err != nil {
		return nil, err
	}
	return LoadCartView(db, userID)
}

// RemoveItem deletes one line from the user's cart.
func RemoveItem(db *gorm.DB, userID, itemID uint) (*CartView, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrCartNotFound
		}
		return nil, err
	}

	result := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&models.CartItem{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrCartItemNotFound
	}

	if err := touchCart(db, cart.ID); err != nil {
		return nil, err
	}
	return LoadCartView(db, userID)
}

// ClearCart deletes every line. Clearing a user with no cart row is a
// no-op that returns an empty view.
func ClearCart(db *gorm.DB, userID uint) (*CartView, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyCartView(userID), nil
		}
		return nil, err
	}

	if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	if err := touchCart(db, cart.ID); err != nil {
		return nil, err
	}
	return LoadCartView(db, userID)
}

func touchCart(db *gorm.DB, cartID uint) error {
	return db.Model(&models.Cart{}).Where("id = ?", cartID).
		UpdateColumn("updated_at", time.Now()).Error
}
