package cartControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

type CartItemView struct {
	ID           uint             `json:"id"`
	CartID       uint             `json:"cart_id"`
	ProductID    uint             `json:"product_id"`
	Quantity     int              `json:"quantity"`
	ProductName  string           `json:"product_name,omitempty"`
	ProductPrice *decimal.Decimal `json:"product_price,omitempty"`
	ProductImage string           `json:"product_image,omitempty"`
	LineTotal    decimal.Decimal  `json:"line_total"`
}

type CartView struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []CartItemView  `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ComputeTotal sums quantity times current catalog price over all
// lines. Lines whose product has been removed from the catalog
// contribute zero; they are not an error.
func ComputeTotal(cart *models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// LoadCartView reads the cart with live product data and shapes it for
// the API. The returned total is always freshly priced against the
// catalog; nothing is cached between calls.
func LoadCartView(db *gorm.DB, userID uint) (*CartView, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyCartView(userID), nil
		}
		return nil, err
	}
	return formatCartView(&cart), nil
}

func formatCartView(cart *models.Cart) *CartView {
	view := &CartView{
		ID:        cart.ID,
		UserID:    cart.UserID,
		UpdatedAt: cart.UpdatedAt,
		Items:     make([]CartItemView, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		iv := CartItemView{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			LineTotal: decimal.Zero,
		}
		if item.Product != nil {
			price := item.Product.Price
			iv.ProductName = item.Product.Name
			iv.ProductPrice = &price
			iv.ProductImage = item.Product.ImagePath
			iv.LineTotal = price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		view.Items = append(view.Items, iv)
	}
	view.TotalAmount = ComputeTotal(cart)
	return view
}

func emptyCartView(userID uint) *CartView {
	return &CartView{
		UserID:      userID,
		Items:       []CartItemView{},
		TotalAmount: decimal.Zero,
	}
}
