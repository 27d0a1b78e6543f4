package orderControllers

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	cartControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/cart"
	"github.com/hamdo00alakhras-crypto/Hamdo/database"
	"github.com/hamdo00alakhras-crypto/Hamdo/models"
	"github.com/hamdo00alakhras-crypto/Hamdo/testutil"
)

func TestCheckoutHappyPath(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateUser(t, db, "buyer")
	product := testutil.CreateProduct(t, db, "Gold Ring", "100.00", 5)

	if _, err := cartControllers.AddItem(db, user.ID, product.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	order, err := Checkout(db, user.ID, CheckoutRequest{ShippingAddress: "12 Souk Street"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.Status != models.OrderStatusPending {
		t.Errorf("expected status pending, got %s", order.Status)
	}
	if order.OrderRef == "" {
		t.Error("expected a non-empty order reference")
	}
	want := decimal.RequireFromString("200.00")
	if !order.TotalAmount.Equal(want) {
		t.Errorf("expected total %s, got %s", want, order.TotalAmount)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if !item.UnitPrice.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected unit price 100.00, got %s", item.UnitPrice)
	}
	if !item.Subtotal.Equal(want) {
		t.Errorf("expected subtotal %s, got %s", want, item.Subtotal)
	}
	if item.ProductName != "Gold Ring" {
		t.Errorf("expected captured product name, got %q", item.ProductName)
	}

	var fresh models.Product
	if err := db.First(&fresh, product.ID).Error; err != nil {
		t.Fatalf("product reload failed: %v", err)
	}
	if fresh.StockQuantity != 3 {
		t.Errorf("expected stock 3 after checkout, got %d", fresh.StockQuantity)
	}

	view, err := cartControllers.LoadCartView(db, user.ID)
	if err != nil {
		t.Fatalf("cart reload failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("cart should be emptied by checkout, got %d lines", len(view.Items))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	noCart := testutil.CreateUser(t, db, "nocart")
	if _, err := Checkout(db, noCart.ID, CheckoutRequest{}); !errors.Is(err, database.ErrEmptyCart) {
		t.Errorf("no cart row: expected ErrEmptyCart, got %v", err)
	}

	emptied := testutil.CreateUser(t, db, "emptied")
	product := testutil.CreateProduct(t, db, "Hoop Earrings", "30.00", 5)
	view, err := cartControllers.AddItem(db, emptied.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cartControllers.RemoveItem(db, emptied.ID, view.Items[0].ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := Checkout(db, emptied.ID, CheckoutRequest{}); !errors.Is(err, database.ErrEmptyCart) {
		t.Errorf("cart with no lines: expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutInsufficientStockRollsBackEverything(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateUser(t, db, "mixed")
	plenty := testutil.CreateProduct(t, db, "Plenty Ring", "50.00", 10)
	scarce := testutil.CreateProduct(t, db, "Scarce Necklace", "500.00", 1)

	if _, err := cartControllers.AddItem(db, user.ID, plenty.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cartControllers.AddItem(db, user.ID, scarce.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Stock drops between add-to-cart and checkout.
	if err := db.Model(&models.Product{}).Where("id = ?", scarce.ID).
		Update("stock_quantity", 0).Error; err != nil {
		t.Fatalf("stock update failed: %v", err)
	}

	_, err := Checkout(db, user.ID, CheckoutRequest{})
	if !database.IsInsufficientStock(err) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	var stockErr *database.InsufficientStockError
	errors.As(err, &stockErr)
	if stockErr.ProductID != scarce.ID {
		t.Errorf("error should name the short product %d, got %d", scarce.ID, stockErr.ProductID)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("no order may exist after a failed checkout, found %d", orders)
	}

	var freshPlenty models.Product
	db.First(&freshPlenty, plenty.ID)
	if freshPlenty.StockQuantity != 10 {
		t.Errorf("stock of the sufficient product must be untouched, got %d", freshPlenty.StockQuantity)
	}

	view, err := cartControllers.LoadCartView(db, user.ID)
	if err != nil {
		t.Fatalf("cart reload failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Errorf("cart must survive a failed checkout, got %d lines", len(view.Items))
	}
}

func TestCheckoutCapturesPriceAtCheckoutTime(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateUser(t, db, "pricedrift")
	product := testutil.CreateProduct(t, db, "Drifting Ring", "100.00", 5)

	if _, err := cartControllers.AddItem(db, user.ID, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Price changes while the product sits in the cart.
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("150.00")).Error; err != nil {
		t.Fatalf("price update failed: %v", err)
	}

	order, err := Checkout(db, user.ID, CheckoutRequest{})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	want := decimal.RequireFromString("150.00")
	if !order.Items[0].UnitPrice.Equal(want) {
		t.Errorf("checkout must price from the catalog: expected %s, got %s", want, order.Items[0].UnitPrice)
	}
}

func TestOrderTotalsFrozenAfterCheckout(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateUser(t, db, "frozen")
	product := testutil.CreateProduct(t, db, "Frozen Ring", "100.00", 5)

	if _, err := cartControllers.AddItem(db, user.ID, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, user.ID, CheckoutRequest{})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// A later catalog change must not leak into the placed order.
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("999.00")).Error; err != nil {
		t.Fatalf("price update failed: %v", err)
	}

	var reloaded models.Order
	if err := db.Preload("Items").First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("order reload failed: %v", err)
	}
	if !reloaded.TotalAmount.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("expected frozen total 200.00, got %s", reloaded.TotalAmount)
	}
	if !reloaded.Items[0].UnitPrice.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected frozen unit price 100.00, got %s", reloaded.Items[0].UnitPrice)
	}
}

func TestConcurrentCheckoutLastUnit(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	first := testutil.CreateUser(t, db, "racer-one")
	second := testutil.CreateUser(t, db, "racer-two")
	product := testutil.CreateProduct(t, db, "Last Unit Ring", "700.00", 1)

	if _, err := cartControllers.AddItem(db, first.ID, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cartControllers.AddItem(db, second.ID, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, userID := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, results[i] = Checkout(db, userID, CheckoutRequest{})
		}(i, userID)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case database.IsInsufficientStock(err):
			losses++
		default:
			t.Errorf("unexpected checkout error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("expected exactly one winner and one stock failure, got %d wins %d losses", wins, losses)
	}

	var fresh models.Product
	db.First(&fresh, product.ID)
	if fresh.StockQuantity != 0 {
		t.Errorf("expected stock 0 after the race, got %d", fresh.StockQuantity)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 1 {
		t.Errorf("expected exactly one order, found %d", orders)
	}
}

func TestUpdateStatusEnforcesLifecycle(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateUser(t, db, "lifecycle")
	product := testutil.CreateProduct(t, db, "Lifecycle Ring", "80.00", 5)
	if _, err := cartControllers.AddItem(db, user.ID, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, user.ID, CheckoutRequest{})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// Skipping a stage is rejected.
	if _, err := UpdateStatus(db, order.ID, models.OrderStatusDelivered); !errors.Is(err, database.ErrInvalidStatusTransition) {
		t.Errorf("pending to delivered: expected ErrInvalidStatusTransition, got %v", err)
	}

	for _, next := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := UpdateStatus(db, order.ID, next)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
		if updated.Status != next {
			t.Errorf("expected status %s, got %s", next, updated.Status)
		}
	}

	// Delivered is terminal.
	if _, err := UpdateStatus(db, order.ID, models.OrderStatusPending); !errors.Is(err, database.ErrInvalidStatusTransition) {
		t.Errorf("delivered to pending: expected ErrInvalidStatusTransition, got %v", err)
	}

	if _, err := UpdateStatus(db, 99999, models.OrderStatusProcessing); !errors.Is(err, database.ErrOrderNotFound) {
		t.Errorf("unknown order: expected ErrOrderNotFound, got %v", err)
	}
}

func TestCancellationWindow(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateUser(t, db, "canceller")
	product := testutil.CreateProduct(t, db, "Cancel Ring", "80.00", 5)
	if _, err := cartControllers.AddItem(db, user.ID, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, user.ID, CheckoutRequest{})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	updated, err := UpdateStatus(db, order.ID, models.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("cancel from pending failed: %v", err)
	}
	if updated.Status != models.OrderStatusCancelled {
		t.Errorf("expected cancelled, got %s", updated.Status)
	}

	// Cancelled is terminal too.
	if _, err := UpdateStatus(db, order.ID, models.OrderStatusProcessing); !errors.Is(err, database.ErrInvalidStatusTransition) {
		t.Errorf("cancelled to processing: expected ErrInvalidStatusTransition, got %v", err)
	}
}
