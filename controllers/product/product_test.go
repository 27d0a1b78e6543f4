package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
	"github.com/hamdo00alakhras-crypto/Hamdo/testutil"
)

func newCatalogRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProducts(db))
	r.GET("/api/products/:id", GetProductByID(db))
	r.DELETE("/api/admin/products/:id", DeleteProduct(db))
	return r
}

func listProducts(t *testing.T, r *gin.Engine, url string) []models.Product {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d (%s)", url, w.Code, w.Body.String())
	}
	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("GET %s: bad response body: %v", url, err)
	}
	return products
}

func TestGetProductsFilters(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	jeweler := testutil.CreateJeweler(t, db, "filter-jeweler")
	rings := models.Category{Name: "Rings"}
	if err := db.Create(&rings).Error; err != nil {
		t.Fatalf("category create failed: %v", err)
	}

	goldRing := models.Product{
		Name: "Classic Gold Ring", Material: "Gold", Karat: "18K",
		Price: decimal.RequireFromString("450.00"), StockQuantity: 3,
		JewelerID: jeweler.ID, Categories: []models.Category{rings},
	}
	silverChain := models.Product{
		Name: "Silver Rope Chain", Material: "Silver",
		Price: decimal.RequireFromString("90.00"), StockQuantity: 8,
		JewelerID: jeweler.ID,
	}
	for _, p := range []*models.Product{&goldRing, &silverChain} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("product create failed: %v", err)
		}
	}

	r := newCatalogRouter(db)

	if got := listProducts(t, r, "/api/products"); len(got) != 2 {
		t.Errorf("unfiltered: expected 2 products, got %d", len(got))
	}

	got := listProducts(t, r, "/api/products?material=gold")
	if len(got) != 1 || got[0].Name != "Classic Gold Ring" {
		t.Errorf("material filter: expected only the gold ring, got %+v", got)
	}

	got = listProducts(t, r, "/api/products?category_id="+itoa(rings.ID))
	if len(got) != 1 || got[0].ID != goldRing.ID {
		t.Errorf("category filter: expected only the ring, got %+v", got)
	}

	got = listProducts(t, r, "/api/products?max_price=100")
	if len(got) != 1 || got[0].ID != silverChain.ID {
		t.Errorf("max_price filter: expected only the chain, got %+v", got)
	}

	got = listProducts(t, r, "/api/products?search=rope")
	if len(got) != 1 || got[0].ID != silverChain.ID {
		t.Errorf("search filter: expected only the chain, got %+v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products?category_id=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad category_id: expected 400, got %d", w.Code)
	}
}

func TestDeleteProductHidesFromCatalog(t *testing.T) {
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	product := testutil.CreateProduct(t, db, "Short Lived Ring", "75.00", 2)
	r := newCatalogRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/products/"+itoa(product.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/"+itoa(product.ID), nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted product fetch: expected 404, got %d", w.Code)
	}

	if got := listProducts(t, r, "/api/products"); len(got) != 0 {
		t.Errorf("deleted product should not be listed, got %d", len(got))
	}

	// Deleting again reports not found.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/products/"+itoa(product.ID), nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
