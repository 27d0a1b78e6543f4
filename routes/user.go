package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	aiControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/ai"
	cartControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/cart"
	orderControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/order"
	productcontroller "github.com/hamdo00alakhras-crypto/Hamdo/controllers/product"
	"github.com/hamdo00alakhras-crypto/Hamdo/middleware"
)

// SetupCatalogRoutes registers the public product browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/api/products", productcontroller.GetProducts(db))
	r.GET("/api/products/:id", productcontroller.GetProductByID(db))
	r.GET("/api/categories", productcontroller.GetAllCategories(db))
}

// SetupUserRoutes registers the JWT-protected cart, order, and AI
// design endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/add", cartControllers.AddItemHandler(db))
		cart.PUT("/update/:item_id", cartControllers.UpdateItemHandler(db))
		cart.DELETE("/remove/:item_id", cartControllers.RemoveItemHandler(db))
		cart.DELETE("/clear", cartControllers.ClearCartHandler(db))
	}

	// Websocket clients cannot set custom headers, so the order feed
	// sits outside the API-key group.
	r.GET("/orders/ws", orderControllers.OrderFeedHandler)

	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.GET("", orderControllers.GetMyOrders(db))
		orders.GET("/:order_id", orderControllers.GetOrderByID(db))
		orders.POST("/checkout", orderControllers.CheckoutHandler(db))
	}

	ai := r.Group("/api/ai")
	ai.Use(middleware.ValidateToken)
	{
		ai.POST("/generate-design", aiControllers.GenerateDesign(db))
		ai.GET("/my-designs", aiControllers.GetMyDesigns(db))
		ai.POST("/design-requests", aiControllers.CreateDesignRequest(db))
		ai.GET("/design-requests", aiControllers.GetMyDesignRequests(db))
	}
}
