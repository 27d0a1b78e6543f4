package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/hamdo00alakhras-crypto/Hamdo/controllers/admin"
	cartControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/cart"
	orderControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/order"
	productcontroller "github.com/hamdo00alakhras-crypto/Hamdo/controllers/product"
	"github.com/hamdo00alakhras-crypto/Hamdo/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin surface.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		products := admin.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.POST("/:id/images", productcontroller.UploadProductImage(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categories := admin.Group("/categories")
		{
			categories.POST("", productcontroller.CreateCategory(db))
			categories.PUT("/:id", productcontroller.UpdateCategory(db))
			categories.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		payments := admin.Group("/payment-methods")
		{
			payments.POST("", adminController.CreatePaymentMethod(db))
			payments.GET("", adminController.GetPaymentMethods(db))
			payments.PUT("/:id", adminController.UpdatePaymentMethod(db))
			payments.DELETE("/:id", adminController.DeletePaymentMethod(db))
			payments.POST("/:id/qr", adminController.UploadPaymentQR(db))
		}

		jewelers := admin.Group("/jewelers")
		{
			jewelers.POST("", adminController.CreateJeweler(db))
			jewelers.GET("", adminController.GetJewelers(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrders(db))
			orders.PUT("/:order_id/status", orderControllers.UpdateStatusHandler(db))
		}

		designs := admin.Group("/design-requests")
		{
			designs.GET("", adminController.GetAllDesignRequests(db))
			designs.PUT("/:id", adminController.UpdateDesignRequest(db))
		}

		admin.GET("/users", adminController.GetAllUsers(db))
		admin.GET("/user-cart/:user_id", cartControllers.GetUserCartAdmin(db))
	}
}
