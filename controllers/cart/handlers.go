package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/middleware"
	"github.com/hamdo00alakhras-crypto/Hamdo/web"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, err := GetOrCreateCart(db, userID); err != nil {
			web.Error(c, err)
			return
		}
		view, err := LoadCartView(db, userID)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /api/cart/add
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		view, err := AddItem(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// PUT /api/cart/update/:item_id
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		view, err := UpdateItem(db, userID, uint(itemID), input.Quantity)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /api/cart/remove/:item_id
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		view, err := RemoveItem(db, userID, uint(itemID))
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /api/cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		view, err := ClearCart(db, userID)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// GET /admin/user-cart/:user_id
func GetUserCartAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		view, err := LoadCartView(db, uint(userID))
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
