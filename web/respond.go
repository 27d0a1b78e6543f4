package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamdo00alakhras-crypto/Hamdo/database"
)

// Error writes a JSON error response with a stable code per error kind.
// Unrecognized errors become an opaque 500.
func Error(c *gin.Context, err error) {
	switch {
	case database.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found"})
	case errors.Is(err, database.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_quantity"})
	case errors.Is(err, database.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "empty_cart"})
	case database.IsInsufficientStock(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "insufficient_stock"})
	case errors.Is(err, database.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "invalid_status_transition"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal"})
	}
}
