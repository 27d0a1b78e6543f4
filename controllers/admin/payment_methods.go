package adminController

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

type PaymentMethodInput struct {
	MethodName  string `json:"method_name" binding:"required"`
	QRCodeImage string `json:"qr_code_image"`
	IsActive    *bool  `json:"is_active"`
	Notes       string `json:"notes"`
}

// POST /admin/payment-methods
func CreatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method := models.PaymentMethod{
			MethodName:  input.MethodName,
			QRCodeImage: input.QRCodeImage,
			IsActive:    true,
			Notes:       input.Notes,
		}
		if input.IsActive != nil {
			method.IsActive = *input.IsActive
		}

		if err := db.Create(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method"})
			return
		}
		c.JSON(http.StatusCreated, method)
	}
}

// GET /admin/payment-methods
func GetPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []models.PaymentMethod
		if err := db.Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

type PaymentMethodPatch struct {
	MethodName  *string `json:"method_name"`
	QRCodeImage *string `json:"qr_code_image"`
	IsActive    *bool   `json:"is_active"`
	Notes       *string `json:"notes"`
}

// PUT /admin/payment-methods/:id
func UpdatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method ID"})
			return
		}

		var method models.PaymentMethod
		if err := db.First(&method, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found", "code": "not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment method"})
			return
		}

		var patch PaymentMethodPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if patch.MethodName != nil {
			method.MethodName = *patch.MethodName
		}
		if patch.QRCodeImage != nil {
			method.QRCodeImage = *patch.QRCodeImage
		}
		if patch.IsActive != nil {
			method.IsActive = *patch.IsActive
		}
		if patch.Notes != nil {
			method.Notes = *patch.Notes
		}

		if err := db.Save(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
			return
		}
		c.JSON(http.StatusOK, method)
	}
}

// DELETE /admin/payment-methods/:id
func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method ID"})
			return
		}

		result := db.Delete(&models.PaymentMethod{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found", "code": "not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted successfully"})
	}
}

// UploadPaymentQR saves the transfer QR image for a payment method.
// POST /admin/payment-methods/:id/qr
func UploadPaymentQR(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method ID"})
			return
		}

		var method models.PaymentMethod
		if err := db.First(&method, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found", "code": "not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment method"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		saveDir := "static/payment_qr"
		if dir := os.Getenv("STATIC_DIR"); dir != "" {
			saveDir = filepath.Join(dir, "payment_qr")
		}
		if err := os.MkdirAll(saveDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), strings.ReplaceAll(file.Filename, " ", "_"))
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		method.QRCodeImage = fmt.Sprintf("/static/payment_qr/%s", filename)
		if err := db.Save(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
			return
		}
		c.JSON(http.StatusOK, method)
	}
}
