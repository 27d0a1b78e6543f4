package adminController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

// GET /admin/design-requests
func GetAllDesignRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.DesignRequest
		if err := db.Order("request_date DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch design requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// DesignRequestPatch is the review surface: assign a jeweler, quote a
// price, move the status.
type DesignRequestPatch struct {
	JewelerID         *uint    `json:"jeweler_id"`
	JewelerPriceOffer *float64 `json:"jeweler_price_offer"`
	Status            *string  `json:"status"`
}

// PUT /admin/design-requests/:id
func UpdateDesignRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid design request ID"})
			return
		}

		var request models.DesignRequest
		if err := db.First(&request, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Design request not found", "code": "not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch design request"})
			return
		}

		var patch DesignRequestPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if patch.Status != nil {
			switch models.DesignRequestStatus(*patch.Status) {
			case models.DesignRequestPending, models.DesignRequestAccepted,
				models.DesignRequestRejected, models.DesignRequestCompleted:
				request.Status = models.DesignRequestStatus(*patch.Status)
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid design request status"})
				return
			}
		}
		if patch.JewelerID != nil {
			request.JewelerID = patch.JewelerID
		}
		if patch.JewelerPriceOffer != nil {
			request.JewelerPriceOffer = patch.JewelerPriceOffer
		}

		if err := db.Save(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update design request"})
			return
		}
		c.JSON(http.StatusOK, request)
	}
}
