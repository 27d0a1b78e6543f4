package aiControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/middleware"
	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

type DesignInput struct {
	Type          string `json:"type" binding:"required"` // ring, necklace, bracelet, ...
	Material      string `json:"material" binding:"required"`
	Karat         string `json:"karat"`
	Color         string `json:"color"`
	Shape         string `json:"shape"`
	GemstoneType  string `json:"gemstone_type"`
	GemstoneColor string `json:"gemstone_color"`
}

// buildPrompt turns the selected options into a catalog-photography
// prompt for the image model.
func buildPrompt(input DesignInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a photorealistic image of an exquisite %s jewelry piece.\n\n", strings.ToLower(input.Type))
	b.WriteString("Design Specifications:\n")
	fmt.Fprintf(&b, "- Type: %s\n", input.Type)
	fmt.Fprintf(&b, "- Material: %s", input.Material)
	if input.Karat != "" {
		fmt.Fprintf(&b, " (%s)", input.Karat)
	}
	b.WriteString("\n")
	if input.Color != "" {
		fmt.Fprintf(&b, "- Primary Color: %s\n", input.Color)
	}
	if input.Shape != "" {
		fmt.Fprintf(&b, "- Shape/Style: %s\n", input.Shape)
	}
	if input.GemstoneType != "" && !strings.EqualFold(input.GemstoneType, "none") {
		color := input.GemstoneColor
		if color == "" {
			color = "natural colored"
		}
		fmt.Fprintf(&b, "- Gemstone: featuring a %s %s\n", color, input.GemstoneType)
	} else {
		b.WriteString("- No gemstones\n")
	}
	b.WriteString("\nRequirements:\n")
	b.WriteString("- Professional jewelry photography style\n")
	b.WriteString("- Clean white or light gradient background\n")
	fmt.Fprintf(&b, "- Proper lighting showing the %s's luster and shine\n", input.Material)
	b.WriteString("- High detail showing craftsmanship\n")
	b.WriteString("\nStyle: Elegant, luxurious, high-end jewelry catalog photography")
	return b.String()
}

func designsDir() string {
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		return filepath.Join(dir, "generated_designs")
	}
	return "static/generated_designs"
}

func saveDesignImage(imageData []byte, userID uint) (string, error) {
	dir := designsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("design_%d_%s.png", userID, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), imageData, 0o644); err != nil {
		return "", err
	}
	return "/static/generated_designs/" + filename, nil
}

// POST /api/ai/generate-design
func GenerateDesign(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input DesignInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		imageData, err := generateImage(buildPrompt(input))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		imageURL, err := saveDesignImage(imageData, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated image"})
			return
		}

		options, _ := json.Marshal(input)
		design := models.GeneratedDesign{
			UserID:            userID,
			SelectedOptions:   string(options),
			GeneratedImageURL: imageURL,
		}
		if err := db.Create(&design).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record design"})
			return
		}

		c.JSON(http.StatusCreated, design)
	}
}

// GET /api/ai/my-designs
func GetMyDesigns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var designs []models.GeneratedDesign
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&designs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch designs"})
			return
		}
		c.JSON(http.StatusOK, designs)
	}
}

type DesignRequestInput struct {
	JewelerID         *uint    `json:"jeweler_id"`
	GeneratedDesignID *uint    `json:"generated_design_id"`
	Description       string   `json:"description"`
	AttachmentURL     string   `json:"attachment_url"`
	EstimatedBudget   *float64 `json:"estimated_budget"`
}

// POST /api/ai/design-requests
func CreateDesignRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input DesignRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		request := models.DesignRequest{
			UserID:            userID,
			JewelerID:         input.JewelerID,
			GeneratedDesignID: input.GeneratedDesignID,
			Description:       input.Description,
			AttachmentURL:     input.AttachmentURL,
			EstimatedBudget:   input.EstimatedBudget,
			Status:            models.DesignRequestPending,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create design request"})
			return
		}
		c.JSON(http.StatusCreated, request)
	}
}

// GET /api/ai/design-requests
func GetMyDesignRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var requests []models.DesignRequest
		if err := db.Where("user_id = ?", userID).
			Order("request_date DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch design requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}
