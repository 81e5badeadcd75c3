package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

type CreateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

// vendorForUser resolves the caller's approved vendor record.
func vendorForUser(db *gorm.DB, c *gin.Context) (*models.Vendor, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)

	var vendor models.Vendor
	if err := db.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No vendor profile for this account"})
		return nil, false
	}
	if !vendor.IsApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vendor is not approved"})
		return nil, false
	}
	return &vendor, true
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendor, ok := vendorForUser(db, c)
		if !ok {
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		price, err := decimal.NewFromString(input.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		product := models.Product{
			VendorID:    vendor.ID,
			CategoryID:  category.ID,
			Name:        input.Name,
			Description: input.Description,
			Price:       price.Round(2),
			Stock:       input.Stock,
			ImageURL:    input.ImageURL,
			IsActive:    true,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
