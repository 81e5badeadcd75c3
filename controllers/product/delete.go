package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

// DELETE /api/products/:id is a soft delete. The row stays for order-item
// referential history; it just stops appearing in default listings.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendor, ok := vendorForUser(db, c)
		if !ok {
			return
		}

		id := c.Param("id")
		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.VendorID != vendor.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Product belongs to another vendor"})
			return
		}

		if err := db.Model(&product).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
