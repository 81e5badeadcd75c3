package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/config"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/checkout"
	orderControllers "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/order"
	vendorlifecycle "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/vendor"
)

// Deps carries everything the route groups need.
type Deps struct {
	DB            *gorm.DB
	Cfg           *config.Config
	VendorService *vendorlifecycle.Service
	VendorStore   vendorlifecycle.Store
	Checkout      *checkout.Aggregator
	Feed          *orderControllers.Feed
}

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupAuthRoutes(r, d)
	SetupStorefrontRoutes(r, d)
	SetupVendorRoutes(r, d)
	SetupOrderRoutes(r, d)
	SetupAdminRoutes(r, d)
}
