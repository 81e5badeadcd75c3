package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/product"
	vendorlifecycle "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/vendor"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/middleware"
)

// SetupVendorRoutes registers vendor self-service: own profile and product
// CRUD. Ownership of individual products is enforced in the handlers.
func SetupVendorRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		api.GET("/vendors/me",
			middleware.RequireRole("vendor", "admin"),
			vendorlifecycle.MyVendorHandler(d.VendorStore))

		api.POST("/products",
			middleware.RequireRole("vendor"),
			productControllers.CreateProduct(d.DB))
		api.PUT("/products/:id",
			middleware.RequireRole("vendor"),
			productControllers.UpdateProduct(d.DB))
		api.DELETE("/products/:id",
			middleware.RequireRole("vendor"),
			productControllers.DeleteProduct(d.DB))
	}
}
