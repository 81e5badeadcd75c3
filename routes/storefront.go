package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/checkout"
	productControllers "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/product"
	vendorlifecycle "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/vendor"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/middleware"
)

// SetupStorefrontRoutes registers the public browse/apply/checkout surface.
// Guests are allowed everywhere here; a valid token only enriches the request.
func SetupStorefrontRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		api.GET("/categories", productControllers.GetAllCategories(d.DB))
		api.GET("/products", productControllers.GetProducts(d.DB))
		api.GET("/products/:id", productControllers.GetProductByID(d.DB))

		api.POST("/vendors/apply", middleware.OptionalToken, vendorlifecycle.ApplyHandler(d.VendorService))

		// Checkout Aggregator entry point, guest checkout allowed.
		api.POST("/orders", middleware.OptionalToken, checkout.CheckoutHandler(d.Checkout))
		api.POST("/checkout", middleware.OptionalToken, checkout.CheckoutHandler(d.Checkout))
	}
}
