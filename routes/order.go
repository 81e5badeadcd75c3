package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/order"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/middleware"
)

// SetupOrderRoutes registers order listings and status management.
func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Static segments first: ws and vendor listings.
		orders.GET("/ws",
			middleware.RequireRole("vendor", "admin"),
			d.Feed.Handler)
		orders.GET("/vendor/:vendorId",
			middleware.RequireRole("vendor", "admin"),
			orderControllers.GetVendorOrdersHandler(d.DB))

		orders.GET("", middleware.RequireRole("admin"),
			orderControllers.GetAllOrdersHandler(d.DB))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(d.DB))
		orders.PUT("/:id/status",
			middleware.RequireRole("vendor", "admin"),
			orderControllers.UpdateOrderStatusHandler(d.DB))
	}
}
