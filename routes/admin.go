package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/product"
	vendorlifecycle "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/vendor"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/middleware"
)

// SetupAdminRoutes registers the admin console surface. The vendor approval
// and delete endpoints deliberately keep every historical alias alive so any
// admin console iteration finds one it understands.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminOnly := []gin.HandlerFunc{middleware.ValidateToken, middleware.RequireRole("admin")}

	admin := r.Group("/api/admin", adminOnly...)
	{
		admin.GET("/vendors", vendorlifecycle.ListAllHandler(d.VendorStore))
		admin.GET("/vendors/pending", vendorlifecycle.ListPendingHandler(d.VendorService))
		admin.PUT("/vendors/:id", vendorlifecycle.SetApprovalHandler(d.VendorService))
		admin.DELETE("/vendors/:id", vendorlifecycle.DeleteVendorHandler(d.VendorService))

		admin.POST("/applications/:id/approve", vendorlifecycle.ApproveHandler(d.VendorService))
		admin.POST("/applications/:id/reject", vendorlifecycle.RejectHandler(d.VendorService))

		admin.POST("/categories", productControllers.CreateCategory(d.DB))
		admin.PUT("/categories/:id", productControllers.UpdateCategory(d.DB))
		admin.DELETE("/categories/:id", productControllers.DeleteCategory(d.DB))

		admin.GET("/products/export-excel", productControllers.ExportProductsToExcel(d.DB))
	}

	// Alias paths outside /api/admin used by older console builds.
	vendorAliases := r.Group("/api/vendors", adminOnly...)
	{
		vendorAliases.PATCH("/:id/approval", vendorlifecycle.SetApprovalHandler(d.VendorService))
		vendorAliases.POST("/:id/approve", vendorlifecycle.ApproveVendorHandler(d.VendorService))
		vendorAliases.POST("/:id/reject", vendorlifecycle.RejectHandler(d.VendorService))
		vendorAliases.PATCH("/:id", vendorlifecycle.SetApprovalHandler(d.VendorService))
		vendorAliases.DELETE("/:id", vendorlifecycle.DeleteVendorHandler(d.VendorService))
		vendorAliases.POST("/:id/delete", vendorlifecycle.DeleteVendorHandler(d.VendorService))
	}
}
