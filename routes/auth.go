package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/auth"
)

// SetupAuthRoutes registers the public /api/auth/* endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(d.DB, d.Cfg.JWTSecret))
		authGroup.POST("/login", auth.LoginHandler(d.DB, d.Cfg.JWTSecret))
	}
}
