package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/hamdo00alakhras-crypto/Hamdo/controllers/auth"
	"github.com/hamdo00alakhras-crypto/Hamdo/middleware"
)

// SetupAuthRoutes registers registration and login plus the
// token-protected profile endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authControllers.Register(db))
		auth.POST("/login", authControllers.Login(db))

		me := auth.Group("")
		me.Use(middleware.ValidateToken)
		{
			me.GET("/me", authControllers.Me(db))
			me.PUT("/me", authControllers.UpdateProfile(db))
		}
	}
}
