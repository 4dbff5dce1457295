package api

import (
	"github.com/gin-gonic/gin"

	"github.com/aaravsharma17/cloudbin/internal/api/admin"
	"github.com/aaravsharma17/cloudbin/internal/api/auth"
	"github.com/aaravsharma17/cloudbin/internal/api/voucher"
	"github.com/aaravsharma17/cloudbin/internal/api/waste"
	"github.com/aaravsharma17/cloudbin/internal/model"
)

// SetupRouter configures all routes
func SetupRouter(r *gin.Engine) {
	// CORS middleware
	r.Use(CORSMiddleware())

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "CloudBin API is running",
			"version": "1.0.0",
		})
	})

	// Auth routes (no authentication required)
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", auth.Register)
		authRoutes.POST("/login", auth.Login)
		authRoutes.POST("/logout", auth.AuthMiddleware(), auth.Logout)
		authRoutes.GET("/me", auth.AuthMiddleware(), auth.GetCurrentAccount)
	}

	// API routes that require authentication
	api := r.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		// Waste requests
		requestGroup := api.Group("/requests")
		requestGroup.Use(auth.RequireRole(model.RoleUser))
		{
			requestGroup.POST("", waste.SubmitRequest)
			requestGroup.GET("", waste.GetRequests)
		}

		// Voucher catalog, open to any logged-in account
		voucherGroup := api.Group("/vouchers")
		{
			voucherGroup.GET("", voucher.GetVouchers)
			voucherGroup.POST("/:voucher_id/redeem", voucher.RedeemVoucher)
		}

		// Admin review
		adminGroup := api.Group("/admin")
		adminGroup.Use(auth.RequireRole(model.RoleAdmin))
		{
			adminGroup.GET("/requests", admin.GetPendingRequests)
			adminGroup.POST("/requests/:request_id/approve", admin.ApproveRequest)
			adminGroup.POST("/requests/:request_id/reject", admin.RejectRequest)
			adminGroup.GET("/accounts", admin.GetAccounts)
		}
	}
}

// CORSMiddleware provides CORS support
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
