package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/handlers"
	"github.com/hackbits-tech/hackbits-backend/internal/middleware"
)

// HandlerDependencies carries the constructed handlers into the router
type HandlerDependencies struct {
	AuthHandler    *handlers.AuthHandler
	TeamHandler    *handlers.TeamHandler
	AdminHandler   *handlers.AdminHandler
	CheckInHandler *handlers.CheckInHandler
	PaymentHandler *handlers.PaymentHandler
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, deps *HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/signup", deps.AuthHandler.Signup)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		public.POST("/admin/login", deps.AuthHandler.AdminLogin)
	}

	// Participant routes
	participant := router.Group("/api/v1")
	participant.Use(middleware.JWTAuthMiddleware(cfg))
	{
		teams := participant.Group("/teams")
		{
			teams.POST("", deps.TeamHandler.Register)
			teams.GET("/me", deps.TeamHandler.GetMyTeam)
			teams.GET("/me/ticket", deps.TeamHandler.GetTicket)
			teams.PUT("/payment", deps.TeamHandler.SubmitPayment)
			teams.PUT("/documents", deps.TeamHandler.SubmitDocuments)
		}

		payments := participant.Group("/payments")
		{
			payments.POST("/initiate", deps.PaymentHandler.InitiateOrder)
			payments.GET("/orders", deps.PaymentHandler.GetOrders)
		}
	}

	// Check-in routes for scanner operators and admins
	checkin := router.Group("/api/v1/checkin")
	checkin.Use(middleware.JWTAuthMiddleware(cfg))
	checkin.Use(middleware.RequireRole("admin", "checkin_operator"))
	{
		checkin.POST("", deps.CheckInHandler.CheckIn)
		checkin.POST("/verify", deps.CheckInHandler.Verify)
		checkin.POST("/undo/:id", deps.CheckInHandler.Undo)
		checkin.GET("/stats", deps.CheckInHandler.GetStats)
		checkin.GET("/history", deps.CheckInHandler.GetHistory)
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.PUT("/change-password", deps.AuthHandler.ChangePassword)
		admin.GET("/teams", deps.AdminHandler.ListTeams)
		admin.GET("/stats", deps.AdminHandler.GetStats)
		admin.PUT("/teams/:id/payment-status", deps.AdminHandler.UpdatePaymentStatus)
		admin.GET("/settings", deps.AdminHandler.GetSettings)
		admin.PUT("/settings", deps.AdminHandler.UpdateSettings)
	}

	return router
}
