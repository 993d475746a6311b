package server

import (
	"github.com/labstack/echo/v4"

	"example.com/bill-tracker/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	billHandler *handlers.BillHandler,
	notificationHandler *handlers.NotificationHandler,
	statsHandler *handlers.StatsHandler,
	aiHandler *handlers.AIHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)
	authGroup.PUT("/me", authHandler.UpdateProfile, authMiddleware)
	authGroup.PUT("/me/preferences", authHandler.UpdatePreferences, authMiddleware)
	authGroup.DELETE("/me", authHandler.DeleteAccount, authMiddleware)

	bills := api.Group("/bills", authMiddleware)
	bills.GET("", billHandler.List)
	bills.POST("", billHandler.Create)
	bills.DELETE("", billHandler.Clear)
	bills.GET("/export/json", billHandler.ExportJSON)
	bills.GET("/export/csv", billHandler.ExportCSV)
	bills.PUT("/:id", billHandler.Update)
	bills.DELETE("/:id", billHandler.Delete)
	bills.PATCH("/:id/toggle", billHandler.TogglePaid)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/stream", notificationHandler.Stream)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.POST("/read-all", notificationHandler.MarkAllRead)

	stats := api.Group("/stats", authMiddleware)
	stats.GET("/overview", statsHandler.Overview)
	stats.GET("/spending-by-category", statsHandler.SpendingByCategory)

	aiGroup := api.Group("/ai", authMiddleware, aiRateLimiter)
	aiGroup.POST("/explain", aiHandler.Explain)
}
