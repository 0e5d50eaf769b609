package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/middleware"
	"github.com/ultroidx/movie-platform/internal/model"
)

// RegisterChat registers the support chat endpoints under /api/v1/chat.
// Users reach their own thread; triage operations are admin only.
func RegisterChat(e *echo.Echo, h *handler.ChatHandler, jwtSecret string) {
	auth := e.Group("/api/v1/chat", middleware.JWTAuth(jwtSecret))
	auth.GET("/my-chat", h.MyChat)
	auth.GET("/:id", h.Get)
	auth.POST("/:id/message", h.SendMessage)

	admin := e.Group(
		"/api/v1/chat",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.GET("/all", h.All)
	admin.GET("/unread-count", h.UnreadCount)
	admin.POST("/:id/read", h.MarkRead)
	admin.POST("/:id/close", h.Close)
	admin.DELETE("/:id", h.Delete)
}

// RegisterContact registers the contact form endpoints under /api/v1/contact.
// Submission is public; triage is admin only.
func RegisterContact(e *echo.Echo, h *handler.ContactHandler, jwtSecret string) {
	e.POST("/api/v1/contact", h.Submit)

	admin := e.Group(
		"/api/v1/contact",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.GET("/all", h.All)
	admin.GET("/pending", h.Pending)
	admin.GET("/:id", h.Get)
	admin.PUT("/:id/status", h.UpdateStatus)
	admin.POST("/:id/reply", h.MarkReplied)
	admin.DELETE("/:id", h.Delete)
}
