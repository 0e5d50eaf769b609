package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/middleware"
	"github.com/ultroidx/movie-platform/internal/model"
)

// RegisterNews registers the news endpoints under /api/v1/news.  Reading is
// public; authoring is restricted to admins.
func RegisterNews(e *echo.Echo, h *handler.NewsHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/v1/news", mw...)
	g.GET("", h.List)
	g.GET("/latest", h.Latest)
	g.GET("/search", h.Search)
	g.GET("/category/:category", h.ByCategory)
	g.GET("/:id", h.Get)

	admin := e.Group(
		"/api/v1/news",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}
