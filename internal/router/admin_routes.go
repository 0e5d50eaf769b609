package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/middleware"
	"github.com/ultroidx/movie-platform/internal/model"
)

// RegisterAdmin registers the catalog management endpoints under
// /api/v1/admin.  Every route requires a valid JWT with the admin role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/api/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.POST("/seed-movies", h.SeedMovies)
	g.POST("/seed-news", h.SeedNews)
	g.POST("/refresh-news", h.RefreshNews)
	g.POST("/seed-all", h.SeedAll)
	g.GET("/data-status", h.DataStatus)
	g.DELETE("/clear-movies", h.ClearMovies)
	g.DELETE("/clear-news", h.ClearNews)
}
