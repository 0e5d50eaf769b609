package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/middleware"
)

// RegisterProfile registers the profile endpoints under /api/v1/profile.
// Everything except the public profile view requires a valid JWT.
func RegisterProfile(e *echo.Echo, h *handler.ProfileHandler, jwtSecret string) {
	auth := e.Group("/api/v1/profile", middleware.JWTAuth(jwtSecret))
	auth.GET("", h.Get)
	auth.PUT("/update", h.Update)
	auth.GET("/favorites", h.Favorites)
	auth.POST("/favorites/:movie_id", h.AddFavorite)
	auth.DELETE("/favorites/:movie_id", h.RemoveFavorite)
	auth.GET("/watchlist", h.Watchlist)
	auth.POST("/watchlist/:movie_id", h.AddToWatchlist)
	auth.GET("/watch-history", h.WatchHistory)
	auth.POST("/watch-history/:movie_id", h.AddToWatchHistory)

	// Public profile by username, registered last so the static segments
	// above take precedence.
	e.GET("/api/v1/profile/:username", h.GetByUsername)
}

// RegisterPlaylists registers the playlist endpoints under /api/v1/playlists.
// Browsing public playlists needs no auth; everything else does.
func RegisterPlaylists(e *echo.Echo, h *handler.PlaylistHandler, jwtSecret string) {
	g := e.Group("/api/v1/playlists")
	g.GET("/public", h.Public)
	g.GET("/user/:user_id", h.ByUser)
	g.GET("/:id", h.Get)

	auth := e.Group("/api/v1/playlists", middleware.JWTAuth(jwtSecret))
	auth.POST("", h.Create)
	auth.PUT("/:id", h.Update)
	auth.DELETE("/:id", h.Delete)
	auth.POST("/:id/movies", h.AddMovie)
	auth.DELETE("/:id/movies/:movie_id", h.RemoveMovie)
	auth.POST("/:id/like", h.Like)
	auth.POST("/:id/unlike", h.Unlike)
	auth.POST("/:id/sort", h.Sort)
}
