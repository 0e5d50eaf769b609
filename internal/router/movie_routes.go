package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/middleware"
)

// RegisterMovies registers the movie catalog endpoints under /api/v1/movies.
// Browsing is public; rating and reviewing require a valid JWT.  Extra
// middleware (the Redis response cache) is attached to the public group.
func RegisterMovies(e *echo.Echo, h *handler.MovieHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/v1/movies", mw...)
	g.GET("/search", h.Search)
	g.GET("/fetch/:imdb_id", h.FetchByIMDbID)
	g.GET("/fetch-by-title", h.FetchByTitle)
	g.GET("/production-house/:production_house", h.ByProductionHouse)
	g.GET("/genre/:genre", h.ByGenre)
	g.GET("/trending", h.Trending)
	g.GET("/top-rated", h.TopRated)
	g.GET("/production-houses", h.ProductionHouses)
	g.POST("/filter", h.Filter)
	g.GET("/:id", h.Get)

	auth := e.Group("/api/v1/movies", middleware.JWTAuth(jwtSecret))
	auth.POST("/:id/rate", h.Rate)
	auth.POST("/:id/review", h.Review)
}
