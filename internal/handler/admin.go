package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/repository"
	"github.com/ultroidx/movie-platform/internal/seeder"
)

// AdminHandler serves the catalog management endpoints: seeding, data status
// and bulk clears.  Every route here sits behind the admin role middleware.
type AdminHandler struct {
	Movies  *repository.MovieRepo
	News    *repository.NewsRepo
	Seeder  *seeder.Seeder
	NewsSdr *seeder.NewsSeeder
}

func NewAdminHandler(m *repository.MovieRepo, n *repository.NewsRepo, s *seeder.Seeder, ns *seeder.NewsSeeder) *AdminHandler {
	return &AdminHandler{Movies: m, News: n, Seeder: s, NewsSdr: ns}
}

// Seeding runs synchronously and a full run pauses between upstream calls,
// so these operations get a generous deadline instead of the usual 5s.
const seedTimeout = 15 * time.Minute

type seedReq struct {
	Type string `json:"type"`
}

// SeedMovies runs one of the seeding passes: quick (default), full,
// trending or top_rated.
func (h *AdminHandler) SeedMovies(c echo.Context) error {
	var req seedReq
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), seedTimeout)
	defer cancel()

	result, err := h.seedMovies(ctx, req.Type)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seeding failed"})
	}
	return c.JSON(http.StatusOK, result)
}

// SeedNews pulls the upstream feed into the news collection.
func (h *AdminHandler) SeedNews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), seedTimeout)
	defer cancel()

	added, err := h.NewsSdr.Seed(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "news seeding failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "articles_added": added})
}

// RefreshNews prunes stale auto-fetched articles then re-seeds.
func (h *AdminHandler) RefreshNews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), seedTimeout)
	defer cancel()

	result, err := h.NewsSdr.Refresh(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "news refresh failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"removed": result.Removed,
		"added":   result.Added,
	})
}

// DataStatus reports catalog and news seeding coverage.
func (h *AdminHandler) DataStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Seeder.Status(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "status query failed"})
	}
	news, err := h.NewsSdr.Status(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "status query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies, "news": news})
}

// ClearMovies deletes every seeded movie.  Hand-added movies survive.
func (h *AdminHandler) ClearMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	deleted, err := h.Movies.DeleteSeeded(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "deleted": deleted})
}

// ClearNews deletes every auto-fetched article.  Admin-authored articles
// survive.
func (h *AdminHandler) ClearNews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	deleted, err := h.News.DeleteAutoFetched(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "deleted": deleted})
}

// SeedAll seeds movies (quick unless type=full) followed by news.
func (h *AdminHandler) SeedAll(c echo.Context) error {
	var req seedReq
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), seedTimeout)
	defer cancel()

	var movies interface{}
	var err error
	if req.Type == "full" {
		movies, err = h.Seeder.SeedAll(ctx)
	} else {
		var added int
		added, err = h.Seeder.QuickSeed(ctx)
		movies = echo.Map{"success": true, "total_added": added}
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seeding failed"})
	}

	newsAdded, err := h.NewsSdr.Seed(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "news seeding failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"movies":  movies,
		"news":    echo.Map{"articles_added": newsAdded},
	})
}

func (h *AdminHandler) seedMovies(ctx context.Context, seedType string) (interface{}, error) {
	switch seedType {
	case "full":
		return h.Seeder.SeedAll(ctx)
	case "trending":
		added, err := h.Seeder.SeedTrending(ctx)
		return echo.Map{"success": true, "total_added": added}, err
	case "top_rated":
		added, err := h.Seeder.SeedTopRated(ctx)
		return echo.Map{"success": true, "total_added": added}, err
	default:
		added, err := h.Seeder.QuickSeed(ctx)
		return echo.Map{"success": true, "total_added": added}, err
	}
}
