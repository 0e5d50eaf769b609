package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/config"
	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/omdb"
	"github.com/ultroidx/movie-platform/internal/repository"
)

// MovieHandler serves the catalog: store-backed listings plus cache-through
// lookups against the metadata upstream.
type MovieHandler struct {
	Cfg    config.Config
	Movies *repository.MovieRepo
	Meta   *omdb.Client
}

func NewMovieHandler(cfg config.Config, m *repository.MovieRepo, meta *omdb.Client) *MovieHandler {
	return &MovieHandler{Cfg: cfg, Movies: m, Meta: meta}
}

// Search proxies a title search to the upstream.
func (h *MovieHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "search query is required"})
	}
	page := queryInt(c, "page", 1)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	res, err := h.Meta.Search(ctx, query, c.QueryParam("year"), page)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream search failed"})
	}
	return c.JSON(http.StatusOK, res)
}

// FetchByIMDbID returns the cached record when present, otherwise fetches
// from the upstream and stores it.
func (h *MovieHandler) FetchByIMDbID(c echo.Context) error {
	imdbID := c.Param("imdb_id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if m, err := h.Movies.FindByIMDbID(ctx, imdbID); err == nil {
		return c.JSON(http.StatusOK, m)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	m, err := h.Meta.FetchByID(ctx, imdbID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream fetch failed"})
	}

	if _, err := h.Movies.Insert(ctx, m); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save movie failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// FetchByTitle fetches from the upstream by exact title, caching the result.
func (h *MovieHandler) FetchByTitle(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	m, err := h.Meta.FetchByTitle(ctx, title, c.QueryParam("year"))
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream fetch failed"})
	}

	if _, err := h.Movies.CreateOrUpdate(ctx, m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save movie failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Get returns one stored movie and bumps its view counter.
func (h *MovieHandler) Get(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	_ = h.Movies.IncrementViewCount(ctx, id)

	return c.JSON(http.StatusOK, m)
}

// ByProductionHouse lists stored movies for one studio.
func (h *MovieHandler) ByProductionHouse(c echo.Context) error {
	skip, limit := pageParams(c, h.Cfg.ItemsPerPage)
	sortBy := c.QueryParam("sort_by")
	if sortBy == "" {
		sortBy = "year"
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	house := c.Param("production_house")
	movies, err := h.Movies.ByProductionHouse(ctx, house, skip, limit, sortBy)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(movies) > 0 || skip > 0 {
		return c.JSON(http.StatusOK, movies)
	}

	// Nothing seeded for this house yet: pull what the upstream knows and
	// cache it so the next request is served locally.
	upCtx, upCancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer upCancel()

	fetched, err := h.Meta.FetchByProductionHouse(upCtx, house, 1)
	if err != nil {
		return c.JSON(http.StatusOK, movies)
	}
	out := make([]model.Movie, 0, len(fetched))
	for _, m := range fetched {
		if _, err := h.Movies.CreateOrUpdate(upCtx, m); err != nil {
			continue
		}
		out = append(out, *m)
		if int64(len(out)) == limit {
			break
		}
	}
	return c.JSON(http.StatusOK, out)
}

// ByGenre lists stored movies matching a genre.
func (h *MovieHandler) ByGenre(c echo.Context) error {
	skip, limit := pageParams(c, h.Cfg.ItemsPerPage)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.ByGenre(ctx, c.Param("genre"), skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, movies)
}

// Trending lists movies by descending view count.
func (h *MovieHandler) Trending(c echo.Context) error {
	limit := queryInt64(c, "limit", 10)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.Trending(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, movies)
}

// TopRated lists movies by descending upstream rating.
func (h *MovieHandler) TopRated(c echo.Context) error {
	limit := queryInt64(c, "limit", 10)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.TopRated(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, movies)
}

// Filter applies the combined criteria body.
func (h *MovieHandler) Filter(c echo.Context) error {
	var f model.MovieFilter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	skip, limit := pageParams(c, h.Cfg.ItemsPerPage)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.Filter(ctx, f, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, movies)
}

// Rate appends a user rating (protected).
func (h *MovieHandler) Rate(c echo.Context) error {
	var body struct {
		Rating float64 `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if body.Rating < 0 || body.Rating > 10 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 0 and 10"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.AddRating(ctx, c.Param("id"), currentUserID(c), body.Rating); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add rating failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rating added successfully"})
}

// Review appends a user review (protected).
func (h *MovieHandler) Review(c echo.Context) error {
	var body struct {
		Review string `json:"review"`
	}
	if err := c.Bind(&body); err != nil || body.Review == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "review text is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.AddReview(ctx, c.Param("id"), currentUserID(c), body.Review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add review failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "review added successfully"})
}

// ProductionHouses returns the fixed studio catalog.
func (h *MovieHandler) ProductionHouses(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"production_houses": config.ProductionHouses})
}
