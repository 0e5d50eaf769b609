package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/repository"
)

// NewsHandler serves the public news feed plus the admin authoring endpoints.
type NewsHandler struct {
	News *repository.NewsRepo
}

func NewNewsHandler(n *repository.NewsRepo) *NewsHandler {
	return &NewsHandler{News: n}
}

// List returns articles newest-first with skip/limit paging.
func (h *NewsHandler) List(c echo.Context) error {
	skip, limit := pageParams(c, 20)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	articles, err := h.News.List(ctx, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, articles)
}

// Get returns one article and bumps its view counter.
func (h *NewsHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.News.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "news not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	// Best effort: a failed counter bump never fails the read.
	_ = h.News.IncrementViews(ctx, c.Param("id"))
	return c.JSON(http.StatusOK, a)
}

// ByCategory lists articles in one category.
func (h *NewsHandler) ByCategory(c echo.Context) error {
	skip, limit := pageParams(c, 20)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	articles, err := h.News.ByCategory(ctx, c.Param("category"), skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, articles)
}

// Latest returns the most recent articles, default 5.
func (h *NewsHandler) Latest(c echo.Context) error {
	limit := queryInt64(c, "limit", 5)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	articles, err := h.News.Latest(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, articles)
}

// Search does a case-insensitive title/content search.
func (h *NewsHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "search query is required"})
	}
	skip, limit := pageParams(c, 20)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	articles, err := h.News.Search(ctx, query, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, articles)
}

type createNewsReq struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Create publishes an admin-authored article.
func (h *NewsHandler) Create(c echo.Context) error {
	var req createNewsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.Content == "" || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/content/category required"})
	}

	now := time.Now().UTC()
	a := &model.NewsArticle{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		AuthorID:    currentUserID(c),
		ImageURL:    req.Image,
		AutoFetched: false,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.News.Insert(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "article already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create news failed"})
	}
	return c.JSON(http.StatusCreated, a)
}

// Update edits an article.  Authorship, identity and the view counter are
// not editable through this endpoint.
func (h *NewsHandler) Update(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	for _, k := range []string{"author_id", "_id", "views"} {
		delete(body, k)
	}
	if len(body) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.News.Update(ctx, c.Param("id"), bson.M(body))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "news not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, a)
}

// Delete removes an article.
func (h *NewsHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.News.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "news not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "news deleted"})
}
