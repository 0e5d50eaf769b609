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

// PlaylistHandler serves playlist CRUD plus the social operations.
type PlaylistHandler struct {
	Playlists *repository.PlaylistRepo
}

func NewPlaylistHandler(p *repository.PlaylistRepo) *PlaylistHandler {
	return &PlaylistHandler{Playlists: p}
}

type createPlaylistReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

// Create makes a new playlist owned by the current user.
func (h *PlaylistHandler) Create(c echo.Context) error {
	var req createPlaylistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "playlist name is required"})
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Playlists.Create(ctx, currentUserID(c), req.Name, req.Description, isPublic)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create playlist failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// Get returns one playlist by id.
func (h *PlaylistHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Playlists.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "playlist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// ByUser lists all playlists owned by a user.
func (h *PlaylistHandler) ByUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	playlists, err := h.Playlists.ByUser(ctx, c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, playlists)
}

// Public lists public playlists.
func (h *PlaylistHandler) Public(c echo.Context) error {
	skip, limit := pageParams(c, 20)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	playlists, err := h.Playlists.Public(ctx, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, playlists)
}

// Update edits name/description/visibility (owner only).
func (h *PlaylistHandler) Update(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	for _, k := range []string{"user_id", "movies", "_id", "likes"} {
		delete(body, k)
	}
	if len(body) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if !h.requireOwner(ctx, c) {
		return nil
	}

	p, err := h.Playlists.Update(ctx, c.Param("id"), bson.M(body))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}

type addMovieReq struct {
	MovieID string `json:"movie_id"`
	IMDbID  string `json:"imdb_id"`
	Title   string `json:"title"`
	Year    string `json:"year"`
	Poster  string `json:"poster"`
}

// AddMovie appends a movie entry (owner only).
func (h *PlaylistHandler) AddMovie(c echo.Context) error {
	var req addMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.MovieID == "" || req.IMDbID == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id/imdb_id/title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if !h.requireOwner(ctx, c) {
		return nil
	}

	entry := model.PlaylistMovie{
		MovieID: req.MovieID,
		IMDbID:  req.IMDbID,
		Title:   req.Title,
		Year:    req.Year,
		Poster:  req.Poster,
		AddedAt: time.Now().UTC(),
	}
	if err := h.Playlists.AddMovie(ctx, c.Param("id"), entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add movie failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie added to playlist"})
}

// RemoveMovie removes a movie entry (owner only).
func (h *PlaylistHandler) RemoveMovie(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if !h.requireOwner(ctx, c) {
		return nil
	}

	if err := h.Playlists.RemoveMovie(ctx, c.Param("id"), c.Param("movie_id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove movie failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie removed from playlist"})
}

// Delete removes the playlist (owner only).
func (h *PlaylistHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if !h.requireOwner(ctx, c) {
		return nil
	}

	if err := h.Playlists.Delete(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "playlist deleted"})
}

// Like adds the current user to the likes set.
func (h *PlaylistHandler) Like(c echo.Context) error {
	return h.likeOp(c, "playlist liked", h.Playlists.Like)
}

// Unlike removes the current user from the likes set.
func (h *PlaylistHandler) Unlike(c echo.Context) error {
	return h.likeOp(c, "playlist unliked", h.Playlists.Unlike)
}

type sortReq struct {
	SortBy string `json:"sort_by"`
	Order  string `json:"order"`
}

// Sort reorders the embedded movies list (owner only).
func (h *PlaylistHandler) Sort(c echo.Context) error {
	var req sortReq
	_ = c.Bind(&req)
	if req.SortBy == "" {
		req.SortBy = "year"
	}
	if req.Order == "" {
		req.Order = "desc"
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if !h.requireOwner(ctx, c) {
		return nil
	}

	p, err := h.Playlists.SortMovies(ctx, c.Param("id"), req.SortBy, req.Order)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "sort failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// requireOwner loads the playlist and checks ownership.  On failure it writes
// the error response and returns false.
func (h *PlaylistHandler) requireOwner(ctx context.Context, c echo.Context) bool {
	p, err := h.Playlists.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "playlist not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return false
	}
	if p.UserID != currentUserID(c) {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized"})
		return false
	}
	return true
}

func (h *PlaylistHandler) likeOp(c echo.Context, okMsg string, op func(ctx context.Context, id, userID string) error) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := op(ctx, c.Param("id"), currentUserID(c)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "playlist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": okMsg})
}
