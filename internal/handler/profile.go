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

// ProfileHandler serves the current user's profile, favorites, watchlist and
// watch history.
type ProfileHandler struct {
	Users     *repository.UserRepo
	Playlists *repository.PlaylistRepo
}

func NewProfileHandler(u *repository.UserRepo, p *repository.PlaylistRepo) *ProfileHandler {
	return &ProfileHandler{Users: u, Playlists: p}
}

type profileResp struct {
	*model.User
	Playlists []model.Playlist `json:"playlists"`
}

// Get returns the current user's profile with all their playlists.
func (h *ProfileHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByID(ctx, currentUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	playlists, err := h.Playlists.ByUser(ctx, u.ID.Hex())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, profileResp{User: u, Playlists: playlists})
}

// GetByUsername returns a public profile; only public playlists are listed.
func (h *ProfileHandler) GetByUsername(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	all, err := h.Playlists.ByUser(ctx, u.ID.Hex())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	public := make([]model.Playlist, 0, len(all))
	for _, p := range all {
		if p.IsPublic {
			public = append(public, p)
		}
	}
	return c.JSON(http.StatusOK, profileResp{User: u, Playlists: public})
}

// Update applies a partial profile update.  Identity and credential fields
// are never updatable through this endpoint.
func (h *ProfileHandler) Update(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	for _, k := range []string{"username", "email", "password", "role", "_id"} {
		delete(body, k)
	}
	if len(body) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Update(ctx, currentUserID(c), bson.M(body))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Favorites returns the current user's favorite movie ids.
func (h *ProfileHandler) Favorites(c echo.Context) error {
	u, err := h.loadUser(c)
	if u == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"favorites": u.Favorites})
}

// AddFavorite adds a movie id to the favorites set.
func (h *ProfileHandler) AddFavorite(c echo.Context) error {
	return h.mutate(c, "added to favorites", h.Users.AddToFavorites)
}

// RemoveFavorite removes a movie id from the favorites set.
func (h *ProfileHandler) RemoveFavorite(c echo.Context) error {
	return h.mutate(c, "removed from favorites", h.Users.RemoveFromFavorites)
}

// Watchlist returns the current user's watchlist.
func (h *ProfileHandler) Watchlist(c echo.Context) error {
	u, err := h.loadUser(c)
	if u == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"watchlist": u.Watchlist})
}

// AddToWatchlist adds a movie id to the watchlist set.
func (h *ProfileHandler) AddToWatchlist(c echo.Context) error {
	return h.mutate(c, "added to watchlist", h.Users.AddToWatchlist)
}

// WatchHistory returns the current user's watch history.
func (h *ProfileHandler) WatchHistory(c echo.Context) error {
	u, err := h.loadUser(c)
	if u == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"watch_history": u.WatchHistory})
}

// AddToWatchHistory appends a watch-history entry.
func (h *ProfileHandler) AddToWatchHistory(c echo.Context) error {
	return h.mutate(c, "added to watch history", h.Users.AddToWatchHistory)
}

// loadUser fetches the current user, writing the error response itself.
// Callers must bail out when the returned user is nil.
func (h *ProfileHandler) loadUser(c echo.Context) (*model.User, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByID(ctx, currentUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return u, nil
}

// mutate runs one of the list mutations against the :movie_id path param.
func (h *ProfileHandler) mutate(c echo.Context, okMsg string, op func(ctx context.Context, id, movieID string) error) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := op(ctx, currentUserID(c), c.Param("movie_id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": okMsg})
}
