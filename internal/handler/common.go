// Package handler contains the Echo HTTP handlers, grouped by feature area.
// Each handler struct bundles its repositories and config; routes are wired
// in internal/router.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's id from context, set by the
// JWT middleware.  Empty string when unauthenticated.
func currentUserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}

// currentRole returns the role claim from context.
func currentRole(c echo.Context) string {
	if v, ok := c.Get("role").(string); ok {
		return v
	}
	return ""
}

// pageParams reads skip/limit query parameters with a default page size.
func pageParams(c echo.Context, defaultLimit int) (skip, limit int64) {
	skip = queryInt64(c, "skip", 0)
	limit = queryInt64(c, "limit", int64(defaultLimit))
	if limit <= 0 {
		limit = int64(defaultLimit)
	}
	return skip, limit
}

func queryInt64(c echo.Context, name string, def int64) int64 {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func queryInt(c echo.Context, name string, def int) int {
	return int(queryInt64(c, name, int64(def)))
}
