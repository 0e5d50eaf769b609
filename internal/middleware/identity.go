package middleware

import "github.com/labstack/echo/v4"

// currentUserID reads the authenticated user id that JWTAuth stored in
// context.  Requests outside the auth chain resolve to "anon" so rate-limit
// keys stay well formed.
func currentUserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v
	}
	return "anon"
}
