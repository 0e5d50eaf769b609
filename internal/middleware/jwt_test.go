package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/ultroidx/movie-platform/internal/utils"
)

const testSecret = "test-secret"

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	e.GET("/protected", handler, mw...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "u1", "user", 5)
	require.NoError(t, err)

	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+at.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":"u1"`)
	require.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", "u1", "user", 5)
	require.NoError(t, err)

	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+at.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "u1", "user", -5)
	require.NoError(t, err)

	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+at.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsGarbage(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "a1", "admin", 5)
	require.NoError(t, err)

	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("admin")}
	rec := doRequest(t, mw, "Bearer "+at.Token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "u1", "user", 5)
	require.NoError(t, err)

	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("admin")}
	rec := doRequest(t, mw, "Bearer "+at.Token)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{RequireRole("admin")}, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
}
