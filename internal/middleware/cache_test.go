package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/ultroidx/movie-platform/internal/config"
)

func TestEntryRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, "X-Custom": {"a", "b"}}
	body := []byte(`{"status":"ok"}`)

	bs, err := packEntry(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := unpackEntry(bs)
	require.True(t, ok)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, hdr, gotHdr)
	require.Equal(t, body, gotBody)
}

func TestUnpackRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, []byte("short"), {0, 0, 0, 200, 0, 0, 0, 99}} {
		_, _, _, ok := unpackEntry(bs)
		require.False(t, ok)
	}
}

func TestBodyRecorderCapsBufferNotClient(t *testing.T) {
	rw := httptest.NewRecorder()
	rec := &bodyRecorder{ResponseWriter: rw, status: http.StatusOK, limit: 5}

	_, err := rec.Write([]byte("hello world"))
	require.NoError(t, err)

	require.Equal(t, "hello world", rw.Body.String())
	require.Equal(t, "hello", rec.buf.String())
	require.Equal(t, int64(len("hello world")), rec.size)
}

func TestCacheDisabledIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rw := httptest.NewRecorder()
	c := e.NewContext(req, rw)

	err := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	})(c)
	require.NoError(t, err)
	require.Equal(t, "fresh", rw.Body.String())
	require.Empty(t, rw.Header().Get("X-Cache"))
}
