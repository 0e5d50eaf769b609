package newsfeed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Big movie premiere tonight", "Movies"},
		{"Box office numbers are in", "Movies"},
		{"New anime series breaks streaming records", "Anime"},
		{"Manga adaptation announced", "Anime"},
		{"Hit TV show renewed for another season", "TV Series"},
		{"Final episode airs Sunday", "TV Series"},
		{"PlayStation exclusive revealed", "Gaming"},
		{"Random Announcement", "Entertainment"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Categorize(tc.title), tc.title)
	}
}

func TestFetchWithoutKeyServesMocks(t *testing.T) {
	c := NewClient("", "http://unused", discardLogger())

	got := c.Fetch(context.Background(), 5)
	require.Len(t, got, 5)
	for _, a := range got {
		require.True(t, a.AutoFetched)
		require.NotEmpty(t, a.Title)
		require.NotEmpty(t, a.Category)
	}
}

func TestFetchMapsUpstreamArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.URL.Query().Get("apiKey"))
		require.Equal(t, "3", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"title": "New blockbuster movie announced",
					"description": "A description",
					"author": "Jane Doe",
					"url": "https://example.com/a",
					"urlToImage": "https://example.com/a.jpg",
					"publishedAt": "2026-08-01T10:00:00Z"
				},
				{
					"title": "Quiet headline",
					"content": "Only long-form content here"
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, discardLogger())
	got := c.Fetch(context.Background(), 3)
	require.Len(t, got, 2)

	first := got[0]
	require.Equal(t, "New blockbuster movie announced", first.Title)
	require.Equal(t, "A description", first.Content)
	require.Equal(t, "Jane Doe", first.Author)
	require.Equal(t, "Movies", first.Category)
	require.Equal(t, "https://example.com/a", first.SourceURL)
	require.True(t, first.AutoFetched)
	require.Equal(t, 2026, first.PublishedAt.Year())

	second := got[1]
	require.Equal(t, "Only long-form content here", second.Content)
	require.Equal(t, "Entertainment Desk", second.Author)
	require.Equal(t, "Entertainment", second.Category)
	require.False(t, second.PublishedAt.IsZero())
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, discardLogger())
	got := c.Fetch(context.Background(), 4)
	require.Len(t, got, 4)
	require.True(t, got[0].AutoFetched)
}

func TestFetchFallsBackOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, discardLogger())
	got := c.Fetch(context.Background(), 2)
	require.Len(t, got, 2)
}

func TestFetchFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, discardLogger())
	got := c.Fetch(context.Background(), 3)
	require.Len(t, got, 3)
}

func TestFetchFallsBackOnUnreachableUpstream(t *testing.T) {
	c := NewClient("secret", "http://127.0.0.1:0", discardLogger())
	got := c.Fetch(context.Background(), 6)
	require.Len(t, got, 6)
}

func TestMockArticlesTruncation(t *testing.T) {
	all := MockArticles(1000)
	require.NotEmpty(t, all)

	few := MockArticles(5)
	require.Len(t, few, 5)
	for _, a := range few {
		require.True(t, a.AutoFetched)
		require.False(t, a.CreatedAt.IsZero())
	}
}
