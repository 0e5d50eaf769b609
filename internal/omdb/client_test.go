package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

var testHouses = []string{"Warner Bros.", "Universal Pictures", "Marvel Studios"}

func TestFetchByTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "key", r.URL.Query().Get("apikey"))
		require.Equal(t, "Inception", r.URL.Query().Get("t"))
		require.Equal(t, "full", r.URL.Query().Get("plot"))
		_, _ = w.Write([]byte(`{
			"Response": "True",
			"imdbID": "tt1375666",
			"Title": "Inception",
			"Year": "2010",
			"Genre": "Action, Sci-Fi",
			"Production": "Warner Bros. Pictures",
			"imdbRating": "8.8",
			"Ratings": [{"Source": "Internet Movie Database", "Value": "8.8/10"}]
		}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, testHouses)
	m, err := c.FetchByTitle(context.Background(), "Inception", "")
	require.NoError(t, err)
	require.Equal(t, "tt1375666", m.IMDbID)
	require.Equal(t, "Inception", m.Title)
	require.Equal(t, "Warner Bros.", m.ProductionHouse)
	require.Len(t, m.Ratings, 1)
	require.Equal(t, "8.8/10", m.Ratings[0].Value)
}

func TestFetchByTitleSendsYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2021", r.URL.Query().Get("y"))
		_, _ = w.Write([]byte(`{"Response": "True", "Title": "Dune", "Year": "2021"}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, nil)
	m, err := c.FetchByTitle(context.Background(), "Dune", "2021")
	require.NoError(t, err)
	require.Equal(t, "2021", m.Year)
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, nil)
	_, err := c.FetchByTitle(context.Background(), "No Such Film", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFetchTransportErrorIsNotNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, nil)
	_, err := c.FetchByTitle(context.Background(), "Inception", "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "batman", r.URL.Query().Get("s"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{
			"Response": "True",
			"Search": [
				{"Title": "Batman Begins", "Year": "2005", "imdbID": "tt0372784", "Type": "movie"},
				{"Title": "The Batman", "Year": "2022", "imdbID": "tt1877830", "Type": "movie"}
			],
			"totalResults": "42"
		}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, nil)
	page, err := c.Search(context.Background(), "batman", "", 2)
	require.NoError(t, err)
	require.Equal(t, 42, page.TotalResults)
	require.Len(t, page.Results, 2)
	require.Equal(t, "tt0372784", page.Results[0].IMDbID)
}

func TestSearchMalformedTotalDefaultsToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"Response": "True",
			"Search": [{"Title": "Batman Begins", "Year": "2005", "imdbID": "tt0372784", "Type": "movie"}],
			"totalResults": "lots"
		}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, nil)
	page, err := c.Search(context.Background(), "batman", "", 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	require.Equal(t, 0, page.TotalResults)
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, nil)
	page, err := c.Search(context.Background(), "zzzz", "", 1)
	require.NoError(t, err)
	require.Empty(t, page.Results)
	require.Equal(t, 0, page.TotalResults)
}

func TestFetchByProductionHouseFiltersOnResolvedHouse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Query().Get("s") != "":
			_, _ = w.Write([]byte(`{
				"Response": "True",
				"Search": [
					{"Title": "Iron Man", "Year": "2008", "imdbID": "tt0371746", "Type": "movie"},
					{"Title": "Oppenheimer", "Year": "2023", "imdbID": "tt15398776", "Type": "movie"}
				],
				"totalResults": "2"
			}`))
		case r.URL.Query().Get("i") == "tt0371746":
			_, _ = w.Write([]byte(`{"Response": "True", "imdbID": "tt0371746", "Title": "Iron Man", "Production": "Marvel Studios"}`))
		default:
			_, _ = w.Write([]byte(`{"Response": "True", "imdbID": "tt15398776", "Title": "Oppenheimer", "Production": "Universal Pictures"}`))
		}
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, testHouses)
	movies, err := c.FetchByProductionHouse(context.Background(), "Marvel Studios", 1)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, "Iron Man", movies[0].Title)
}

func TestResolveHouse(t *testing.T) {
	c := NewClient("key", "http://unused", testHouses)

	require.Equal(t, "Warner Bros.", c.resolveHouse("Warner Bros. Pictures"))
	require.Equal(t, "Marvel Studios", c.resolveHouse("marvel studios"))
	require.Equal(t, "", c.resolveHouse("N/A"))
	require.Equal(t, "A24", c.resolveHouse("A24"))

	bare := NewClient("key", "http://unused", nil)
	require.Equal(t, "Warner Bros. Pictures", bare.resolveHouse("Warner Bros. Pictures"))
}
