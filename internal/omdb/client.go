package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ultroidx/movie-platform/internal/model"
)

// ErrNotFound is returned when the upstream answers but knows no movie
// matching the query (Response=False).  Transport and decode failures are
// returned as ordinary errors so callers can tell the two cases apart.
var ErrNotFound = errors.New("omdb: movie not found")

// Client is a reusable OMDb API client.  Lookups always request the full
// plot; Search returns the upstream's lightweight summaries.
type Client struct {
	apiKey  string
	baseURL string
	houses  []string
	http    *http.Client
}

// SearchResult is one row of a title search.
type SearchResult struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	IMDbID string `json:"imdb_id"`
	Type   string `json:"type"`
	Poster string `json:"poster"`
}

// SearchPage is the page of results for a title search.
type SearchPage struct {
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// NewClient creates a client for the given API key and base URL.  houses is
// the list of known production houses used to normalise the Production field;
// a nil slice disables the match and keeps the raw value.
func NewClient(apiKey, baseURL string, houses []string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		houses:  houses,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// payload mirrors the upstream JSON envelope.  Every field arrives as a
// string; absent values are reported as the literal "N/A".
type payload struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`

	IMDbID   string `json:"imdbID"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated"`
	Released string `json:"Released"`
	Runtime  string `json:"Runtime"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Writer   string `json:"Writer"`
	Actors   string `json:"Actors"`
	Plot     string `json:"Plot"`
	Language string `json:"Language"`
	Country  string `json:"Country"`
	Awards   string `json:"Awards"`
	Poster   string `json:"Poster"`
	Ratings  []struct {
		Source string `json:"Source"`
		Value  string `json:"Value"`
	} `json:"Ratings"`
	Metascore  string `json:"Metascore"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	Type       string `json:"Type"`
	BoxOffice  string `json:"BoxOffice"`
	Production string `json:"Production"`
	Website    string `json:"Website"`

	Search []struct {
		Title  string `json:"Title"`
		Year   string `json:"Year"`
		IMDbID string `json:"imdbID"`
		Type   string `json:"Type"`
		Poster string `json:"Poster"`
	} `json:"Search"`
	TotalResults string `json:"totalResults"`
}

// FetchByTitle looks up one movie by exact title.  year narrows the lookup
// when non-empty.
func (c *Client) FetchByTitle(ctx context.Context, title, year string) (*model.Movie, error) {
	q := url.Values{"t": {title}, "plot": {"full"}}
	if year != "" {
		q.Set("y", year)
	}
	p, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	return c.toMovie(p), nil
}

// FetchByID looks up one movie by IMDb id.
func (c *Client) FetchByID(ctx context.Context, imdbID string) (*model.Movie, error) {
	p, err := c.get(ctx, url.Values{"i": {imdbID}, "plot": {"full"}})
	if err != nil {
		return nil, err
	}
	return c.toMovie(p), nil
}

// Search runs a paged title search.  year narrows results when non-empty.
func (c *Client) Search(ctx context.Context, title, year string, page int) (*SearchPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{"s": {title}, "page": {fmt.Sprint(page)}}
	if year != "" {
		q.Set("y", year)
	}
	p, err := c.get(ctx, q)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &SearchPage{Results: []SearchResult{}}, nil
		}
		return nil, err
	}

	out := &SearchPage{Results: make([]SearchResult, 0, len(p.Search))}
	for _, s := range p.Search {
		out.Results = append(out.Results, SearchResult{
			Title:  s.Title,
			Year:   s.Year,
			IMDbID: s.IMDbID,
			Type:   s.Type,
			Poster: s.Poster,
		})
	}
	if n, err := strconv.Atoi(p.TotalResults); err == nil {
		out.TotalResults = n
	}
	return out, nil
}

// FetchByProductionHouse searches for the house name and keeps only the full
// records whose resolved production house actually matches.  The upstream has
// no native studio filter, this goes through search plus per-id lookups.
func (c *Client) FetchByProductionHouse(ctx context.Context, house string, page int) ([]*model.Movie, error) {
	pageRes, err := c.Search(ctx, house, "", page)
	if err != nil {
		return nil, err
	}

	movies := make([]*model.Movie, 0, len(pageRes.Results))
	for _, r := range pageRes.Results {
		m, err := c.FetchByID(ctx, r.IMDbID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if strings.Contains(strings.ToLower(m.ProductionHouse), strings.ToLower(house)) {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

func (c *Client) get(ctx context.Context, q url.Values) (*payload, error) {
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if p.Response != "True" {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (c *Client) toMovie(p *payload) *model.Movie {
	m := &model.Movie{
		IMDbID:          p.IMDbID,
		Title:           p.Title,
		Year:            p.Year,
		Rated:           p.Rated,
		Released:        p.Released,
		Runtime:         p.Runtime,
		Genre:           p.Genre,
		Director:        p.Director,
		Writer:          p.Writer,
		Actors:          p.Actors,
		Plot:            p.Plot,
		Language:        p.Language,
		Country:         p.Country,
		Awards:          p.Awards,
		Poster:          p.Poster,
		Metascore:       p.Metascore,
		IMDbRating:      p.IMDbRating,
		IMDbVotes:       p.IMDbVotes,
		Type:            p.Type,
		BoxOffice:       p.BoxOffice,
		Production:      p.Production,
		Website:         p.Website,
		ProductionHouse: c.resolveHouse(p.Production),
	}
	for _, r := range p.Ratings {
		m.Ratings = append(m.Ratings, model.SourceRating{Source: r.Source, Value: r.Value})
	}
	return m
}

// resolveHouse maps the raw Production credit onto one of the known houses.
// An unknown credit passes through verbatim; the "N/A" placeholder becomes
// the empty string.
func (c *Client) resolveHouse(production string) string {
	lower := strings.ToLower(production)
	for _, h := range c.houses {
		if strings.Contains(lower, strings.ToLower(h)) {
			return h
		}
	}
	if production == "N/A" {
		return ""
	}
	return production
}
