package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ultroidx/movie-platform/internal/model"
)

// Client fetches entertainment headlines from the upstream feed provider.
// Every failure path falls back to the built-in mock set so the news feature
// keeps working with the upstream down or the free-tier quota exhausted.
type Client struct {
	apiKey  string
	baseURL string
	log     *slog.Logger
	http    *http.Client
}

const query = "movie OR cinema OR entertainment OR hollywood"

// NewClient creates a feed client.  An empty apiKey is allowed and simply
// means every fetch serves mock articles.
func NewClient(apiKey, baseURL string, log *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch returns up to limit fresh articles sorted by publish time.  On any
// upstream failure it returns the mock set truncated to limit, never an
// error.
func (c *Client) Fetch(ctx context.Context, limit int) []model.NewsArticle {
	if c.apiKey == "" {
		return MockArticles(limit)
	}

	articles, err := c.fetch(ctx, limit)
	if err != nil {
		c.log.Warn("news upstream failed, serving mock articles", "error", err)
		return MockArticles(limit)
	}
	return articles
}

func (c *Client) fetch(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	q := url.Values{
		"apiKey":   {c.apiKey},
		"q":        {query},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
		"pageSize": {fmt.Sprint(limit)},
	}

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

	var payload struct {
		Status   string `json:"status"`
		Articles []struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			Content     string    `json:"content"`
			Author      string    `json:"author"`
			URL         string    `json:"url"`
			URLToImage  string    `json:"urlToImage"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("upstream status %q", payload.Status)
	}

	now := time.Now().UTC()
	out := make([]model.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		content := a.Description
		if content == "" {
			content = a.Content
		}
		author := a.Author
		if author == "" {
			author = "Entertainment Desk"
		}
		published := a.PublishedAt
		if published.IsZero() {
			published = now
		}
		out = append(out, model.NewsArticle{
			Title:       a.Title,
			Content:     content,
			Author:      author,
			Category:    Categorize(a.Title),
			ImageURL:    a.URLToImage,
			SourceURL:   a.URL,
			PublishedAt: published,
			CreatedAt:   now,
			AutoFetched: true,
		})
	}
	return out, nil
}

// categories maps ordered keyword sets onto categories.  Anime keywords sit
// ahead of the series keywords so a headline like "new anime series" lands in
// Anime rather than TV Series.
var categories = []struct {
	name     string
	keywords []string
}{
	{"Movies", []string{"movie", "film", "cinema", "box office"}},
	{"Anime", []string{"anime", "manga", "animation"}},
	{"TV Series", []string{"tv", "series", "show", "episode"}},
	{"Gaming", []string{"game", "gaming", "playstation", "xbox"}},
}

// Categorize derives an article category from its title.  The first keyword
// set with a substring hit wins; anything else is generic Entertainment.
func Categorize(title string) string {
	lower := strings.ToLower(title)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return "Entertainment"
}
