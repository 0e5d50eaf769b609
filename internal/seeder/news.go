package seeder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/repository"
)

// NewsStore is the slice of the news repository the seeder needs.
type NewsStore interface {
	FindByTitle(ctx context.Context, title string) (*model.NewsArticle, error)
	Insert(ctx context.Context, a *model.NewsArticle) error
	DeleteAutoFetchedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountAutoFetched(ctx context.Context) (int64, error)
}

// Feed is the slice of the news client the seeder needs.
type Feed interface {
	Fetch(ctx context.Context, limit int) []model.NewsArticle
}

// RefreshResult carries the counts of one refresh run.
type RefreshResult struct {
	Removed int64 `json:"removed"`
	Added   int   `json:"added"`
}

// NewsStatus reports the shape of the current news collection.
type NewsStatus struct {
	TotalArticles int64 `json:"total_articles"`
	AutoFetched   int64 `json:"auto_fetched"`
	Manual        int64 `json:"manual"`
}

// NewsSeeder keeps the news collection stocked with recent articles.
type NewsSeeder struct {
	store NewsStore
	feed  Feed
	log   *slog.Logger

	// SeedLimit is how many articles one seeding run requests.
	// RetainFor is how long auto-fetched articles live before refresh
	// prunes them.
	SeedLimit int
	RetainFor time.Duration
}

// NewNews returns a news seeder with the default batch size and retention.
func NewNews(store NewsStore, feed Feed, log *slog.Logger) *NewsSeeder {
	return &NewsSeeder{
		store:     store,
		feed:      feed,
		log:       log,
		SeedLimit: 15,
		RetainFor: 7 * 24 * time.Hour,
	}
}

// Seed fetches a batch of articles and inserts the ones whose title is not
// already present.  Returns the number added; only store failures are errors.
func (n *NewsSeeder) Seed(ctx context.Context) (int, error) {
	n.log.Info("fetching and seeding news articles")

	articles := n.feed.Fetch(ctx, n.SeedLimit)
	if len(articles) == 0 {
		n.log.Warn("no articles fetched")
		return 0, nil
	}

	added := 0
	for i := range articles {
		a := &articles[i]

		_, err := n.store.FindByTitle(ctx, a.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return added, err
		}

		if err := n.store.Insert(ctx, a); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return added, err
		}
		n.log.Info("added article", "title", a.Title, "category", a.Category)
		added++
	}

	n.log.Info("news seed complete", "added", added)
	return added, nil
}

// Refresh prunes auto-fetched articles past the retention window and then
// seeds a fresh batch.
func (n *NewsSeeder) Refresh(ctx context.Context) (*RefreshResult, error) {
	n.log.Info("refreshing news articles")

	cutoff := time.Now().UTC().Add(-n.RetainFor)
	removed, err := n.store.DeleteAutoFetchedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	n.log.Info("removed stale articles", "removed", removed)

	added, err := n.Seed(ctx)
	if err != nil {
		return nil, err
	}

	return &RefreshResult{Removed: removed, Added: added}, nil
}

// Status returns aggregate article counts.
func (n *NewsSeeder) Status(ctx context.Context) (*NewsStatus, error) {
	total, err := n.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	auto, err := n.store.CountAutoFetched(ctx)
	if err != nil {
		return nil, err
	}
	return &NewsStatus{
		TotalArticles: total,
		AutoFetched:   auto,
		Manual:        total - auto,
	}, nil
}
