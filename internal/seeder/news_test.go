package seeder

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/repository"
)

type fakeNewsStore struct {
	byTitle map[string]*model.NewsArticle
	deletes []time.Time
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{byTitle: map[string]*model.NewsArticle{}}
}

func (f *fakeNewsStore) FindByTitle(_ context.Context, title string) (*model.NewsArticle, error) {
	if a, ok := f.byTitle[title]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeNewsStore) Insert(_ context.Context, a *model.NewsArticle) error {
	if _, ok := f.byTitle[a.Title]; ok {
		return repository.ErrDuplicate
	}
	f.byTitle[a.Title] = a
	return nil
}

func (f *fakeNewsStore) DeleteAutoFetchedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.deletes = append(f.deletes, cutoff)
	var removed int64
	for title, a := range f.byTitle {
		if a.AutoFetched && a.CreatedAt.Before(cutoff) {
			delete(f.byTitle, title)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeNewsStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.byTitle)), nil
}

func (f *fakeNewsStore) CountAutoFetched(_ context.Context) (int64, error) {
	var n int64
	for _, a := range f.byTitle {
		if a.AutoFetched {
			n++
		}
	}
	return n, nil
}

type fakeFeed struct {
	articles []model.NewsArticle
	fetches  int
}

func (f *fakeFeed) Fetch(_ context.Context, limit int) []model.NewsArticle {
	f.fetches++
	if len(f.articles) > limit {
		return f.articles[:limit]
	}
	return f.articles
}

func feedArticles(titles ...string) []model.NewsArticle {
	out := make([]model.NewsArticle, 0, len(titles))
	for _, title := range titles {
		out = append(out, model.NewsArticle{
			Title:       title,
			Content:     "body of " + title,
			Category:    "Movies",
			AutoFetched: true,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return out
}

func newTestNewsSeeder(store NewsStore, feed Feed) *NewsSeeder {
	return NewNews(store, feed, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewsSeedDedupsByTitle(t *testing.T) {
	store := newFakeNewsStore()
	feed := &fakeFeed{articles: feedArticles("one", "two", "three")}
	n := newTestNewsSeeder(store, feed)

	added, err := n.Seed(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, added)

	again, err := n.Seed(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, again)
	require.Len(t, store.byTitle, 3)
}

func TestNewsSeedEmptyFeed(t *testing.T) {
	store := newFakeNewsStore()
	n := newTestNewsSeeder(store, &fakeFeed{})

	added, err := n.Seed(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, added)
}

func TestNewsSeedRespectsLimit(t *testing.T) {
	titles := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		titles = append(titles, string(rune('a'+i))+"-article")
	}
	store := newFakeNewsStore()
	feed := &fakeFeed{articles: feedArticles(titles...)}
	n := newTestNewsSeeder(store, feed)

	added, err := n.Seed(context.Background())
	require.NoError(t, err)
	require.Equal(t, n.SeedLimit, added)
}

func TestRefreshPrunesBeforeSeeding(t *testing.T) {
	store := newFakeNewsStore()

	// A stale auto-fetched article past the retention window and a manual
	// one of the same age.
	stale := time.Now().UTC().Add(-8 * 24 * time.Hour)
	store.byTitle["stale"] = &model.NewsArticle{Title: "stale", AutoFetched: true, CreatedAt: stale}
	store.byTitle["manual"] = &model.NewsArticle{Title: "manual", AutoFetched: false, CreatedAt: stale}

	feed := &fakeFeed{articles: feedArticles("stale", "fresh")}
	n := newTestNewsSeeder(store, feed)

	res, err := n.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Removed)
	// "stale" was pruned first, so re-seeding restores it alongside "fresh".
	require.Equal(t, 2, res.Added)

	require.Contains(t, store.byTitle, "stale")
	require.Contains(t, store.byTitle, "fresh")
	require.Contains(t, store.byTitle, "manual")
	require.Len(t, store.deletes, 1)
}

func TestRefreshKeepsRecentAutoFetched(t *testing.T) {
	store := newFakeNewsStore()
	store.byTitle["recent"] = &model.NewsArticle{
		Title:       "recent",
		AutoFetched: true,
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
	}

	n := newTestNewsSeeder(store, &fakeFeed{})
	res, err := n.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Removed)
	require.Contains(t, store.byTitle, "recent")
}

func TestNewsStatusSplitsAutoAndManual(t *testing.T) {
	store := newFakeNewsStore()
	store.byTitle["auto"] = &model.NewsArticle{Title: "auto", AutoFetched: true}
	store.byTitle["hand"] = &model.NewsArticle{Title: "hand"}

	n := newTestNewsSeeder(store, &fakeFeed{})
	st, err := n.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), st.TotalArticles)
	require.Equal(t, int64(1), st.AutoFetched)
	require.Equal(t, int64(1), st.Manual)
}
