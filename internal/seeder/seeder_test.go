package seeder

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/omdb"
	"github.com/ultroidx/movie-platform/internal/repository"
)

type fakeMovieStore struct {
	byTitle map[string]*model.Movie
	byID    map[string]*model.Movie
	inserts int
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{
		byTitle: map[string]*model.Movie{},
		byID:    map[string]*model.Movie{},
	}
}

func (f *fakeMovieStore) FindByTitle(_ context.Context, title string) (*model.Movie, error) {
	if m, ok := f.byTitle[title]; ok {
		return m, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMovieStore) Insert(_ context.Context, m *model.Movie) (string, error) {
	if _, ok := f.byTitle[m.Title]; ok {
		return "", repository.ErrDuplicate
	}
	m.ID = primitive.NewObjectID()
	f.byTitle[m.Title] = m
	f.byID[m.ID.Hex()] = m
	f.inserts++
	return m.ID.Hex(), nil
}

func (f *fakeMovieStore) SetViewCount(_ context.Context, id string, n int64) error {
	m, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.ViewCount = n
	return nil
}

func (f *fakeMovieStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.byTitle)), nil
}

func (f *fakeMovieStore) CountSeeded(_ context.Context) (int64, error) {
	var n int64
	for _, m := range f.byTitle {
		if m.Seeded {
			n++
		}
	}
	return n, nil
}

func (f *fakeMovieStore) CountTrending(_ context.Context, minViews int64) (int64, error) {
	var n int64
	for _, m := range f.byTitle {
		if m.ViewCount >= minViews {
			n++
		}
	}
	return n, nil
}

type fakeMetadata struct {
	missing map[string]bool
	house   string
}

func (f *fakeMetadata) FetchByTitle(_ context.Context, title, _ string) (*model.Movie, error) {
	if f.missing[title] {
		return nil, omdb.ErrNotFound
	}
	return &model.Movie{
		Title:           title,
		Year:            "2000",
		IMDbID:          "tt-" + title,
		ProductionHouse: f.house,
	}, nil
}

func newTestSeeder(store MovieStore, meta Metadata) *Seeder {
	s := New(store, meta, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.TitlePause = 0
	s.HousePause = 0
	s.QuickPause = 0
	return s
}

func TestQuickSeedIsIdempotent(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	added, err := s.QuickSeed(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(EssentialTitles), added)

	for _, title := range EssentialTitles {
		m := store.byTitle[title]
		require.NotNil(t, m)
		require.Equal(t, int64(100), m.ViewCount)
	}

	again, err := s.QuickSeed(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, again)
	require.Equal(t, len(EssentialTitles), store.inserts)
}

func TestQuickSeedSkipsUnknownTitles(t *testing.T) {
	store := newFakeMovieStore()
	meta := &fakeMetadata{missing: map[string]bool{EssentialTitles[0]: true}}
	s := newTestSeeder(store, meta)

	added, err := s.QuickSeed(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(EssentialTitles)-1, added)
	require.NotContains(t, store.byTitle, EssentialTitles[0])
}

func TestSeedProductionHouseFillsBlankHouse(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	res, err := s.SeedProductionHouse(context.Background(), "Warner Bros.", []string{"Inception", "The Dark Knight"})
	require.NoError(t, err)
	require.Equal(t, 2, res.Added)
	require.Equal(t, 0, res.Skipped)

	for _, title := range []string{"Inception", "The Dark Knight"} {
		m := store.byTitle[title]
		require.NotNil(t, m)
		require.Equal(t, "Warner Bros.", m.ProductionHouse)
		require.True(t, m.Seeded)
		require.Equal(t, int64(0), m.ViewCount)
	}
}

func TestSeedProductionHouseKeepsResolvedHouse(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{house: "Legendary Pictures"})

	_, err := s.SeedProductionHouse(context.Background(), "Warner Bros.", []string{"Dune"})
	require.NoError(t, err)
	require.Equal(t, "Legendary Pictures", store.byTitle["Dune"].ProductionHouse)
}

func TestSeedProductionHouseSkipsExisting(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	_, err := s.SeedProductionHouse(context.Background(), "Warner Bros.", []string{"Inception"})
	require.NoError(t, err)

	res, err := s.SeedProductionHouse(context.Background(), "Warner Bros.", []string{"Inception"})
	require.NoError(t, err)
	require.Equal(t, 0, res.Added)
	require.Equal(t, 1, res.Skipped)
}

func TestSeedProductionHouseCountsFetchFailures(t *testing.T) {
	store := newFakeMovieStore()
	meta := &fakeMetadata{missing: map[string]bool{"Lost Film": true}}
	s := newTestSeeder(store, meta)

	res, err := s.SeedProductionHouse(context.Background(), "Warner Bros.", []string{"Inception", "Lost Film"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Added)
	require.Equal(t, 0, res.Skipped)
	require.Equal(t, 1, res.Failed)
}

func TestSeedTrendingStepsViewCounts(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	added, err := s.SeedTrending(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(TrendingTitles), added)

	for i, title := range TrendingTitles {
		m := store.byTitle[title]
		require.NotNil(t, m, title)
		require.Equal(t, int64(1000+100*i), m.ViewCount)
		require.True(t, m.Trending)
	}
}

func TestSeedTrendingUpdatesExistingViewCount(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	// Pre-insert the first trending title with a stale counter.
	_, err := store.Insert(context.Background(), &model.Movie{Title: TrendingTitles[0], ViewCount: 7})
	require.NoError(t, err)
	inserts := store.inserts

	added, err := s.SeedTrending(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(TrendingTitles), added)
	require.Equal(t, int64(1000), store.byTitle[TrendingTitles[0]].ViewCount)
	require.Equal(t, inserts+len(TrendingTitles)-1, store.inserts)
}

func TestSeedTrendingPositionalCountsSurviveGaps(t *testing.T) {
	store := newFakeMovieStore()
	meta := &fakeMetadata{missing: map[string]bool{TrendingTitles[1]: true}}
	s := newTestSeeder(store, meta)

	added, err := s.SeedTrending(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(TrendingTitles)-1, added)

	// The counter is bound to list position, not to how many titles
	// resolved before it.
	require.Equal(t, int64(1000+100*2), store.byTitle[TrendingTitles[2]].ViewCount)
}

func TestSeedTopRatedDoesNotClobberExisting(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	_, err := store.Insert(context.Background(), &model.Movie{Title: TopRatedTitles[0], ViewCount: 9999})
	require.NoError(t, err)

	added, err := s.SeedTopRated(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(TopRatedTitles)-1, added)

	require.Equal(t, int64(9999), store.byTitle[TopRatedTitles[0]].ViewCount)
	require.False(t, store.byTitle[TopRatedTitles[0]].TopRated)
	require.Equal(t, int64(500), store.byTitle[TopRatedTitles[1]].ViewCount)
	require.True(t, store.byTitle[TopRatedTitles[1]].TopRated)
}

func TestSeedAllCoversEveryHouse(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	res, err := s.SeedAll(context.Background())
	require.NoError(t, err)

	// Some titles appear under more than one house; only the first
	// occurrence inserts, later ones count as skips.
	unique := map[string]bool{}
	total := 0
	for _, titles := range HouseCatalog {
		total += len(titles)
		for _, title := range titles {
			unique[title] = true
		}
	}
	require.Equal(t, len(unique), res.Added)
	require.Equal(t, total-len(unique), res.Skipped)
	require.Equal(t, 0, res.Failed)
	require.Len(t, store.byTitle, len(unique))
}

func TestStatusCounts(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	_, err := s.SeedTrending(context.Background())
	require.NoError(t, err)

	st, err := s.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(len(TrendingTitles)), st.TotalMovies)
	require.Equal(t, int64(len(TrendingTitles)), st.TrendingMovies)
	require.Equal(t, len(HouseCatalog), st.HousesCovered)
}

func TestSeedStopsOnCancelledContext(t *testing.T) {
	store := newFakeMovieStore()
	s := newTestSeeder(store, &fakeMetadata{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The paused loop notices cancellation once a pause is configured.
	s.QuickPause = time.Hour
	_, err := s.QuickSeed(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
