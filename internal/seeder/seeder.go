package seeder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/omdb"
	"github.com/ultroidx/movie-platform/internal/repository"
)

// MovieStore is the slice of the movie repository the seeder needs.
type MovieStore interface {
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
	Insert(ctx context.Context, m *model.Movie) (string, error)
	SetViewCount(ctx context.Context, id string, n int64) error
	Count(ctx context.Context) (int64, error)
	CountSeeded(ctx context.Context) (int64, error)
	CountTrending(ctx context.Context, minViews int64) (int64, error)
}

// Metadata is the slice of the metadata client the seeder needs.
type Metadata interface {
	FetchByTitle(ctx context.Context, title, year string) (*model.Movie, error)
}

// Result carries the aggregate counts of one seeding run.
type Result struct {
	Added   int `json:"total_added"`
	Skipped int `json:"total_skipped"`
	Failed  int `json:"total_failed"`
}

// Status reports the shape of the current catalog.
type Status struct {
	TotalMovies    int64 `json:"total_movies"`
	SeededMovies   int64 `json:"seeded_movies"`
	TrendingMovies int64 `json:"trending_movies"`
	HousesCovered  int   `json:"production_houses_covered"`
}

// Seeder populates the movie store from the metadata upstream using the
// curated catalog.  Pacing pauses keep the free-tier upstream happy; tests
// zero them out.
type Seeder struct {
	store MovieStore
	meta  Metadata
	log   *slog.Logger

	// TitlePause runs between title fetches, HousePause between production
	// houses, QuickPause between quick-seed fetches.
	TitlePause time.Duration
	HousePause time.Duration
	QuickPause time.Duration
}

// New returns a seeder with the upstream-friendly default pacing.
func New(store MovieStore, meta Metadata, log *slog.Logger) *Seeder {
	return &Seeder{
		store:      store,
		meta:       meta,
		log:        log,
		TitlePause: 500 * time.Millisecond,
		HousePause: 2 * time.Second,
		QuickPause: 300 * time.Millisecond,
	}
}

// SeedAll seeds every production house in the catalog.
func (s *Seeder) SeedAll(ctx context.Context) (*Result, error) {
	s.log.Info("starting movie seeding")
	total := &Result{}

	for _, house := range HouseOrder {
		s.log.Info("seeding production house", "house", house)
		res, err := s.SeedProductionHouse(ctx, house, HouseCatalog[house])
		if err != nil {
			return nil, err
		}
		total.Added += res.Added
		total.Skipped += res.Skipped
		total.Failed += res.Failed

		if err := s.pause(ctx, s.HousePause); err != nil {
			return nil, err
		}
	}

	s.log.Info("seeding complete", "added", total.Added, "skipped", total.Skipped, "failed", total.Failed)
	return total, nil
}

// SeedProductionHouse seeds the given titles for one house.  Titles already
// present are skipped; titles unknown upstream are logged and dropped.  Only
// store failures abort the batch.
func (s *Seeder) SeedProductionHouse(ctx context.Context, house string, titles []string) (*Result, error) {
	res := &Result{}

	for _, title := range titles {
		existing, err := s.store.FindByTitle(ctx, title)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			s.log.Debug("skipped, already exists", "title", title)
			res.Skipped++
			continue
		}

		m, err := s.fetch(ctx, title)
		if err != nil {
			return nil, err
		}
		if m == nil {
			res.Failed++
			continue
		}

		// The metadata-resolved house wins; the catalog's declared house
		// only fills a blank.
		if m.ProductionHouse == "" {
			m.ProductionHouse = house
		}
		m.ViewCount = 0
		m.Seeded = true

		ok, err := s.insert(ctx, m)
		if err != nil {
			return nil, err
		}
		if ok {
			s.log.Info("added movie", "title", title, "house", m.ProductionHouse)
			res.Added++
		} else {
			res.Skipped++
		}

		if err := s.pause(ctx, s.TitlePause); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// SeedTrending seeds the trending list with stepped view counts so the title
// at position i ranks at 1000 + 100*i.  A title already present only gets its
// counter updated.
func (s *Seeder) SeedTrending(ctx context.Context) (int, error) {
	s.log.Info("seeding trending movies")

	added := 0
	for i, title := range TrendingTitles {
		views := int64(1000 + 100*i)

		existing, err := s.store.FindByTitle(ctx, title)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return added, err
		}

		if existing != nil {
			if err := s.store.SetViewCount(ctx, existing.ID.Hex(), views); err != nil {
				return added, err
			}
			added++
		} else {
			m, err := s.fetch(ctx, title)
			if err != nil {
				return added, err
			}
			if m != nil {
				m.ViewCount = views
				m.Trending = true
				ok, err := s.insert(ctx, m)
				if err != nil {
					return added, err
				}
				if ok {
					added++
				}
			}
		}

		if err := s.pause(ctx, s.TitlePause); err != nil {
			return added, err
		}
	}

	s.log.Info("trending seed complete", "added", added)
	return added, nil
}

// SeedTopRated seeds the top-rated list with a flat baseline view count.
// Existing records are left completely untouched.
func (s *Seeder) SeedTopRated(ctx context.Context) (int, error) {
	s.log.Info("seeding top-rated movies")

	added := 0
	for _, title := range TopRatedTitles {
		existing, err := s.store.FindByTitle(ctx, title)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return added, err
		}
		if existing == nil {
			m, err := s.fetch(ctx, title)
			if err != nil {
				return added, err
			}
			if m != nil {
				m.ViewCount = 500
				m.TopRated = true
				ok, err := s.insert(ctx, m)
				if err != nil {
					return added, err
				}
				if ok {
					added++
				}
			}
		}

		if err := s.pause(ctx, s.TitlePause); err != nil {
			return added, err
		}
	}

	s.log.Info("top-rated seed complete", "added", added)
	return added, nil
}

// QuickSeed inserts the essentials list only, with a shorter pause.
func (s *Seeder) QuickSeed(ctx context.Context) (int, error) {
	s.log.Info("quick seeding essential movies")

	added := 0
	for _, title := range EssentialTitles {
		existing, err := s.store.FindByTitle(ctx, title)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return added, err
		}
		if existing == nil {
			m, err := s.fetch(ctx, title)
			if err != nil {
				return added, err
			}
			if m != nil {
				m.ViewCount = 100
				ok, err := s.insert(ctx, m)
				if err != nil {
					return added, err
				}
				if ok {
					s.log.Info("added movie", "title", title)
					added++
				}
			}
		}

		if err := s.pause(ctx, s.QuickPause); err != nil {
			return added, err
		}
	}

	s.log.Info("quick seed complete", "added", added)
	return added, nil
}

// Status returns aggregate catalog counts.  Trending means a view count of
// 1000 or more.
func (s *Seeder) Status(ctx context.Context) (*Status, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	seeded, err := s.store.CountSeeded(ctx)
	if err != nil {
		return nil, err
	}
	trending, err := s.store.CountTrending(ctx, 1000)
	if err != nil {
		return nil, err
	}
	return &Status{
		TotalMovies:    total,
		SeededMovies:   seeded,
		TrendingMovies: trending,
		HousesCovered:  len(HouseCatalog),
	}, nil
}

// fetch wraps the metadata lookup.  A nil movie with nil error means the
// title is unknown or temporarily unavailable upstream and should be skipped.
func (s *Seeder) fetch(ctx context.Context, title string) (*model.Movie, error) {
	m, err := s.meta.FetchByTitle(ctx, title, "")
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			s.log.Warn("title not found upstream", "title", title)
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn("metadata fetch failed", "title", title, "error", err)
		return nil, nil
	}
	return m, nil
}

// insert wraps the store insert.  A duplicate means another writer won the
// read-then-write race; the unique imdb_id index is the actual guard, so it
// is logged and swallowed rather than treated as a failure.
func (s *Seeder) insert(ctx context.Context, m *model.Movie) (bool, error) {
	if _, err := s.store.Insert(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn("duplicate insert skipped", "title", m.Title)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Seeder) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
