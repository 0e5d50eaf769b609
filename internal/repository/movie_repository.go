package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ultroidx/movie-platform/internal/model"
)

// MovieRepo provides access to the `movies` collection.
type MovieRepo struct{ c *mongo.Collection }

func NewMovieRepo(db *mongo.Database) *MovieRepo { return &MovieRepo{c: db.Collection("movies")} }

// Insert stores a new movie document and returns its hex id.  Timestamps are
// stamped here so callers only fill domain fields.
func (r *MovieRepo) Insert(ctx context.Context, m *model.Movie) (string, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.UserRatings == nil {
		m.UserRatings = []model.UserRating{}
	}
	if m.Reviews == nil {
		m.Reviews = []model.Review{}
	}
	res, err := r.c.InsertOne(ctx, m)
	if err != nil {
		return "", wrapInsert(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	m.ID = id
	return id.Hex(), nil
}

// CreateOrUpdate inserts a movie keyed by imdb_id, or refreshes the metadata
// fields of an existing record with the same imdb_id.  Used by the on-demand
// fetch endpoints where re-fetching should update the cached copy.
func (r *MovieRepo) CreateOrUpdate(ctx context.Context, m *model.Movie) (string, error) {
	if m.IMDbID == "" {
		return r.Insert(ctx, m)
	}
	var existing model.Movie
	err := r.c.FindOne(ctx, bson.M{"imdb_id": m.IMDbID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return r.Insert(ctx, m)
	}
	if err != nil {
		return "", err
	}
	set := bson.M{
		"title": m.Title, "year": m.Year, "rated": m.Rated, "released": m.Released,
		"runtime": m.Runtime, "genre": m.Genre, "director": m.Director, "writer": m.Writer,
		"actors": m.Actors, "plot": m.Plot, "language": m.Language, "country": m.Country,
		"awards": m.Awards, "poster": m.Poster, "ratings": m.Ratings,
		"metascore": m.Metascore, "imdb_rating": m.IMDbRating, "imdb_votes": m.IMDbVotes,
		"type": m.Type, "box_office": m.BoxOffice, "production": m.Production,
		"website": m.Website, "production_house": m.ProductionHouse,
		"updated_at": time.Now().UTC(),
	}
	if _, err := r.c.UpdateByID(ctx, existing.ID, bson.M{"$set": set}); err != nil {
		return "", err
	}
	return existing.ID.Hex(), nil
}

// FindByID fetches a movie by its hex id.
func (r *MovieRepo) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var m model.Movie
	if err := r.c.FindOne(ctx, bson.M{"_id": objID}).Decode(&m); err != nil {
		return nil, wrapFind(err)
	}
	return &m, nil
}

// FindByTitle fetches a movie by exact title, the seeding dedup key.
func (r *MovieRepo) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var m model.Movie
	if err := r.c.FindOne(ctx, bson.M{"title": title}).Decode(&m); err != nil {
		return nil, wrapFind(err)
	}
	return &m, nil
}

// FindByIMDbID fetches a movie by its external catalog identifier.
func (r *MovieRepo) FindByIMDbID(ctx context.Context, imdbID string) (*model.Movie, error) {
	var m model.Movie
	if err := r.c.FindOne(ctx, bson.M{"imdb_id": imdbID}).Decode(&m); err != nil {
		return nil, wrapFind(err)
	}
	return &m, nil
}

// ByProductionHouse lists movies of a production house, newest first by the
// given sort field.
func (r *MovieRepo) ByProductionHouse(ctx context.Context, house string, skip, limit int64, sortBy string) ([]model.Movie, error) {
	if sortBy == "" {
		sortBy = "year"
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: -1}}).
		SetSkip(skip).SetLimit(limit)
	return r.list(ctx, bson.M{"production_house": house}, opts)
}

// ByGenre lists movies whose genre field contains the given genre.
func (r *MovieRepo) ByGenre(ctx context.Context, genre string, skip, limit int64) ([]model.Movie, error) {
	filter := bson.M{"genre": bson.M{"$regex": genre, "$options": "i"}}
	return r.list(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
}

// Trending returns the most viewed movies.
func (r *MovieRepo) Trending(ctx context.Context, limit int64) ([]model.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "view_count", Value: -1}}).SetLimit(limit)
	return r.list(ctx, bson.M{}, opts)
}

// TopRated returns movies ordered by their upstream rating.
func (r *MovieRepo) TopRated(ctx context.Context, limit int64) ([]model.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "imdb_rating", Value: -1}}).SetLimit(limit)
	return r.list(ctx, bson.M{}, opts)
}

// Filter applies the multi-criteria filter endpoint's query.
func (r *MovieRepo) Filter(ctx context.Context, f model.MovieFilter, skip, limit int64) ([]model.Movie, error) {
	q := bson.M{}
	if f.ProductionHouse != "" {
		q["production_house"] = f.ProductionHouse
	}
	if f.Genre != "" {
		q["genre"] = bson.M{"$regex": f.Genre, "$options": "i"}
	}
	if f.YearFrom != "" || f.YearTo != "" {
		yr := bson.M{}
		if f.YearFrom != "" {
			yr["$gte"] = f.YearFrom
		}
		if f.YearTo != "" {
			yr["$lte"] = f.YearTo
		}
		q["year"] = yr
	}
	if f.RatingMin > 0 {
		q["imdb_rating"] = bson.M{"$gte": f.RatingMin}
	}
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "year"
	}
	order := -1
	if strings.EqualFold(f.SortOrder, "asc") {
		order = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(skip).SetLimit(limit)
	return r.list(ctx, q, opts)
}

// IncrementViewCount bumps the view counter by one.
func (r *MovieRepo) IncrementViewCount(ctx context.Context, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$inc": bson.M{"view_count": 1}})
	return err
}

// SetViewCount overwrites the view counter, used by the trending re-seed to
// keep the ordering deterministic.
func (r *MovieRepo) SetViewCount(ctx context.Context, id string, n int64) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$set": bson.M{"view_count": n}})
	return err
}

// AddRating appends a user rating to the movie's rating list.
func (r *MovieRepo) AddRating(ctx context.Context, id, userID string, rating float64) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	entry := model.UserRating{UserID: userID, Rating: rating, CreatedAt: time.Now().UTC()}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$push": bson.M{"user_ratings": entry}})
	return err
}

// AddReview appends a user review to the movie's review list.
func (r *MovieRepo) AddReview(ctx context.Context, id, userID, text string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	entry := model.Review{UserID: userID, Review: text, CreatedAt: time.Now().UTC()}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$push": bson.M{"reviews": entry}})
	return err
}

// Delete removes a single movie.
func (r *MovieRepo) Delete(ctx context.Context, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSeeded removes every record the seeding pipeline inserted.
func (r *MovieRepo) DeleteSeeded(ctx context.Context) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.M{"seeded": true})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of movie documents.
func (r *MovieRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

// CountSeeded counts records inserted by the seeding pipeline.
func (r *MovieRepo) CountSeeded(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{"seeded": true})
}

// CountTrending counts records at or above a view-count threshold.
func (r *MovieRepo) CountTrending(ctx context.Context, minViews int64) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{"view_count": bson.M{"$gte": minViews}})
}

func (r *MovieRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Movie, error) {
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
