package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ultroidx/movie-platform/internal/model"
)

// PlaylistRepo provides access to the `playlists` collection.
type PlaylistRepo struct{ c *mongo.Collection }

func NewPlaylistRepo(db *mongo.Database) *PlaylistRepo {
	return &PlaylistRepo{c: db.Collection("playlists")}
}

// Create inserts a playlist for a user and returns the stored document.
func (r *PlaylistRepo) Create(ctx context.Context, userID, name, description string, isPublic bool) (*model.Playlist, error) {
	now := time.Now().UTC()
	p := &model.Playlist{
		UserID:      userID,
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		Movies:      []model.PlaylistMovie{},
		Likes:       []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := r.c.InsertOne(ctx, p)
	if err != nil {
		return nil, wrapInsert(err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

// FindByID fetches a playlist by hex id.
func (r *PlaylistRepo) FindByID(ctx context.Context, id string) (*model.Playlist, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var p model.Playlist
	if err := r.c.FindOne(ctx, bson.M{"_id": objID}).Decode(&p); err != nil {
		return nil, wrapFind(err)
	}
	return &p, nil
}

// ByUser returns every playlist owned by a user.
func (r *PlaylistRepo) ByUser(ctx context.Context, userID string) ([]model.Playlist, error) {
	cur, err := r.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Playlist{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Public returns a page of public playlists.
func (r *PlaylistRepo) Public(ctx context.Context, skip, limit int64) ([]model.Playlist, error) {
	cur, err := r.c.Find(ctx, bson.M{"is_public": true},
		options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Playlist{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial field update and returns the fresh document.
func (r *PlaylistRepo) Update(ctx context.Context, id string, set bson.M) (*model.Playlist, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()
	res, err := r.c.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// AddMovie appends a movie entry to the playlist.
func (r *PlaylistRepo) AddMovie(ctx context.Context, id string, entry model.PlaylistMovie) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	entry.AddedAt = time.Now().UTC()
	res, err := r.c.UpdateByID(ctx, objID, bson.M{
		"$push": bson.M{"movies": entry},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveMovie pulls a movie entry out of the playlist by movie id.
func (r *PlaylistRepo) RemoveMovie(ctx context.Context, id, movieID string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.c.UpdateByID(ctx, objID, bson.M{
		"$pull": bson.M{"movies": bson.M{"movie_id": movieID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a playlist.
func (r *PlaylistRepo) Delete(ctx context.Context, id string) error {
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

// Like records that a user liked the playlist; liking twice is a no-op.
func (r *PlaylistRepo) Like(ctx context.Context, id, userID string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$addToSet": bson.M{"likes": userID}})
	return err
}

// Unlike removes a user's like.
func (r *PlaylistRepo) Unlike(ctx context.Context, id, userID string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$pull": bson.M{"likes": userID}})
	return err
}

// SortMovies reorders the embedded movie list in place and persists it.
// Supported sort keys are year, title and added_at.
func (r *PlaylistRepo) SortMovies(ctx context.Context, id, sortBy, order string) (*model.Playlist, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	desc := !strings.EqualFold(order, "asc")
	movies := p.Movies
	sort.SliceStable(movies, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "title":
			less = movies[i].Title < movies[j].Title
		case "added_at":
			less = movies[i].AddedAt.Before(movies[j].AddedAt)
		default: // year
			less = movies[i].Year < movies[j].Year
		}
		if desc {
			return !less
		}
		return less
	})
	return r.Update(ctx, id, bson.M{"movies": movies})
}
