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
	"github.com/ultroidx/movie-platform/internal/utils"
)

// UserRepo provides access to the `users` collection.
type UserRepo struct{ c *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo { return &UserRepo{c: db.Collection("users")} }

// Create inserts a user with a bcrypt-hashed password and returns the new
// document.  Username and email collisions surface as ErrDuplicate through
// the unique indexes.
func (r *UserRepo) Create(ctx context.Context, username, email, password, name, bio, role string, cost int) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Bio:          bio,
		Role:         role,
		Favorites:    []string{},
		Watchlist:    []string{},
		WatchHistory: []model.WatchEntry{},
		Followers:    []string{},
		Following:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := r.c.InsertOne(ctx, u)
	if err != nil {
		return nil, wrapInsert(err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// FindByUsername fetches a user by normalized username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var u model.User
	if err := r.c.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, wrapFind(err)
	}
	return &u, nil
}

// FindByID fetches a user by hex id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := r.c.FindOne(ctx, bson.M{"_id": objID}).Decode(&u); err != nil {
		return nil, wrapFind(err)
	}
	return &u, nil
}

// List returns a page of users, for the admin surface.
func (r *UserRepo) List(ctx context.Context, skip, limit int64) ([]model.User, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial field update and returns the fresh document.
// Callers are responsible for stripping protected fields first.
func (r *UserRepo) Update(ctx context.Context, id string, set bson.M) (*model.User, error) {
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

// Delete removes a user document.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
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

// AddToFavorites adds a movie id to the favorites set.
func (r *UserRepo) AddToFavorites(ctx context.Context, id, movieID string) error {
	return r.updateByID(ctx, id, bson.M{"$addToSet": bson.M{"favorites": movieID}})
}

// RemoveFromFavorites removes a movie id from the favorites set.
func (r *UserRepo) RemoveFromFavorites(ctx context.Context, id, movieID string) error {
	return r.updateByID(ctx, id, bson.M{"$pull": bson.M{"favorites": movieID}})
}

// AddToWatchlist adds a movie id to the watchlist set.
func (r *UserRepo) AddToWatchlist(ctx context.Context, id, movieID string) error {
	return r.updateByID(ctx, id, bson.M{"$addToSet": bson.M{"watchlist": movieID}})
}

// AddToWatchHistory appends a watch-history entry.
func (r *UserRepo) AddToWatchHistory(ctx context.Context, id, movieID string) error {
	entry := model.WatchEntry{MovieID: movieID, WatchedAt: time.Now().UTC()}
	return r.updateByID(ctx, id, bson.M{"$push": bson.M{"watch_history": entry}})
}

func (r *UserRepo) updateByID(ctx context.Context, id string, update bson.M) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.c.UpdateByID(ctx, objID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
