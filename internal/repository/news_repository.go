package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ultroidx/movie-platform/internal/model"
)

// NewsRepo provides access to the `news` collection.
type NewsRepo struct{ c *mongo.Collection }

func NewNewsRepo(db *mongo.Database) *NewsRepo { return &NewsRepo{c: db.Collection("news")} }

// Insert stores an article and returns it with timestamps and id filled in.
func (r *NewsRepo) Insert(ctx context.Context, a *model.NewsArticle) error {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
	res, err := r.c.InsertOne(ctx, a)
	if err != nil {
		return wrapInsert(err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID fetches an article by hex id.
func (r *NewsRepo) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var a model.NewsArticle
	if err := r.c.FindOne(ctx, bson.M{"_id": objID}).Decode(&a); err != nil {
		return nil, wrapFind(err)
	}
	return &a, nil
}

// FindByTitle fetches an article by exact title, the auto-fetch dedup key.
func (r *NewsRepo) FindByTitle(ctx context.Context, title string) (*model.NewsArticle, error) {
	var a model.NewsArticle
	if err := r.c.FindOne(ctx, bson.M{"title": title}).Decode(&a); err != nil {
		return nil, wrapFind(err)
	}
	return &a, nil
}

// List returns articles newest first.
func (r *NewsRepo) List(ctx context.Context, skip, limit int64) ([]model.NewsArticle, error) {
	return r.find(ctx, bson.M{}, skip, limit)
}

// ByCategory returns articles of one category, newest first.
func (r *NewsRepo) ByCategory(ctx context.Context, category string, skip, limit int64) ([]model.NewsArticle, error) {
	return r.find(ctx, bson.M{"category": category}, skip, limit)
}

// Latest returns the most recent articles.
func (r *NewsRepo) Latest(ctx context.Context, limit int64) ([]model.NewsArticle, error) {
	return r.find(ctx, bson.M{}, 0, limit)
}

// Search matches the query against titles and bodies, case-insensitive.
func (r *NewsRepo) Search(ctx context.Context, query string, skip, limit int64) ([]model.NewsArticle, error) {
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": query, "$options": "i"}},
		{"content": bson.M{"$regex": query, "$options": "i"}},
	}}
	return r.find(ctx, filter, skip, limit)
}

// Update applies a partial field update and returns the fresh document.
func (r *NewsRepo) Update(ctx context.Context, id string, set bson.M) (*model.NewsArticle, error) {
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

// Delete removes an article.
func (r *NewsRepo) Delete(ctx context.Context, id string) error {
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

// IncrementViews bumps the view counter by one.
func (r *NewsRepo) IncrementViews(ctx context.Context, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	_, err = r.c.UpdateByID(ctx, objID, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// DeleteAutoFetchedBefore prunes auto-fetched articles created before the
// cutoff and reports how many were removed.
func (r *NewsRepo) DeleteAutoFetchedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.M{
		"auto_fetched": true,
		"created_at":   bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAutoFetched removes every auto-fetched article regardless of age.
func (r *NewsRepo) DeleteAutoFetched(ctx context.Context) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.M{"auto_fetched": true})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of articles.
func (r *NewsRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

// CountAutoFetched counts articles inserted by the feed seeding step.
func (r *NewsRepo) CountAutoFetched(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{"auto_fetched": true})
}

func (r *NewsRepo) find(ctx context.Context, filter bson.M, skip, limit int64) ([]model.NewsArticle, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).SetLimit(limit)
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.NewsArticle{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
