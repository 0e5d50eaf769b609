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

// ContactRepo provides access to the `contacts` collection.
type ContactRepo struct{ c *mongo.Collection }

func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{c: db.Collection("contacts")}
}

// Create stores a contact form submission in the pending state.
func (r *ContactRepo) Create(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	contact := &model.Contact{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Status:    model.ContactPending,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.c.InsertOne(ctx, contact)
	if err != nil {
		return nil, wrapInsert(err)
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return contact, nil
}

// FindByID fetches a submission by hex id.
func (r *ContactRepo) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var contact model.Contact
	if err := r.c.FindOne(ctx, bson.M{"_id": objID}).Decode(&contact); err != nil {
		return nil, wrapFind(err)
	}
	return &contact, nil
}

// List returns submissions newest first.
func (r *ContactRepo) List(ctx context.Context, skip, limit int64) ([]model.Contact, error) {
	return r.find(ctx, bson.M{}, skip, limit)
}

// Pending returns submissions still awaiting triage.
func (r *ContactRepo) Pending(ctx context.Context, skip, limit int64) ([]model.Contact, error) {
	return r.find(ctx, bson.M{"status": model.ContactPending}, skip, limit)
}

// UpdateStatus moves a submission to a new status.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.set(ctx, id, bson.M{"status": status})
}

// MarkReplied flags the submission as answered and resolved.
func (r *ContactRepo) MarkReplied(ctx context.Context, id string) error {
	return r.set(ctx, id, bson.M{"replied": true, "status": model.ContactResolved})
}

// Delete removes a submission.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
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

func (r *ContactRepo) set(ctx context.Context, id string, set bson.M) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.c.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepo) find(ctx context.Context, filter bson.M, skip, limit int64) ([]model.Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).SetLimit(limit)
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Contact{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
