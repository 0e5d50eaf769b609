package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ultroidx/movie-platform/internal/model"
)

// ChatRepo provides access to the `chats` collection.
type ChatRepo struct{ c *mongo.Collection }

func NewChatRepo(db *mongo.Database) *ChatRepo { return &ChatRepo{c: db.Collection("chats")} }

// Create opens a new chat for a user.
func (r *ChatRepo) Create(ctx context.Context, userID string) (*model.Chat, error) {
	now := time.Now().UTC()
	chat := &model.Chat{
		UserID:    userID,
		Messages:  []model.ChatMessage{},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.c.InsertOne(ctx, chat)
	if err != nil {
		return nil, wrapInsert(err)
	}
	chat.ID = res.InsertedID.(primitive.ObjectID)
	return chat, nil
}

// FindByID fetches a chat by hex id.
func (r *ChatRepo) FindByID(ctx context.Context, id string) (*model.Chat, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var chat model.Chat
	if err := r.c.FindOne(ctx, bson.M{"_id": objID}).Decode(&chat); err != nil {
		return nil, wrapFind(err)
	}
	return &chat, nil
}

// FindOrCreateByUser returns the user's chat, opening one on first use.
func (r *ChatRepo) FindOrCreateByUser(ctx context.Context, userID string) (*model.Chat, error) {
	var chat model.Chat
	err := r.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&chat)
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return r.Create(ctx, userID)
}

// List returns chats most recently active first, for the admin surface.
func (r *ChatRepo) List(ctx context.Context, skip, limit int64) ([]model.Chat, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(skip).SetLimit(limit)
	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Chat{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMessage appends a message.  Messages sent by regular users also bump
// the unread counter the admin dashboard polls.
func (r *ChatRepo) AddMessage(ctx context.Context, id, senderID, senderRole, text string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	msg := model.ChatMessage{
		SenderID:   senderID,
		SenderRole: senderRole,
		Message:    text,
		Timestamp:  time.Now().UTC(),
	}
	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if senderRole == model.RoleUser {
		update["$inc"] = bson.M{"unread_count": 1}
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

// MarkRead flags every message read and resets the unread counter.
func (r *ChatRepo) MarkRead(ctx context.Context, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.c.UpdateByID(ctx, objID, bson.M{"$set": bson.M{
		"messages.$[].is_read": true,
		"unread_count":         0,
		"updated_at":           time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close deactivates a chat without deleting its history.
func (r *ChatRepo) Close(ctx context.Context, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.c.UpdateByID(ctx, objID, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a chat.
func (r *ChatRepo) Delete(ctx context.Context, id string) error {
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

// CountUnread counts chats with pending user messages.
func (r *ChatRepo) CountUnread(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{"unread_count": bson.M{"$gt": 0}})
}
