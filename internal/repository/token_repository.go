package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ultroidx/movie-platform/internal/model"
)

// TokenRepo provides access to the `refresh_tokens` collection.  Only the
// SHA-256 hash of a refresh token is ever stored.
type TokenRepo struct{ c *mongo.Collection }

func NewTokenRepo(db *mongo.Database) *TokenRepo {
	return &TokenRepo{c: db.Collection("refresh_tokens")}
}

// StoreRefresh records a refresh token hash for a user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	doc := model.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.c.InsertOne(ctx, doc)
	return wrapInsert(err)
}

// ValidateRefresh returns the owning user id when the hash matches an
// unexpired, unrevoked token.  ErrNotFound covers every invalid case.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	var tok model.RefreshToken
	err := r.c.FindOne(ctx, bson.M{
		"token_hash": tokenHash,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
		"revoked_at": nil,
	}).Decode(&tok)
	if err != nil {
		return "", wrapFind(err)
	}
	return tok.UserID, nil
}

// RevokeByHash marks a refresh token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	now := time.Now().UTC()
	_, err := r.c.UpdateOne(ctx,
		bson.M{"token_hash": tokenHash, "revoked_at": nil},
		bson.M{"$set": bson.M{"revoked_at": now}})
	return err
}

// RevokeAllForUser revokes every active token of a user, used on password
// sensitive operations.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	_, err := r.c.UpdateMany(ctx,
		bson.M{"user_id": userID, "revoked_at": nil},
		bson.M{"$set": bson.M{"revoked_at": now}})
	return err
}
