package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored in the user document and carried in the JWT role claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// WatchEntry records one watch-history item on a user document.
type WatchEntry struct {
	MovieID   string    `bson:"movie_id" json:"movie_id"`
	WatchedAt time.Time `bson:"watched_at" json:"watched_at"`
}

// User is a document in the `users` collection.  Username and email are
// unique.  PasswordHash is never serialized to JSON; handlers return the
// struct directly and rely on the "-" tag to keep the hash out of responses.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Bio            string             `bson:"bio" json:"bio"`
	Role           string             `bson:"role" json:"role"`
	ProfilePicture string             `bson:"profile_picture" json:"profile_picture"`
	CoverPhoto     string             `bson:"cover_photo" json:"cover_photo"`
	Favorites      []string           `bson:"favorites" json:"favorites"`
	Watchlist      []string           `bson:"watchlist" json:"watchlist"`
	WatchHistory   []WatchEntry       `bson:"watch_history" json:"watch_history"`
	Followers      []string           `bson:"followers" json:"followers"`
	Following      []string           `bson:"following" json:"following"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// RefreshToken models an entry in the `refresh_tokens` collection.  Only the
// SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"user_id" json:"-"`
	TokenHash string             `bson:"token_hash" json:"-"`
	ExpiresAt time.Time          `bson:"expires_at" json:"-"`
	RevokedAt *time.Time         `bson:"revoked_at,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"-"`
}
