package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistMovie is the denormalized movie entry embedded in a playlist.  It
// carries just enough fields to render a list without joining the movies
// collection.
type PlaylistMovie struct {
	MovieID string    `bson:"movie_id" json:"movie_id"`
	IMDbID  string    `bson:"imdb_id" json:"imdb_id"`
	Title   string    `bson:"title" json:"title"`
	Year    string    `bson:"year,omitempty" json:"year,omitempty"`
	Poster  string    `bson:"poster,omitempty" json:"poster,omitempty"`
	AddedAt time.Time `bson:"added_at" json:"added_at"`
}

// Playlist is a document in the `playlists` collection.  Movies and likes are
// embedded arrays mutated with $push/$pull/$addToSet.
type Playlist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	IsPublic    bool               `bson:"is_public" json:"is_public"`
	Movies      []PlaylistMovie    `bson:"movies" json:"movies"`
	Likes       []string           `bson:"likes" json:"likes"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
