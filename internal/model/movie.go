package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceRating is one entry of the per-source rating list reported by the
// metadata upstream (e.g. "Internet Movie Database" -> "8.8/10").
type SourceRating struct {
	Source string `bson:"source" json:"source"`
	Value  string `bson:"value" json:"value"`
}

// UserRating is a single user-submitted rating appended to a movie.
type UserRating struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Rating    float64   `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Review is a single user-submitted review appended to a movie.
type Review struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Review    string    `bson:"review" json:"review"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Movie is a document in the `movies` collection.  Records are either
// inserted by the seeding pipeline (Seeded/Trending/TopRated flags) or cached
// on demand when a user fetches metadata.  The natural key is IMDbID when the
// record came from an id lookup, Title otherwise; both carry indexes.
type Movie struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	IMDbID          string             `bson:"imdb_id,omitempty" json:"imdb_id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Year            string             `bson:"year" json:"year"`
	Rated           string             `bson:"rated,omitempty" json:"rated,omitempty"`
	Released        string             `bson:"released,omitempty" json:"released,omitempty"`
	Runtime         string             `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Genre           string             `bson:"genre" json:"genre"`
	Director        string             `bson:"director" json:"director"`
	Writer          string             `bson:"writer,omitempty" json:"writer,omitempty"`
	Actors          string             `bson:"actors" json:"actors"`
	Plot            string             `bson:"plot" json:"plot"`
	Language        string             `bson:"language,omitempty" json:"language,omitempty"`
	Country         string             `bson:"country,omitempty" json:"country,omitempty"`
	Awards          string             `bson:"awards,omitempty" json:"awards,omitempty"`
	Poster          string             `bson:"poster" json:"poster"`
	Ratings         []SourceRating     `bson:"ratings" json:"ratings"`
	Metascore       string             `bson:"metascore,omitempty" json:"metascore,omitempty"`
	IMDbRating      string             `bson:"imdb_rating" json:"imdb_rating"`
	IMDbVotes       string             `bson:"imdb_votes,omitempty" json:"imdb_votes,omitempty"`
	Type            string             `bson:"type,omitempty" json:"type,omitempty"`
	BoxOffice       string             `bson:"box_office,omitempty" json:"box_office,omitempty"`
	Production      string             `bson:"production,omitempty" json:"production,omitempty"`
	Website         string             `bson:"website,omitempty" json:"website,omitempty"`
	ProductionHouse string             `bson:"production_house" json:"production_house"`
	ViewCount       int64              `bson:"view_count" json:"view_count"`
	UserRatings     []UserRating       `bson:"user_ratings" json:"user_ratings"`
	Reviews         []Review           `bson:"reviews" json:"reviews"`
	Seeded          bool               `bson:"seeded,omitempty" json:"seeded,omitempty"`
	Trending        bool               `bson:"trending,omitempty" json:"trending,omitempty"`
	TopRated        bool               `bson:"top_rated,omitempty" json:"top_rated,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// MovieFilter carries the optional criteria of the filter endpoint.
type MovieFilter struct {
	ProductionHouse string  `json:"production_house"`
	Genre           string  `json:"genre"`
	YearFrom        string  `json:"year_from"`
	YearTo          string  `json:"year_to"`
	RatingMin       float64 `json:"rating_min"`
	SortBy          string  `json:"sort_by"`
	SortOrder       string  `json:"sort_order"`
}
