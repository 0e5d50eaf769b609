package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsArticle is a document in the `news` collection.  Articles are either
// authored by an admin (AuthorID set, AutoFetched false) or seeded from the
// upstream feed (AutoFetched true).  Title is the dedup key for auto-fetched
// articles: no two of them share a title.
type NewsArticle struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	AuthorID    string             `bson:"author_id,omitempty" json:"author_id,omitempty"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	SourceURL   string             `bson:"source_url,omitempty" json:"source_url,omitempty"`
	Views       int64              `bson:"views" json:"views"`
	AutoFetched bool               `bson:"auto_fetched" json:"auto_fetched"`
	PublishedAt time.Time          `bson:"published_at" json:"published_at"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
