package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is one message embedded in a chat document.
type ChatMessage struct {
	SenderID   string    `bson:"sender_id" json:"sender_id"`
	SenderRole string    `bson:"sender_role" json:"sender_role"`
	Message    string    `bson:"message" json:"message"`
	IsRead     bool      `bson:"is_read" json:"is_read"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// Chat is a document in the `chats` collection.  Each user has at most one
// chat with the admin team; messages accumulate as an embedded array and
// UnreadCount tracks user messages the admins have not read yet.
type Chat struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Messages    []ChatMessage      `bson:"messages" json:"messages"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	UnreadCount int64              `bson:"unread_count" json:"unread_count"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
