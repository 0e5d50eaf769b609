package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact submission states.
const (
	ContactPending  = "pending"
	ContactResolved = "resolved"
)

// Contact is a document in the `contacts` collection, one per submitted
// contact form.  Admins move it through status transitions during triage.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	Replied   bool               `bson:"replied" json:"replied"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
