// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactSubmittedEvent is published when a visitor submits the contact form.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type ContactSubmittedEvent struct {
	ContactID   string `json:"contact_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	SubmittedAt string `json:"submitted_at"`
}
