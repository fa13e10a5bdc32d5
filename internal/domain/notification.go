package domain

import "time"

// Notification is an in-app message addressed to a single user. RelatedTo
// carries the originating visit request's ID for traceability only; nothing
// enforces that the request still exists.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	RelatedTo string    `json:"relatedTo,omitempty"`
}
