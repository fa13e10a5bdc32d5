package domain

import (
	"fmt"
	"time"

	"github.com/gatewise/visitflow/pkg/sentinel"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch RequestStatus(s) {
	case RequestPending, RequestApproved, RequestDenied:
		return RequestStatus(s), true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further transition is defined from s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestDenied
}

// Verb is the status as a past-tense verb for notification copy
// ("approved", "denied").
func (s RequestStatus) Verb() string {
	return string(s)
}

// VisitRequest is a visitor's request to visit an owner's property.
// Visitor and Owner are read-time joins resolved against the user directory;
// they are never persisted and never authoritative.
type VisitRequest struct {
	ID        string        `json:"id"`
	VisitorID string        `json:"visitorId"`
	OwnerID   string        `json:"ownerId"`
	Purpose   string        `json:"purpose"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Visitor   *User         `json:"visitor,omitempty"`
	Owner     *User         `json:"owner,omitempty"`
}

// Transition validates the move from the request's current status to next.
// Only pending→approved and pending→denied are defined; approved and denied
// are terminal.
func (r *VisitRequest) Transition(next RequestStatus) error {
	if _, ok := ParseRequestStatus(string(next)); !ok {
		return fmt.Errorf("unknown status %q: %w", next, sentinel.ErrInvalidInput)
	}
	if next == RequestPending {
		return fmt.Errorf("cannot transition back to %q: %w", RequestPending, sentinel.ErrInvalidInput)
	}
	if r.Status.IsTerminal() {
		return fmt.Errorf("request %s is already %s: %w", r.ID, r.Status, sentinel.ErrInvalidState)
	}
	r.Status = next
	return nil
}
