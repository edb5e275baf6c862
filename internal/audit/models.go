package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names an auth or catalog lifecycle event
type EventType string

const (
	EventUserRegistered   EventType = "user.registered"
	EventUserLoggedIn     EventType = "user.logged_in"
	EventTokenRefreshed   EventType = "token.refreshed"
	EventTokenRevoked     EventType = "token.revoked"
	EventItineraryDeleted EventType = "itinerary.deleted"
)

// Event is one audit record. Tokens and passwords never go into Attributes.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Type       EventType         `json:"type"`
	UserID     string            `json:"user_id,omitempty"`
	Subject    string            `json:"subject,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewEvent stamps an event with an id and the current time
func NewEvent(eventType EventType, userID string) *Event {
	return &Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

// WithSubject sets the affected resource id
func (e *Event) WithSubject(subject string) *Event {
	e.Subject = subject
	return e
}

// WithAttribute adds a string attribute
func (e *Event) WithAttribute(key, value string) *Event {
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[key] = value
	return e
}

// PartitionKey keeps a user's events ordered on one partition
func (e *Event) PartitionKey() string {
	if e.UserID != "" {
		return e.UserID
	}
	return e.Subject
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
