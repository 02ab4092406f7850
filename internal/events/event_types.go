package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobPosted            EventType = "job_posted"
	EventApplicationSubmitted EventType = "application_submitted"
	EventApplicationWithdrawn EventType = "application_withdrawn"
)

// Actor identifies who caused the event.
type Actor struct {
	Type domain.SubjectType `json:"type"`
	ID   string             `json:"id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	JobID   int64   `json:"job_id"`
	Title   string  `json:"title"`
	Company string  `json:"company"`
	Salary  int     `json:"salary"`
	Equity  float64 `json:"equity"`
}

// ApplicationPayload payload for submitted and withdrawn applications.
type ApplicationPayload struct {
	ApplicationID int64  `json:"application_id"`
	JobID         int64  `json:"job_id"`
	Company       string `json:"company"`
	Username      string `json:"username"`
}
