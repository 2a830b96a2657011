// Package events defines roster-change payloads and their Kafka publisher.
package events

import "time"

// Event types carried in the event_type message header.
const (
	TypeSignup     = "roster.signup"
	TypeUnregister = "roster.unregistered"
)

// RosterChanged is emitted whenever a student joins or leaves an activity.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
