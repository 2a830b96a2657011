package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessageShape(t *testing.T) {
	event := RosterChanged{
		EventID:    "evt-1",
		EventType:  TypeSignup,
		Activity:   "Chess Club",
		Email:      "new@mergington.edu",
		OccurredAt: time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC),
	}

	msg, err := newMessage(event)
	require.NoError(t, err)

	require.Equal(t, "Chess Club", string(msg.Key))

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, TypeSignup, headers["event_type"])
	require.Equal(t, "evt-1", headers["event_id"])

	require.JSONEq(t, `{
		"event_id": "evt-1",
		"event_type": "roster.signup",
		"activity": "Chess Club",
		"email": "new@mergington.edu",
		"occurred_at": "2026-03-02T15:30:00Z"
	}`, string(msg.Value))
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	require.NoError(t, p.PublishSignup(context.Background(), "Chess Club", "a@mergington.edu"))
	require.NoError(t, p.PublishUnregister(context.Background(), "Chess Club", "a@mergington.edu"))
}
