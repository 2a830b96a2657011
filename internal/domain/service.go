// Package domain defines the business logic for the activities directory service.
package domain

import (
	"context"
	"errors"
	"log"

	"example.com/extracurricular/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student already holds a spot in the activity.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp indicates the student has no spot in the activity to give up.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)

// DirectoryRepository captures roster storage operations.
type DirectoryRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, activity, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, activity, email string) (*Activity, error)
}

// RosterPublisher broadcasts roster changes to downstream consumers.
type RosterPublisher interface {
	PublishSignup(ctx context.Context, activity, email string) error
	PublishUnregister(ctx context.Context, activity, email string) error
}

// Service orchestrates directory workflows.
type Service struct {
	repo      DirectoryRepository
	publisher RosterPublisher
}

// NewService constructs a Service.
func NewService(repo DirectoryRepository, publisher RosterPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// ListActivities returns a snapshot of every activity and its roster.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup registers the email for the activity. Publish failures are logged,
// not surfaced: the roster mutation already committed.
func (s *Service) Signup(ctx context.Context, activity, email string) (*Activity, error) {
	updated, err := s.repo.AddParticipant(ctx, activity, email)
	if err != nil {
		return nil, err
	}

	observability.RecordSignup(activity, len(updated.Participants))

	if err := s.publisher.PublishSignup(ctx, activity, email); err != nil {
		log.Printf("roster signup event publish failed (activity=%s): %v", activity, err)
	}
	return updated, nil
}

// Unregister removes the email from the activity roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) (*Activity, error) {
	updated, err := s.repo.RemoveParticipant(ctx, activity, email)
	if err != nil {
		return nil, err
	}

	observability.RecordUnregister(activity, len(updated.Participants))

	if err := s.publisher.PublishUnregister(ctx, activity, email); err != nil {
		log.Printf("roster unregister event publish failed (activity=%s): %v", activity, err)
	}
	return updated, nil
}
