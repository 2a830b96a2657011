// Package roster stores the in-memory activity directory.
package roster

import (
	"context"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// MemoryDirectory holds every activity record in memory. It is constructed
// once at startup with the school's seed catalog and mutated in place; nothing
// survives a restart. All methods are safe for concurrent use.
type MemoryDirectory struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemoryDirectory constructs a directory populated with the seed catalog.
func NewMemoryDirectory() *MemoryDirectory {
	d := &MemoryDirectory{activities: make(map[string]*domain.Activity)}
	d.seed()
	return d
}

func (d *MemoryDirectory) seed() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, act := range seedCatalog() {
		copied := act
		d.activities[act.Name] = &copied
	}
}

// List implements domain.DirectoryRepository. Records are deep-copied so
// callers can never reach the live participant slices.
func (d *MemoryDirectory) List(ctx context.Context) (map[string]domain.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]domain.Activity, len(d.activities))
	for name, act := range d.activities {
		out[name] = snapshot(act)
	}
	return out, nil
}

// AddParticipant appends the email to the activity roster, preserving signup
// order and rejecting duplicates.
func (d *MemoryDirectory) AddParticipant(ctx context.Context, activity, email string) (*domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	act, ok := d.activities[activity]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	for _, existing := range act.Participants {
		if existing == email {
			return nil, domain.ErrAlreadySignedUp
		}
	}

	act.Participants = append(act.Participants, email)
	updated := snapshot(act)
	return &updated, nil
}

// RemoveParticipant deletes the email from the activity roster, keeping the
// order of the remaining entries intact.
func (d *MemoryDirectory) RemoveParticipant(ctx context.Context, activity, email string) (*domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	act, ok := d.activities[activity]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	for i, existing := range act.Participants {
		if existing == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			updated := snapshot(act)
			return &updated, nil
		}
	}
	return nil, domain.ErrNotSignedUp
}

func snapshot(act *domain.Activity) domain.Activity {
	copied := *act
	copied.Participants = append([]string(nil), act.Participants...)
	return copied
}
