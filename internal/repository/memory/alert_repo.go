package memory

import (
	"context"
	"sync"
	"time"

	"job-alerts-backend/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// IDFunc produces a fresh identifier
type IDFunc func() (string, error)

// NewTimeOrderedID returns a UUIDv7, so ids sort by creation time.
func NewTimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// NewRandomID returns a UUIDv4
func NewRandomID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type alertRepo struct {
	mu     sync.RWMutex
	alerts []domain.Alert
	newID  IDFunc
	now    func() time.Time
}

func NewAlertRepository() domain.AlertRepository {
	return NewAlertRepositoryWithID(NewTimeOrderedID)
}

// NewAlertRepositoryWithID lets tests control id assignment.
func NewAlertRepositoryWithID(newID IDFunc) domain.AlertRepository {
	return &alertRepo{
		alerts: make([]domain.Alert, 0),
		newID:  newID,
		now:    time.Now,
	}
}

func (r *alertRepo) Create(ctx context.Context, criteria domain.AlertCriteria) (*domain.Alert, error) {
	id, err := r.newID()
	if err != nil {
		return nil, errors.Wrap(err, "generate alert id")
	}

	alert := domain.Alert{
		ID:            id,
		AlertCriteria: criteria,
		Active:        true,
		CreatedAt:     r.now(),
	}

	r.mu.Lock()
	r.alerts = append(r.alerts, alert)
	r.mu.Unlock()

	return &alert, nil
}

func (r *alertRepo) Toggle(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.alerts[i].Active = !r.alerts[i].Active
	return true, nil
}

func (r *alertRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
	return true, nil
}

// List returns a copy in insertion order
func (r *alertRepo) List(ctx context.Context) ([]domain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out, nil
}

// indexOf must be called with mu held.
// With fabricated duplicate ids the first match wins.
func (r *alertRepo) indexOf(id string) int {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			return i
		}
	}
	return -1
}
