package memory

import (
	"context"
	"sync"

	"job-alerts-backend/internal/domain"

	"github.com/cockroachdb/errors"
)

type matchRepo struct {
	mu      sync.RWMutex
	matches []domain.JobMatch
	seen    map[string]struct{}
	newID   IDFunc
}

func NewMatchRepository() domain.MatchRepository {
	return &matchRepo{
		matches: make([]domain.JobMatch, 0),
		seen:    make(map[string]struct{}),
		newID:   NewRandomID,
	}
}

// Append stores the batch in order. Matches without an id, or whose id is
// already taken, get a fresh one so ids stay unique across the collection.
func (r *matchRepo) Append(ctx context.Context, matches []domain.JobMatch) ([]domain.JobMatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]domain.JobMatch, 0, len(matches))
	for _, m := range matches {
		_, taken := r.seen[m.ID]
		if m.ID == "" || taken {
			id, err := r.uniqueID()
			if err != nil {
				return nil, err
			}
			m.ID = id
		}
		r.seen[m.ID] = struct{}{}
		stored = append(stored, m)
	}
	r.matches = append(r.matches, stored...)

	return stored, nil
}

func (r *matchRepo) List(ctx context.Context) ([]domain.JobMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.JobMatch, len(r.matches))
	copy(out, r.matches)
	return out, nil
}

func (r *matchRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches), nil
}

func (r *matchRepo) uniqueID() (string, error) {
	for {
		id, err := r.newID()
		if err != nil {
			return "", errors.Wrap(err, "generate match id")
		}
		if _, taken := r.seen[id]; !taken {
			return id, nil
		}
	}
}
