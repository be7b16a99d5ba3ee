package domain

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrSourceUnavailable marks failures of a MatchSource. Create still keeps the alert.
var ErrSourceUnavailable = errors.New("match source unavailable")

// JobMatch is a job posting scored against one alert. Immutable once created.
type JobMatch struct {
	ID         string `json:"id"`
	AlertID    string `json:"alert_id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	Type       string `json:"type"`
	PostedDate string `json:"posted_date"` // relative label, e.g. "2 hours ago"
	MatchScore int    `json:"match_score"` // 0-100
}

// MatchSource produces an ordered batch of matches for an alert, highest score first.
// Implementations must not mutate or retain the alert.
type MatchSource interface {
	Generate(ctx context.Context, alert Alert) ([]JobMatch, error)
}

// MatchRepository is the append-only match collection.
type MatchRepository interface {
	Append(ctx context.Context, matches []JobMatch) ([]JobMatch, error)
	List(ctx context.Context) ([]JobMatch, error)
	Count(ctx context.Context) (int, error)
}
