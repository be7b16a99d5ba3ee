// Package domain holds the alert and match entities together with the
// repository, usecase and match source contracts the other layers implement.
//
// Alert lifecycle:
//
//	created(active) ──toggle──► paused ──toggle──► active ...
//	      │                        │
//	      └────────delete──────────┴──► removed
//
// A removed alert is gone for good; its matches stay in the match collection.
package domain

import (
	"context"
	"time"
)

// Job type values accepted by the alert form
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Frequency values. Stored only, nothing is scheduled from them.
const (
	FrequencyRealtime = "realtime"
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
)

// Alert status labels derived from Active
const (
	AlertStatusActive = "active"
	AlertStatusPaused = "paused"
)

const (
	DefaultJobType   = JobTypeFullTime
	DefaultFrequency = FrequencyDaily
)

// AlertCriteria is the user supplied search definition.
// JobTitle and Location must be non-empty; the caller is responsible for that.
type AlertCriteria struct {
	JobTitle  string `json:"job_title"`
	Location  string `json:"location"`
	Salary    string `json:"salary"`   // free text range, e.g. "$80k - $120k"
	JobType   string `json:"job_type"` // full-time | part-time | contract | internship
	Keywords  string `json:"keywords"` // comma separated, stored only
	Frequency string `json:"frequency"`
}

// WithDefaults returns a copy with empty JobType and Frequency filled in.
func (c AlertCriteria) WithDefaults() AlertCriteria {
	if c.JobType == "" {
		c.JobType = DefaultJobType
	}
	if c.Frequency == "" {
		c.Frequency = DefaultFrequency
	}
	return c
}

// Alert is a saved AlertCriteria with an active/paused state.
type Alert struct {
	ID string `json:"id"`
	AlertCriteria
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Status returns the display label for the alert state
func (a Alert) Status() string {
	if a.Active {
		return AlertStatusActive
	}
	return AlertStatusPaused
}

// AlertView is the JSON shape handed to the presentation layer.
type AlertView struct {
	Alert
	Status string `json:"status"`
}

func NewAlertView(a Alert) AlertView {
	return AlertView{Alert: a, Status: a.Status()}
}

func NewAlertViews(alerts []Alert) []AlertView {
	views := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, NewAlertView(a))
	}
	return views
}

// AlertRepository owns the ordered alert collection.
// Toggle and Delete report whether the id was found; a miss is not an error.
type AlertRepository interface {
	Create(ctx context.Context, criteria AlertCriteria) (*Alert, error)
	Toggle(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]Alert, error)
}

// Dashboard is the read-only view rendered after every mutation.
type Dashboard struct {
	Alerts      []AlertView `json:"alerts"`
	Matches     []JobMatch  `json:"matches"`
	ActiveCount int         `json:"active_count"`
	MatchCount  int         `json:"match_count"`
}

// CreateAlertResult carries the alert created and the batch generated for it.
type CreateAlertResult struct {
	Alert           Alert      `json:"-"`
	Matches         []JobMatch `json:"matches"`
	MatchesDeferred bool       `json:"matches_deferred"`
}

type AlertUsecase interface {
	CreateAlert(ctx context.Context, criteria AlertCriteria) (*CreateAlertResult, error)
	ToggleAlert(ctx context.Context, id string) error
	DeleteAlert(ctx context.Context, id string) error
	ListAlerts(ctx context.Context) ([]Alert, error)
	ListMatches(ctx context.Context) ([]JobMatch, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
