package usecase

import (
	"context"
	"sync"

	"job-alerts-backend/internal/domain"
	"job-alerts-backend/pkg/logger"

	"github.com/cockroachdb/errors"
)

type alertUsecase struct {
	alertRepo domain.AlertRepository
	matchRepo domain.MatchRepository
	source    domain.MatchSource

	// serialises writers so a create's alert and matches land together
	mu sync.Mutex
}

func NewAlertUsecase(alertRepo domain.AlertRepository, matchRepo domain.MatchRepository, source domain.MatchSource) domain.AlertUsecase {
	return &alertUsecase{
		alertRepo: alertRepo,
		matchRepo: matchRepo,
		source:    source,
	}
}

// CreateAlert stores the alert and appends the generated batch to the match
// collection. Required fields are not re-checked here; the HTTP layer owns
// that. A failing match source does not undo the alert: the result comes back
// with no matches and MatchesDeferred set.
func (u *alertUsecase) CreateAlert(ctx context.Context, criteria domain.AlertCriteria) (*domain.CreateAlertResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	alert, err := u.alertRepo.Create(ctx, criteria.WithDefaults())
	if err != nil {
		return nil, errors.Wrap(err, "create alert")
	}

	result := &domain.CreateAlertResult{
		Alert:   *alert,
		Matches: []domain.JobMatch{},
	}

	// the source gets a copy; the stored alert is never handed out
	generated, err := u.source.Generate(ctx, *alert)
	if err != nil {
		logger.Log.Warnw("match generation failed, alert kept without matches",
			"alert_id", alert.ID,
			"error", err,
			"source_unavailable", errors.Is(err, domain.ErrSourceUnavailable),
		)
		result.MatchesDeferred = true
		return result, nil
	}

	stored, err := u.matchRepo.Append(ctx, generated)
	if err != nil {
		return nil, errors.Wrapf(err, "append matches for alert %s", alert.ID)
	}
	result.Matches = stored

	logger.Log.Infow("alert created",
		"alert_id", alert.ID,
		"job_title", alert.JobTitle,
		"matches", len(stored),
	)
	return result, nil
}

// ToggleAlert flips the active flag. Unknown ids are ignored.
func (u *alertUsecase) ToggleAlert(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	found, err := u.alertRepo.Toggle(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "toggle alert %s", id)
	}
	if !found {
		logger.Log.Debugw("toggle on unknown alert ignored", "alert_id", id)
	}
	return nil
}

// DeleteAlert removes the alert. Unknown ids are ignored and matches are kept.
func (u *alertUsecase) DeleteAlert(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	found, err := u.alertRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "delete alert %s", id)
	}
	if !found {
		logger.Log.Debugw("delete on unknown alert ignored", "alert_id", id)
		return nil
	}
	logger.Log.Infow("alert deleted", "alert_id", id)
	return nil
}

func (u *alertUsecase) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	return u.alertRepo.List(ctx)
}

func (u *alertUsecase) ListMatches(ctx context.Context) ([]domain.JobMatch, error) {
	return u.matchRepo.List(ctx)
}

func (u *alertUsecase) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	alerts, err := u.alertRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list alerts")
	}
	matches, err := u.matchRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list matches")
	}

	active := 0
	for _, a := range alerts {
		if a.Active {
			active++
		}
	}

	return &domain.Dashboard{
		Alerts:      domain.NewAlertViews(alerts),
		Matches:     matches,
		ActiveCount: active,
		MatchCount:  len(matches),
	}, nil
}
