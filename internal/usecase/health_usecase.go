package usecase

import (
	"context"
	"strconv"
	"time"

	"job-alerts-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	alertRepo domain.AlertRepository
	matchRepo domain.MatchRepository
	version   string
	startedAt time.Time
}

func NewHealthUsecase(alertRepo domain.AlertRepository, matchRepo domain.MatchRepository, version string) HealthUsecase {
	return &healthUsecase{
		alertRepo: alertRepo,
		matchRepo: matchRepo,
		version:   version,
		startedAt: time.Now(),
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":  "ok",
		"version": u.version,
		"uptime":  time.Since(u.startedAt).Round(time.Second).String(),
	}

	if alerts, err := u.alertRepo.List(ctx); err == nil {
		status["alerts"] = strconv.Itoa(len(alerts))
	} else {
		status["status"] = "degraded"
	}
	if n, err := u.matchRepo.Count(ctx); err == nil {
		status["matches"] = strconv.Itoa(n)
	} else {
		status["status"] = "degraded"
	}

	return status
}
