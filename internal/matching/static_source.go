// Package matching holds MatchSource implementations.
//
// StaticSource is a fixed-table stand-in for a real search backend. It keeps
// the contract a ranked source must honour: a fixed size batch, ordered by
// descending score, deterministic for a given alert, placeholder values for
// blank alert fields, and no mutation of the alert.
package matching

import (
	"context"

	"job-alerts-backend/internal/domain"

	"github.com/google/uuid"
)

// MaxBatchSize is the number of rows in the static table.
const MaxBatchSize = 3

// slot is one row of the fixed table. Title, Location and Salary are
// fallbacks used only when the alert leaves them blank.
type slot struct {
	Title      string
	Company    string
	Location   string
	Salary     string
	PostedDate string
	Score      int
}

var slots = [MaxBatchSize]slot{
	{Title: "Software Engineer", Company: "TechCorp Inc", Location: "Remote", Salary: "$80k - $120k", PostedDate: "2 hours ago", Score: 95},
	{Title: "Senior Developer", Company: "Innovation Labs", Location: "San Francisco, CA", Salary: "$100k - $150k", PostedDate: "5 hours ago", Score: 88},
	{Title: "Full Stack Engineer", Company: "StartupXYZ", Location: "New York, NY", Salary: "$90k - $130k", PostedDate: "1 day ago", Score: 82},
}

type StaticSource struct {
	batchSize int
	newID     func() string
}

type Option func(*StaticSource)

// WithBatchSize limits the batch to the first n slots. Values outside
// 1..MaxBatchSize are clamped.
func WithBatchSize(n int) Option {
	return func(s *StaticSource) {
		switch {
		case n < 1:
			s.batchSize = 1
		case n > MaxBatchSize:
			s.batchSize = MaxBatchSize
		default:
			s.batchSize = n
		}
	}
}

// WithIDFunc overrides match id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *StaticSource) {
		s.newID = fn
	}
}

func NewStaticSource(opts ...Option) *StaticSource {
	s := &StaticSource{
		batchSize: MaxBatchSize,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StaticSource) BatchSize() int { return s.batchSize }

func (s *StaticSource) Generate(ctx context.Context, alert domain.Alert) ([]domain.JobMatch, error) {
	matches := make([]domain.JobMatch, 0, s.batchSize)
	for _, sl := range slots[:s.batchSize] {
		matches = append(matches, domain.JobMatch{
			ID:         s.newID(),
			AlertID:    alert.ID,
			Title:      orDefault(alert.JobTitle, sl.Title),
			Company:    sl.Company,
			Location:   orDefault(alert.Location, sl.Location),
			Salary:     orDefault(alert.Salary, sl.Salary),
			Type:       alert.JobType,
			PostedDate: sl.PostedDate,
			MatchScore: sl.Score,
		})
	}
	return matches, nil
}

// orDefault falls back only on an empty value; whitespace is kept as given.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
