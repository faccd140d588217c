package services

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/justsurfingit/longevity-jobs/internal/listing"
	"github.com/justsurfingit/longevity-jobs/internal/models"
)

// ErrLoadJobs is what callers see when the backend read fails. Callers log
// the wrapped cause; it is never shown to users.
var ErrLoadJobs = errors.New("failed to load jobs")

// JobSource is the backend read: active jobs, newest created first.
type JobSource interface {
	ActiveJobs(ctx context.Context) ([]models.Job, error)
}

type JobService struct {
	Source JobSource
	Log    *zap.SugaredLogger
}

func NewJobService(src JobSource, log *zap.SugaredLogger) *JobService {
	return &JobService{
		Source: src,
		Log:    log,
	}
}

// ActiveJobs fetches the current listing once. No retry.
func (s *JobService) ActiveJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.Source.ActiveJobs(ctx)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "fetching active jobs"), ErrLoadJobs)
	}

	// Sources filter on active already; inactive rows must never be shown
	// even if one slips through.
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Active {
			out = append(out, j)
		}
	}
	if dropped := len(jobs) - len(out); dropped > 0 {
		s.Log.Warnw("Source returned inactive jobs", "dropped", dropped)
	}
	return out, nil
}

// Listing fetches the jobs and evaluates state over them.
func (s *JobService) Listing(ctx context.Context, state listing.State) (listing.View, error) {
	jobs, err := s.ActiveJobs(ctx)
	if err != nil {
		return listing.View{}, err
	}
	return listing.Evaluate(jobs, state), nil
}
