package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sandevgo/daybook/pkg/log"
)

// Rollover runs a job on a cron schedule in local time. The journal uses it to
// move to the next day's question at midnight while the process keeps running.
type Rollover struct {
	cron *cron.Cron
	spec string
	job  func(ctx context.Context) error
}

func NewRollover(spec string, loc *time.Location, job func(ctx context.Context) error) *Rollover {
	return &Rollover{
		cron: cron.New(cron.WithLocation(loc)),
		spec: spec,
		job:  job,
	}
}

func (r *Rollover) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	_, err := r.cron.AddFunc(r.spec, func() {
		logger.Info().Msg("day rollover triggered")
		if err := r.job(ctx); err != nil {
			logger.Error().Err(err).Msg("day rollover failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid rollover schedule %q: %w", r.spec, err)
	}

	r.cron.Start()
	logger.Debug().Str("spec", r.spec).Msg("rollover scheduler started")

	<-ctx.Done()
	return nil
}

func (r *Rollover) Shutdown(ctx context.Context) error {
	stopped := r.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
	return nil
}

// Next reports when the job fires next, or the zero time before Start.
func (r *Rollover) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
