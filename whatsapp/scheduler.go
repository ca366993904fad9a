package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

var specParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// A CronScheduler blocks until a wall clock minute is reached.
type CronScheduler struct {
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewCronScheduler creates a CronScheduler that builds its daily schedules
// in loc.
func NewCronScheduler(logger *slog.Logger, loc *time.Location) *CronScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &CronScheduler{logger: logger, location: loc, now: time.Now}
}

// WaitUntil returns once the minute containing at has started, or when ctx is
// done. It returns immediately if that minute has already started.
//
// The minute is matched as a daily hour:minute schedule, so at should be less
// than a day away.
func (s *CronScheduler) WaitUntil(ctx context.Context, at time.Time) error {
	local := at.In(s.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), 0, 0, s.location)

	spec := fmt.Sprintf("%d %d * * *", local.Minute(), local.Hour())
	schedule, err := specParser.Parse(spec)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	now := s.now().In(s.location)
	if !now.Before(start) {
		s.logger.Debug("schedule already reached", "spec", spec, "location", s.location.String())
		return nil
	}

	// Without a CRON_TZ prefix the schedule is evaluated in the zone of now.
	next := schedule.Next(now)
	s.logger.Debug("waiting for schedule", "spec", spec, "location", s.location.String(), "wait", next.Sub(now))

	t := time.NewTimer(next.Sub(now))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
