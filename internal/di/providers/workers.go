package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/slovoapp/slovo-server/internal/config"
	"github.com/slovoapp/slovo-server/internal/logger"
	"github.com/slovoapp/slovo-server/internal/service"
)

// DailySendJob triggers one pipeline run per day at the configured local time.
type DailySendJob struct {
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (j *DailySendJob) Shutdown() error {
	j.cancel()
	return nil
}

// ProvideDailySendJob provides the daily send scheduler.
func ProvideDailySendJob(i do.Injector) (*DailySendJob, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	svc := do.MustInvoke[*service.DevotionalService](i)

	hour, minute, err := config.ParseSendAt(cfg.Schedule.SendAt)
	if err != nil {
		return nil, err
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// Immediate run on startup, before the first scheduled slot.
		if cfg.Schedule.SendOnStart {
			if err := svc.RunDaily(ctx); err != nil {
				log.Warn("Startup run failed", "error", err)
			}
		}

		for {
			next := nextRunAt(time.Now().In(location), hour, minute)
			timer := time.NewTimer(time.Until(next))

			log.Info("Next send scheduled", "at", next.Format(time.RFC3339))

			select {
			case <-timer.C:
				if err := svc.RunDaily(ctx); err != nil {
					log.Warn("Scheduled run failed", "error", err)
				}
			case <-ctx.Done():
				timer.Stop()
				return
			}
		}
	}()

	log.Info("Daily send job started", "send_at", cfg.Schedule.SendAt, "timezone", cfg.Schedule.Timezone)

	return &DailySendJob{cancel: cancel}, nil
}

// nextRunAt returns the next wall-clock occurrence of hour:minute strictly
// after now, in now's location. A now falling exactly on hour:minute
// schedules tomorrow's slot, not an immediate rerun.
func nextRunAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
