// Package service runs the daily devotional pipeline: load the active
// week, compose seven messages, select today's, deliver it.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/slovoapp/slovo-server/internal/domain"
)

// WeekSource loads the week record applicable on a given day.
type WeekSource interface {
	ActiveWeek(ctx context.Context, today time.Time) (*domain.WeekRecord, error)
}

// Composer expands a week into its seven daily messages.
type Composer interface {
	Compose(ctx context.Context, week *domain.WeekRecord) ([]domain.ComposedMessage, error)
}

// MessageSender delivers one rendered message body.
type MessageSender interface {
	SendMessage(ctx context.Context, text string) error
}

// DevotionalService orchestrates one pipeline run per scheduler trigger.
type DevotionalService struct {
	weeks    WeekSource
	composer Composer
	sender   MessageSender
	location *time.Location
	logger   *slog.Logger

	now func() time.Time
}

// NewDevotionalService creates the pipeline service. The location is the
// fixed reference timezone in which "today" is evaluated.
func NewDevotionalService(weeks WeekSource, composer Composer, sender MessageSender, location *time.Location, logger *slog.Logger) *DevotionalService {
	return &DevotionalService{
		weeks:    weeks,
		composer: composer,
		sender:   sender,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// RunDaily executes one run to completion. Every failure is logged and
// returned, but none is fatal for the process: the run simply produces no
// delivery and the next scheduled trigger retries naturally.
func (s *DevotionalService) RunDaily(ctx context.Context) error {
	log := s.logger.With("run_id", uuid.NewString())

	today := s.now().In(s.location)
	log.Info("daily run started", "today", today.Format("02.01.2006"))

	week, err := s.weeks.ActiveWeek(ctx, today)
	if err != nil {
		log.Warn("no week selected, skipping send", "error", err)
		return err
	}

	messages, err := s.composer.Compose(ctx, week)
	if err != nil {
		log.Warn("week produced no messages, skipping send", "error", err)
		return err
	}

	message, err := SelectForToday(messages, WeekdayIndex(today))
	if err != nil {
		log.Warn("no message for today, skipping send", "error", err)
		return err
	}

	if err := s.sender.SendMessage(ctx, message.Body); err != nil {
		log.Error("delivery failed", "error", err)
		return err
	}

	log.Info("daily message sent", "date", message.DateFormatted)

	return nil
}
