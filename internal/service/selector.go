package service

import (
	"time"

	"github.com/slovoapp/slovo-server/internal/domain"
	"github.com/slovoapp/slovo-server/internal/errors"
)

// WeekdayIndex returns the Monday-first weekday index (0=Monday,
// 6=Sunday) of a time in its own location.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SelectForToday picks the message for the given Monday-first weekday
// index. Returns errors.ErrOutOfRange when the index falls past the end
// of the composed sequence, in which case nothing is delivered.
func SelectForToday(messages []domain.ComposedMessage, weekday int) (domain.ComposedMessage, error) {
	if weekday < 0 || weekday >= len(messages) {
		return domain.ComposedMessage{}, errors.OutOfRange("no composed message for today")
	}
	return messages[weekday], nil
}
