package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovoapp/slovo-server/internal/domain"
	domainerrors "github.com/slovoapp/slovo-server/internal/errors"
)

type fakeWeeks struct {
	week *domain.WeekRecord
	err  error

	gotToday time.Time
}

func (f *fakeWeeks) ActiveWeek(_ context.Context, today time.Time) (*domain.WeekRecord, error) {
	f.gotToday = today
	return f.week, f.err
}

type fakeComposer struct {
	messages []domain.ComposedMessage
	err      error
}

func (f *fakeComposer) Compose(context.Context, *domain.WeekRecord) ([]domain.ComposedMessage, error) {
	return f.messages, f.err
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func sevenMessages() []domain.ComposedMessage {
	out := make([]domain.ComposedMessage, 7)
	for i := range out {
		out[i] = domain.ComposedMessage{Body: weekdayBody(i)}
	}
	return out
}

func weekdayBody(i int) string {
	return []string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}[i]
}

// newTestService pins "now" to a fixed instant.
func newTestService(weeks *fakeWeeks, composer *fakeComposer, sender *fakeSender, now time.Time) *DevotionalService {
	s := NewDevotionalService(weeks, composer, sender, time.UTC, slog.New(slog.DiscardHandler))
	s.now = func() time.Time { return now }
	return s
}

func TestDevotionalService_RunDaily_SendsTodaysMessage(t *testing.T) {
	weeks := &fakeWeeks{week: &domain.WeekRecord{}}
	composer := &fakeComposer{messages: sevenMessages()}
	sender := &fakeSender{}

	// Wednesday 08.01.2025 -> index 2.
	now := time.Date(2025, 1, 8, 4, 10, 0, 0, time.UTC)
	s := newTestService(weeks, composer, sender, now)

	require.NoError(t, s.RunDaily(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ср", sender.sent[0])
	assert.Equal(t, now, weeks.gotToday)
}

func TestDevotionalService_RunDaily_NoWeekNoSend(t *testing.T) {
	weeks := &fakeWeeks{err: domainerrors.ErrNotFound}
	sender := &fakeSender{}
	s := newTestService(weeks, &fakeComposer{}, sender, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))

	err := s.RunDaily(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Empty(t, sender.sent)
}

func TestDevotionalService_RunDaily_ComposeFailureNoSend(t *testing.T) {
	weeks := &fakeWeeks{week: &domain.WeekRecord{}}
	composer := &fakeComposer{err: domainerrors.ErrMalformed}
	sender := &fakeSender{}
	s := newTestService(weeks, composer, sender, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))

	err := s.RunDaily(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrMalformed)
	assert.Empty(t, sender.sent)
}

func TestDevotionalService_RunDaily_ShortSequenceOnSunday(t *testing.T) {
	weeks := &fakeWeeks{week: &domain.WeekRecord{}}
	composer := &fakeComposer{messages: sevenMessages()[:5]}
	sender := &fakeSender{}

	// Sunday 12.01.2025 -> index 6, past the 5 composed messages.
	s := newTestService(weeks, composer, sender, time.Date(2025, 1, 12, 4, 10, 0, 0, time.UTC))

	err := s.RunDaily(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrOutOfRange)
	assert.Empty(t, sender.sent)
}

func TestDevotionalService_RunDaily_DeliveryFailureReturned(t *testing.T) {
	weeks := &fakeWeeks{week: &domain.WeekRecord{}}
	composer := &fakeComposer{messages: sevenMessages()}
	sender := &fakeSender{err: domainerrors.Unavailable("telegram down")}
	s := newTestService(weeks, composer, sender, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))

	err := s.RunDaily(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrUnavailable)
	assert.Len(t, sender.sent, 1, "exactly one attempt, no retry")
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), 0},  // Monday
		{time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), 3},  // Thursday
		{time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayIndex(tt.date), tt.date.String())
	}
}

func TestSelectForToday(t *testing.T) {
	messages := sevenMessages()

	msg, err := SelectForToday(messages, 0)
	require.NoError(t, err)
	assert.Equal(t, "пн", msg.Body)

	msg, err = SelectForToday(messages, 6)
	require.NoError(t, err)
	assert.Equal(t, "вс", msg.Body)

	_, err = SelectForToday(messages[:5], 6)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfRange)

	_, err = SelectForToday(nil, 0)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfRange)
}
