// Package compose expands one week record into seven dated, fully
// substituted message bodies.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slovoapp/slovo-server/internal/bible"
	"github.com/slovoapp/slovo-server/internal/domain"
	"github.com/slovoapp/slovo-server/internal/errors"
)

const daysPerWeek = 7

// VerseReader looks up verse text by canonical reference.
type VerseReader interface {
	VerseRange(ctx context.Context, book, chapter, verseStart, verseEnd int) (string, error)
}

// Composer renders week records into Telegram HTML message bodies.
type Composer struct {
	resolver *bible.Resolver
	verses   VerseReader
	logger   *slog.Logger
}

// NewComposer creates a composer.
func NewComposer(resolver *bible.Resolver, verses VerseReader, logger *slog.Logger) *Composer {
	return &Composer{
		resolver: resolver,
		verses:   verses,
		logger:   logger,
	}
}

// Compose expands a week into exactly seven messages, Monday first.
//
// Each day is composed independently: a verse that cannot be resolved
// yields a placeholder in that day's body and never aborts the rest of
// the week. A week whose sections do not all carry exactly seven days
// produces no messages at all.
func (c *Composer) Compose(ctx context.Context, week *domain.WeekRecord) ([]domain.ComposedMessage, error) {
	if len(week.Sections) == 0 {
		return nil, errors.Malformed("week has no sections")
	}
	for _, section := range week.Sections {
		if len(section.Days) != daysPerWeek {
			return nil, errors.Malformedf("section %q: want %d days, got %d",
				section.Audience, daysPerWeek, len(section.Days))
		}
	}

	messages := make([]domain.ComposedMessage, 0, daysPerWeek)
	for day := range daysPerWeek {
		date := week.StartDate.AddDate(0, 0, day)
		dateFormatted := formatDate(date, day)

		sections := make([]domain.ComposedSection, 0, len(week.Sections))
		for _, section := range week.Sections {
			entry := section.Days[day]
			ref := strings.TrimSpace(entry.Ref)
			sections = append(sections, domain.ComposedSection{
				Audience:  section.Audience,
				Ref:       ref,
				VerseText: c.verseText(ctx, ref),
				Note:      strings.TrimSpace(entry.Note),
				MainPoint: section.MainPoint,
				LessonURL: section.LessonURL,
			})
		}

		messages = append(messages, domain.ComposedMessage{
			Date:          date,
			DateFormatted: dateFormatted,
			Sections:      sections,
			Body:          renderBody(dateFormatted, sections),
		})
	}

	return messages, nil
}

// verseText resolves a citation to verse text, substituting a placeholder
// on any failure. Resolution failures are localized to the single field.
func (c *Composer) verseText(ctx context.Context, ref string) string {
	parsed, err := c.resolver.Parse(ref)
	if err != nil {
		c.logger.Warn("citation not resolved", "ref", ref, "error", err)
		return fmt.Sprintf("[Не удалось найти текст для %s]", ref)
	}

	text, err := c.verses.VerseRange(ctx, parsed.Book, parsed.Chapter, parsed.VerseStart, parsed.VerseEnd)
	switch {
	case errors.Is(err, errors.ErrEmpty):
		c.logger.Warn("verse absent from store", "ref", ref)
		if parsed.Single() {
			return fmt.Sprintf("[Стих не найден: %s]", ref)
		}
		return fmt.Sprintf("[Стихи не найдены: %s]", ref)
	case err != nil:
		c.logger.Error("verse store read failed", "ref", ref, "error", err)
		return fmt.Sprintf("[Ошибка получения текста для %s]", ref)
	}

	return text
}

// renderBody renders the fixed-layout HTML template. The blank-line
// structure is contractual: downstream rendering depends on it.
func renderBody(dateFormatted string, sections []domain.ComposedSection) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<i>%s</i>", dateFormatted)

	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("\n\n")

		readLabel := ""
		if info, ok := audienceInfos[section.Audience]; ok {
			sb.WriteString(info.header)
			sb.WriteString("\n\n")
			readLabel = ", " + info.readLabel
		}

		fmt.Fprintf(&sb, "%s\n\n", section.Ref)
		fmt.Fprintf(&sb, "❤️ %s\n", section.VerseText)
		fmt.Fprintf(&sb, "(%s)\n\n", section.Note)
		sb.WriteString("<b>Основная мысль урока</b> (можно подчеркнуть при рассуждении над текстом Библии):\n\n")
		fmt.Fprintf(&sb, "✅ %s\n\n", section.MainPoint)
		fmt.Fprintf(&sb, "<b>Прочитать текст урока%s:</b>\n", readLabel)
		sb.WriteString(section.LessonURL)
	}

	return sb.String()
}
