package sheets

import (
	"context"
	"encoding/json/v2"
	"strings"
	"time"

	"github.com/slovoapp/slovo-server/internal/domain"
	"github.com/slovoapp/slovo-server/internal/errors"
)

// dateLayout is the sheet's start_date format (DD.MM.YYYY).
const dateLayout = "02.01.2006"

// daysPerWeek is the required length of every days_json array.
const daysPerWeek = 7

// audienceColumns lists the known multi-audience column suffixes in
// render order. A sheet either uses the plain columns (days_json,
// lesson_url, main_point) or these suffixed variants.
var audienceColumns = []string{domain.AudienceOlder, domain.AudienceYounger}

// ActiveWeek fetches the sheet and returns the week applicable today.
//
// Selection is two-tier, first match wins:
//  1. a row whose [start_date, start_date+6] window contains today;
//  2. the first row whose status equals "active" (case-insensitive).
//
// Returns errors.ErrNotFound when neither tier yields a row.
func (c *Client) ActiveWeek(ctx context.Context, today time.Time) (*domain.WeekRecord, error) {
	rows, err := c.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	row, err := c.selectActiveRow(rows, today)
	if err != nil {
		return nil, err
	}

	return parseWeek(row)
}

// selectActiveRow applies the two-tier selection rule.
func (c *Client) selectActiveRow(rows []Row, today time.Time) (Row, error) {
	day := dateOnly(today)

	// Tier 1: date window. Rows with unparseable dates are skipped here
	// but stay eligible for tier 2. Status is ignored once a window
	// matches.
	for _, row := range rows {
		startStr := row.Get("start_date")
		if startStr == "" {
			continue
		}
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			c.logger.Warn("skipping row with bad start_date", "start_date", startStr)
			continue
		}
		end := start.AddDate(0, 0, daysPerWeek-1)
		if !day.Before(start) && !day.After(end) {
			c.logger.Info("week matched by date window", "start_date", startStr)
			return row, nil
		}
	}

	// Tier 2: explicit active flag.
	for _, row := range rows {
		if strings.EqualFold(row.Get("status"), "active") {
			c.logger.Info("week matched by active status")
			return row, nil
		}
	}

	return nil, errors.NotFound("no active week in sheet")
}

// parseWeek converts a selected row into a WeekRecord.
// Every present audience section must carry exactly seven days;
// anything else rejects the whole record.
func parseWeek(row Row) (*domain.WeekRecord, error) {
	startStr := row.Get("start_date")
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, errors.Malformedf("week start_date %q: want DD.MM.YYYY", startStr)
	}

	var sections []domain.AudienceSection

	if daysJSON := row.Get("days_json"); daysJSON != "" {
		days, err := parseDays(daysJSON)
		if err != nil {
			return nil, err
		}
		sections = append(sections, domain.AudienceSection{
			LessonURL: row.Get("lesson_url"),
			MainPoint: row.Get("main_point"),
			Days:      days,
		})
	} else {
		for _, audience := range audienceColumns {
			daysJSON := row.Get("days_json_" + audience)
			if daysJSON == "" {
				continue
			}
			days, err := parseDays(daysJSON)
			if err != nil {
				return nil, err
			}
			sections = append(sections, domain.AudienceSection{
				Audience:  audience,
				LessonURL: row.Get("lesson_url_" + audience),
				MainPoint: row.Get("main_point_" + audience),
				Days:      days,
			})
		}
	}

	if len(sections) == 0 {
		return nil, errors.Malformed("week row has no days_json columns")
	}

	return &domain.WeekRecord{
		StartDate: dateOnly(start),
		Sections:  sections,
	}, nil
}

// parseDays parses a days_json column: a JSON array of exactly seven
// {ref, note} objects.
func parseDays(daysJSON string) ([]domain.DayEntry, error) {
	var days []domain.DayEntry
	if err := json.Unmarshal([]byte(daysJSON), &days); err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformed, "parse days_json")
	}
	if len(days) != daysPerWeek {
		return nil, errors.Malformedf("days_json: want %d entries, got %d", daysPerWeek, len(days))
	}
	return days, nil
}

// dateOnly truncates a time to its calendar date in UTC, so window
// comparisons are pure date arithmetic regardless of source location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
