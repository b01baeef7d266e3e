// Package domain contains the core types of the devotional pipeline.
package domain

import "time"

// Known audience keys used by the multi-audience sheet layout.
// An empty audience means the plain single-audience column set.
const (
	AudienceOlder   = "3_15"
	AudienceYounger = "0_3"
)

// Reference is a resolved scripture citation.
// Book is the canonical book id (1-66, fixed canon order).
type Reference struct {
	Book       int
	Chapter    int
	VerseStart int
	VerseEnd   int
}

// Single reports whether the reference covers exactly one verse.
func (r Reference) Single() bool {
	return r.VerseStart == r.VerseEnd
}

// DayEntry is one day's content within a week: a free-text citation
// plus an optional editorial note.
type DayEntry struct {
	Ref  string `json:"ref"`
	Note string `json:"note"`
}

// AudienceSection is one audience's worth of weekly content.
// Days must hold exactly seven entries, Monday first.
type AudienceSection struct {
	Audience  string
	LessonURL string
	MainPoint string
	Days      []DayEntry
}

// WeekRecord is one selected row of the weekly content sheet.
// It lives for a single pipeline run and is never persisted.
type WeekRecord struct {
	StartDate time.Time
	Sections  []AudienceSection
}

// ComposedSection carries the fully substituted fields for one audience
// within one day's message.
type ComposedSection struct {
	Audience  string
	Ref       string
	VerseText string
	Note      string
	MainPoint string
	LessonURL string
}

// ComposedMessage is one ready-to-send message body. Seven are produced
// per week, Monday first.
type ComposedMessage struct {
	Date          time.Time
	DateFormatted string
	Sections      []ComposedSection
	Body          string
}
