// Package models defines the entities stored and exchanged by scholar
package models

import (
	"strings"
	"time"
)

// WastedSubjectID is the sentinel subject for wasted-time sessions. It always
// resolves and never participates in subject totals.
const WastedSubjectID = "wasted-time"

// SessionType represents how a session was recorded.
type SessionType string

const (
	Focus  SessionType = "focus"
	Break  SessionType = "break"
	Manual SessionType = "manual"
	Wasted SessionType = "wasted"
)

// SessionTypes lists every valid session type.
var SessionTypes = []SessionType{Focus, Break, Manual, Wasted}

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	switch t {
	case Focus, Break, Manual, Wasted:
		return true
	}

	return false
}

// GoalType represents the period a goal covers.
type GoalType string

const (
	Daily   GoalType = "daily"
	Weekly  GoalType = "weekly"
	Monthly GoalType = "monthly"
)

func (t GoalType) Valid() bool {
	switch t {
	case Daily, Weekly, Monthly:
		return true
	}

	return false
}

// Topic is a unit of study owned by exactly one subject. TotalTime caches the
// sum of non-wasted session durations referencing the topic, in seconds.
// Progress is a user-maintained mastery value between 0 and 100.
type Topic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TotalTime int64  `json:"total_time"`
	Progress  int    `json:"progress"`
}

// Subject groups topics and carries a cached running total of all non-wasted
// session durations referencing it, in seconds. The cache is maintained in
// the same store transaction that appends a session, and can be rebuilt from
// the session log at any time.
type Subject struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Topics    []Topic `json:"topics"`
	TotalTime int64   `json:"total_time"`
	GoalTime  int64   `json:"goal_time,omitempty"`
}

// Topic returns the owned topic with the given id, or nil.
func (s *Subject) Topic(id string) *Topic {
	for i := range s.Topics {
		if s.Topics[i].ID == id {
			return &s.Topics[i]
		}
	}

	return nil
}

// GoalProgress returns the percentage of the subject goal reached, clamped
// to 100. It reports -1 when no goal time is set.
func (s *Subject) GoalProgress() int {
	if s.GoalTime <= 0 {
		return -1
	}

	pct := int(s.TotalTime * 100 / s.GoalTime)
	if pct > 100 {
		pct = 100
	}

	return pct
}

// Timeline records one contiguous stretch of running time. Paused gaps fall
// between entries so they are excluded from a session's duration by
// construction.
type Timeline struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Session is one timed or manually entered block of activity. Once appended
// to the session log it is immutable: EndTime and Duration are set exactly
// once, at stop time.
type Session struct {
	ID        string      `json:"id"`
	SubjectID string      `json:"subject_id"`
	TopicID   string      `json:"topic_id,omitempty"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time,omitzero"`
	Duration  int64       `json:"duration"` // whole seconds
	Notes     string      `json:"notes,omitempty"`
	Tags      []string    `json:"tags"`
	Type      SessionType `json:"session_type"`
	Timeline  []Timeline  `json:"timeline,omitempty"`
}

// CountsTowardTotals reports whether the session folds into subject and
// topic cached totals.
func (s *Session) CountsTowardTotals() bool {
	return s.Type != Wasted
}

// Elapsed returns the whole seconds accumulated across the session timeline.
// The open segment, if any, is measured against now.
func (s *Session) Elapsed(now time.Time) int64 {
	var total time.Duration

	for _, seg := range s.Timeline {
		end := seg.EndTime
		if end.IsZero() {
			end = now
		}

		total += end.Sub(seg.StartTime)
	}

	return int64(total.Seconds())
}

// Goal is a periodic study target in seconds, optionally scoped to a single
// subject. Current is a cached counter only; progress is always derived from
// the session log.
type Goal struct {
	ID        string   `json:"id"`
	Type      GoalType `json:"goal_type"`
	Target    int64    `json:"target"`
	Current   int64    `json:"current_progress"`
	SubjectID string   `json:"subject_id,omitempty"`
}

// Snapshot is the interchange document produced by export and consumed by
// import.
type Snapshot struct {
	Subjects   []Subject `json:"subjects"`
	Sessions   []Session `json:"sessions"`
	Goals      []Goal    `json:"goals"`
	ExportDate time.Time `json:"exportDate"`
}

// SplitTags parses a comma-delimited tag list, dropping empty entries.
func SplitTags(s string) []string {
	var tags []string

	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}
