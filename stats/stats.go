// Package stats computes and reports study statistics
package stats

import (
	"time"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
)

// TotalForPeriod sums the duration of sessions whose start time falls within
// [start, end). A non-empty excluded type is skipped.
func TotalForPeriod(
	sessions []models.Session,
	start, end time.Time,
	excluded models.SessionType,
) int64 {
	var total int64

	for i := range sessions {
		sess := &sessions[i]

		if excluded != "" && sess.Type == excluded {
			continue
		}

		if sess.StartTime.Before(start) || !sess.StartTime.Before(end) {
			continue
		}

		total += sess.Duration
	}

	return total
}

// StudyForPeriod sums all non-wasted time within [start, end).
func StudyForPeriod(sessions []models.Session, start, end time.Time) int64 {
	return TotalForPeriod(sessions, start, end, models.Wasted)
}

// WastedForPeriod sums wasted time within [start, end).
func WastedForPeriod(sessions []models.Session, start, end time.Time) int64 {
	var total int64

	for i := range sessions {
		sess := &sessions[i]

		if sess.Type != models.Wasted {
			continue
		}

		if sess.StartTime.Before(start) || !sess.StartTime.Before(end) {
			continue
		}

		total += sess.Duration
	}

	return total
}

// Streak counts the consecutive run of local calendar days with at least one
// non-wasted session, ending today. A session belongs to the day its start
// time falls on. activeToday marks live non-wasted accumulation that has not
// been logged yet. The streak is 0 whenever today itself does not qualify.
func Streak(
	sessions []models.Session,
	today time.Time,
	activeToday bool,
) int {
	days := make(map[string]bool)

	for i := range sessions {
		sess := &sessions[i]

		if sess.Type == models.Wasted {
			continue
		}

		days[timeutil.DayKey(sess.StartTime.Local())] = true
	}

	if activeToday {
		days[timeutil.DayKey(today)] = true
	}

	var streak int

	for d := today; days[timeutil.DayKey(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}

	return streak
}

// GoalWindow returns the [start, end) reporting window for a goal type
// relative to now, using the local calendar.
func GoalWindow(goalType models.GoalType, now time.Time) (time.Time, time.Time) {
	switch goalType {
	case models.Weekly:
		start := timeutil.WeekStart(now)
		return start, start.AddDate(0, 0, 7)
	case models.Monthly:
		start := timeutil.MonthStart(now)
		return start, start.AddDate(0, 1, 0)
	default:
		start := timeutil.RoundToStart(now)
		return start, start.AddDate(0, 0, 1)
	}
}

// GoalProgress derives a goal's completion percentage from the session log
// plus any live accumulation. The stored counter on the goal is never
// consulted. The result is clamped to 100, and is 0 for non-positive targets.
func GoalProgress(
	goal *models.Goal,
	sessions []models.Session,
	now time.Time,
	active *models.Session,
	activeElapsed int64,
) int {
	if goal.Target <= 0 {
		return 0
	}

	start, end := GoalWindow(goal.Type, now)

	var sum int64

	for i := range sessions {
		sess := &sessions[i]

		if sess.Type == models.Wasted {
			continue
		}

		if goal.SubjectID != "" && sess.SubjectID != goal.SubjectID {
			continue
		}

		if sess.StartTime.Before(start) || !sess.StartTime.Before(end) {
			continue
		}

		sum += sess.Duration
	}

	if active != nil && active.Type != models.Wasted {
		if goal.SubjectID == "" || active.SubjectID == goal.SubjectID {
			if !active.StartTime.Before(start) &&
				active.StartTime.Before(end) {
				sum += activeElapsed
			}
		}
	}

	progress := int(100 * sum / goal.Target)
	if progress > 100 {
		progress = 100
	}

	return progress
}

// SubjectSummary is the per-subject slice of a distribution display.
type SubjectSummary struct {
	Name    string `json:"name"`
	Total   int64  `json:"total"`
	Count   int    `json:"count"`
	Average int64  `json:"average"`
}

// SubjectBreakdown computes total time, session count, and average session
// length per subject. Wasted time is excluded. Subjects retain their input
// order.
func SubjectBreakdown(
	sessions []models.Session,
	subjects []models.Subject,
) []SubjectSummary {
	totals := make(map[string]int64)
	counts := make(map[string]int)

	for i := range sessions {
		sess := &sessions[i]

		if sess.Type == models.Wasted {
			continue
		}

		totals[sess.SubjectID] += sess.Duration
		counts[sess.SubjectID]++
	}

	result := make([]SubjectSummary, 0, len(subjects))

	for i := range subjects {
		sub := &subjects[i]

		s := SubjectSummary{
			Name:  sub.Name,
			Total: totals[sub.ID],
			Count: counts[sub.ID],
		}

		if s.Count > 0 {
			s.Average = s.Total / int64(s.Count)
		}

		result = append(result, s)
	}

	return result
}

// MostStudiedSubject returns the subject with the largest cached total. Ties
// go to the earlier subject in input order. It returns nil for an empty
// input.
func MostStudiedSubject(subjects []models.Subject) *models.Subject {
	if len(subjects) == 0 {
		return nil
	}

	best := &subjects[0]

	for i := range subjects {
		if subjects[i].TotalTime > best.TotalTime {
			best = &subjects[i]
		}
	}

	return best
}

// DayBucket is one day's study/wasted split.
type DayBucket struct {
	Date   time.Time `json:"date"`
	Study  int64     `json:"study"`
	Wasted int64     `json:"wasted"`
}

// DailyBuckets splits the last seven local calendar days (ending today) into
// study and wasted totals, oldest day first.
func DailyBuckets(sessions []models.Session, today time.Time) []DayBucket {
	buckets := make([]DayBucket, 0, 7)
	index := make(map[string]int)

	for offset := 6; offset >= 0; offset-- {
		day := timeutil.RoundToStart(today.AddDate(0, 0, -offset))
		index[timeutil.DayKey(day)] = len(buckets)
		buckets = append(buckets, DayBucket{Date: day})
	}

	for i := range sessions {
		sess := &sessions[i]

		pos, ok := index[timeutil.DayKey(sess.StartTime.Local())]
		if !ok {
			continue
		}

		if sess.Type == models.Wasted {
			buckets[pos].Wasted += sess.Duration
		} else {
			buckets[pos].Study += sess.Duration
		}
	}

	return buckets
}

// TypeCounts tallies sessions by type.
func TypeCounts(sessions []models.Session) map[models.SessionType]int {
	counts := make(map[models.SessionType]int)

	for i := range sessions {
		counts[sessions[i].Type]++
	}

	return counts
}
