package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
)

func day(t *testing.T, year int, month time.Month, d, hour int) time.Time {
	t.Helper()
	return time.Date(year, month, d, hour, 0, 0, 0, time.Local)
}

func sess(
	start time.Time,
	duration int64,
	subjectID string,
	sessType models.SessionType,
) models.Session {
	return models.Session{
		SubjectID: subjectID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(duration) * time.Second),
		Duration:  duration,
		Type:      sessType,
	}
}

func TestTotalForPeriod(t *testing.T) {
	today := day(t, 2026, time.March, 10, 0)
	tomorrow := today.AddDate(0, 0, 1)

	sessions := []models.Session{
		sess(today.Add(9*time.Hour), 1800, "a", models.Focus),
		sess(today.Add(14*time.Hour), 600, "b", models.Manual),
		sess(today.Add(20*time.Hour), 300, models.WastedSubjectID, models.Wasted),
		// previous day, outside [start, end)
		sess(today.Add(-2*time.Hour), 900, "a", models.Focus),
		// exactly at the end bound is excluded
		sess(tomorrow, 1200, "a", models.Focus),
	}

	if got := TotalForPeriod(sessions, today, tomorrow, ""); got != 2700 {
		t.Fatalf("expected 2700, got %d", got)
	}

	if got := StudyForPeriod(sessions, today, tomorrow); got != 2400 {
		t.Fatalf("expected 2400, got %d", got)
	}

	if got := WastedForPeriod(sessions, today, tomorrow); got != 300 {
		t.Fatalf("expected 300, got %d", got)
	}
}

func TestStreak(t *testing.T) {
	today := day(t, 2026, time.March, 10, 12)

	cases := []struct {
		name        string
		offsets     []int // days before today with a non-wasted session
		activeToday bool
		want        int
	}{
		{name: "empty log", offsets: nil, want: 0},
		{name: "only today", offsets: []int{0}, want: 1},
		{name: "three consecutive days", offsets: []int{0, 1, 2}, want: 3},
		{name: "gap breaks the chain", offsets: []int{0, 1, 3, 4}, want: 2},
		{name: "no activity today", offsets: []int{1, 2, 3}, want: 0},
		{
			name:        "active session counts as today",
			offsets:     []int{1, 2},
			activeToday: true,
			want:        3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sessions []models.Session

			for _, off := range tc.offsets {
				sessions = append(sessions, sess(
					today.AddDate(0, 0, -off),
					1800,
					"a",
					models.Focus,
				))
			}

			got := Streak(sessions, today, tc.activeToday)
			if got != tc.want {
				t.Fatalf("expected streak %d, got %d", tc.want, got)
			}
		})
	}
}

func TestStreakIgnoresWastedSessions(t *testing.T) {
	today := day(t, 2026, time.March, 10, 12)

	sessions := []models.Session{
		sess(today, 600, models.WastedSubjectID, models.Wasted),
		sess(today.AddDate(0, 0, -1), 1800, "a", models.Focus),
	}

	if got := Streak(sessions, today, false); got != 0 {
		t.Fatalf("wasted-only day must not qualify, got streak %d", got)
	}
}

func TestGoalProgress(t *testing.T) {
	now := day(t, 2026, time.March, 10, 18)
	morning := day(t, 2026, time.March, 10, 9)

	sessions := []models.Session{
		sess(morning, 2000, "a", models.Focus),
	}

	daily := &models.Goal{Type: models.Daily, Target: 1500}

	// accumulated time beyond the target clamps at 100
	if got := GoalProgress(daily, sessions, now, nil, 0); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}

	zero := &models.Goal{Type: models.Daily, Target: 0}
	if got := GoalProgress(zero, sessions, now, nil, 0); got != 0 {
		t.Fatalf("non-positive target must yield 0, got %d", got)
	}

	scoped := &models.Goal{Type: models.Daily, Target: 4000, SubjectID: "b"}
	if got := GoalProgress(scoped, sessions, now, nil, 0); got != 0 {
		t.Fatalf("subject filter must exclude other subjects, got %d", got)
	}

	active := &models.Session{
		SubjectID: "a",
		StartTime: now.Add(-10 * time.Minute),
		Type:      models.Focus,
	}

	partial := &models.Goal{Type: models.Daily, Target: 4000}

	if got := GoalProgress(partial, sessions, now, active, 600); got != 65 {
		t.Fatalf("expected 65 with live accumulation, got %d", got)
	}

	wastedActive := &models.Session{
		SubjectID: models.WastedSubjectID,
		StartTime: now.Add(-10 * time.Minute),
		Type:      models.Wasted,
	}

	if got := GoalProgress(partial, sessions, now, wastedActive, 600); got != 50 {
		t.Fatalf("wasted live accumulation must not count, got %d", got)
	}
}

func TestGoalWindow(t *testing.T) {
	// Tuesday, March 10 2026
	now := day(t, 2026, time.March, 10, 15)

	start, end := GoalWindow(models.Daily, now)
	if !start.Equal(day(t, 2026, time.March, 10, 0)) ||
		!end.Equal(day(t, 2026, time.March, 11, 0)) {
		t.Fatalf("daily window wrong: [%v, %v)", start, end)
	}

	// the week starts on Sunday
	start, end = GoalWindow(models.Weekly, now)
	if !start.Equal(day(t, 2026, time.March, 8, 0)) ||
		!end.Equal(day(t, 2026, time.March, 15, 0)) {
		t.Fatalf("weekly window wrong: [%v, %v)", start, end)
	}

	start, end = GoalWindow(models.Monthly, now)
	if !start.Equal(day(t, 2026, time.March, 1, 0)) ||
		!end.Equal(day(t, 2026, time.April, 1, 0)) {
		t.Fatalf("monthly window wrong: [%v, %v)", start, end)
	}
}

func TestSubjectBreakdown(t *testing.T) {
	today := day(t, 2026, time.March, 10, 9)

	subjects := []models.Subject{
		{ID: "a", Name: "Maths"},
		{ID: "b", Name: "History"},
		{ID: "c", Name: "Physics"},
	}

	sessions := []models.Session{
		sess(today, 1800, "a", models.Focus),
		sess(today.Add(time.Hour), 900, "a", models.Focus),
		sess(today.Add(2*time.Hour), 600, "b", models.Manual),
		sess(today.Add(3*time.Hour), 300, models.WastedSubjectID, models.Wasted),
	}

	want := []SubjectSummary{
		{Name: "Maths", Total: 2700, Count: 2, Average: 1350},
		{Name: "History", Total: 600, Count: 1, Average: 600},
		{Name: "Physics"},
	}

	got := SubjectBreakdown(sessions, subjects)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestMostStudiedSubject(t *testing.T) {
	if got := MostStudiedSubject(nil); got != nil {
		t.Fatal("expected nil for empty input")
	}

	subjects := []models.Subject{
		{ID: "a", Name: "Maths", TotalTime: 2700},
		{ID: "b", Name: "History", TotalTime: 2700},
		{ID: "c", Name: "Physics", TotalTime: 600},
	}

	// ties break on first occurrence
	if got := MostStudiedSubject(subjects); got.ID != "a" {
		t.Fatalf("expected 'a', got %q", got.ID)
	}
}

func TestDailyBuckets(t *testing.T) {
	today := day(t, 2026, time.March, 10, 12)

	sessions := []models.Session{
		sess(today, 1800, "a", models.Focus),
		sess(today.AddDate(0, 0, -2), 600, "a", models.Focus),
		sess(today.AddDate(0, 0, -2), 300, models.WastedSubjectID, models.Wasted),
		// outside the 7-day window
		sess(today.AddDate(0, 0, -8), 900, "a", models.Focus),
	}

	buckets := DailyBuckets(sessions, today)

	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}

	if !buckets[0].Date.Equal(timeutil.RoundToStart(today.AddDate(0, 0, -6))) {
		t.Fatal("buckets must start six days ago")
	}

	last := buckets[6]
	if last.Study != 1800 || last.Wasted != 0 {
		t.Fatalf("today bucket wrong: %+v", last)
	}

	twoDaysAgo := buckets[4]
	if twoDaysAgo.Study != 600 || twoDaysAgo.Wasted != 300 {
		t.Fatalf("two-days-ago bucket wrong: %+v", twoDaysAgo)
	}
}

// The documented end-to-end scenario: subjects A and B, sessions across two
// days including wasted time.
func TestAggregateScenario(t *testing.T) {
	today := day(t, 2026, time.March, 10, 9)
	yesterday := today.AddDate(0, 0, -1)
	dayStart := timeutil.RoundToStart(today)
	dayEnd := dayStart.AddDate(0, 0, 1)

	sessions := []models.Session{
		sess(yesterday, 1800, "a", models.Focus),
		sess(today, 900, "a", models.Focus),
		sess(today.Add(time.Hour), 600, "b", models.Manual),
		sess(today.Add(2*time.Hour), 300, models.WastedSubjectID, models.Wasted),
	}

	var aTotal, bTotal int64

	for i := range sessions {
		s := &sessions[i]
		if !s.CountsTowardTotals() {
			continue
		}

		switch s.SubjectID {
		case "a":
			aTotal += s.Duration
		case "b":
			bTotal += s.Duration
		}
	}

	if aTotal != 2700 {
		t.Fatalf("expected A total 2700, got %d", aTotal)
	}

	if bTotal != 600 {
		t.Fatalf("expected B total 600, got %d", bTotal)
	}

	if got := StudyForPeriod(sessions, dayStart, dayEnd); got != 1500 {
		t.Fatalf("expected today's study total 1500, got %d", got)
	}

	if got := WastedForPeriod(sessions, dayStart, dayEnd); got != 300 {
		t.Fatalf("expected today's wasted total 300, got %d", got)
	}

	if got := Streak(sessions, today, false); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}
