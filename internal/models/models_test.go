package models

import (
	"slices"
	"testing"
	"time"
)

func TestSubjectGoalProgress(t *testing.T) {
	cases := []struct {
		name string
		sub  Subject
		want int
	}{
		{name: "no goal", sub: Subject{TotalTime: 3600}, want: -1},
		{name: "zero total", sub: Subject{GoalTime: 3600}, want: 0},
		{name: "halfway", sub: Subject{TotalTime: 1800, GoalTime: 3600}, want: 50},
		{name: "clamped", sub: Subject{TotalTime: 9000, GoalTime: 3600}, want: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sub.GoalProgress(); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSessionElapsedExcludesPausedGaps(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	sess := Session{
		StartTime: start,
		Timeline: []Timeline{
			{StartTime: start, EndTime: start.Add(10 * time.Minute)},
			// a 30 minute pause falls between the segments
			{StartTime: start.Add(40 * time.Minute)},
		},
	}

	now := start.Add(45 * time.Minute)

	if got := sess.Elapsed(now); got != 900 {
		t.Errorf("expected 900s, got %d", got)
	}
}

func TestSessionTypeValid(t *testing.T) {
	for _, st := range SessionTypes {
		if !st.Valid() {
			t.Errorf("%q must be valid", st)
		}
	}

	if SessionType("nap").Valid() {
		t.Error("unknown types must be invalid")
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" exam , revision,,  ")

	if !slices.Equal(got, []string{"exam", "revision"}) {
		t.Errorf("unexpected tags: %v", got)
	}

	if SplitTags("") != nil {
		t.Error("expected nil for empty input")
	}
}
