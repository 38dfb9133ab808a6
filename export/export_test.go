package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/store"
)

func newTestClient(t *testing.T) *store.Client {
	t.Helper()

	client, err := store.NewClient(filepath.Join(t.TempDir(), "scholar.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func seedDatabase(t *testing.T, db *store.Client) {
	t.Helper()

	sub := &models.Subject{
		ID:   "sub-1",
		Name: "Mathematics",
		Topics: []models.Topic{
			{ID: "top-1", Name: "Calculus", Progress: 40},
		},
		GoalTime: 36000,
	}

	if err := db.SaveSubject(sub); err != nil {
		t.Fatal(err)
	}

	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	sess := &models.Session{
		ID:        "s1",
		SubjectID: "sub-1",
		TopicID:   "top-1",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Duration:  1800,
		Tags:      []string{"exam"},
		Type:      models.Focus,
		Timeline: []models.Timeline{
			{StartTime: start, EndTime: start.Add(30 * time.Minute)},
		},
	}

	if err := db.SaveSession(sess); err != nil {
		t.Fatal(err)
	}

	g := &models.Goal{ID: "g1", Type: models.Daily, Target: 3600}

	if err := db.SaveGoal(g); err != nil {
		t.Fatal(err)
	}
}

// Exporting and re-importing a snapshot must reconstruct an equivalent set
// of entities: same ids, same totals.
func TestRoundTrip(t *testing.T) {
	source := newTestClient(t)
	seedDatabase(t, source)

	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := ToFile(source, path); err != nil {
		t.Fatal(err)
	}

	target := newTestClient(t)

	if _, err := FromFile(target, path); err != nil {
		t.Fatal(err)
	}

	wantSubjects, err := source.ListSubjects()
	if err != nil {
		t.Fatal(err)
	}

	gotSubjects, err := target.ListSubjects()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(wantSubjects, gotSubjects); diff != "" {
		t.Fatalf("subjects mismatch (-want +got):\n%s", diff)
	}

	wantSessions, err := source.AllSessions()
	if err != nil {
		t.Fatal(err)
	}

	gotSessions, err := target.AllSessions()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(wantSessions, gotSessions); diff != "" {
		t.Fatalf("sessions mismatch (-want +got):\n%s", diff)
	}

	wantGoals, err := source.ListGoals()
	if err != nil {
		t.Fatal(err)
	}

	gotGoals, err := target.ListGoals()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(wantGoals, gotGoals); diff != "" {
		t.Fatalf("goals mismatch (-want +got):\n%s", diff)
	}
}

// Sessions whose subject was deleted before the export stay in the log, so
// the snapshot references a subject that no longer exists. The import must
// still go through and carry those sessions over.
func TestImportSurvivesDeletedSubject(t *testing.T) {
	source := newTestClient(t)
	seedDatabase(t, source)

	if err := source.DeleteSubject("sub-1"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := ToFile(source, path); err != nil {
		t.Fatal(err)
	}

	target := newTestClient(t)

	if _, err := FromFile(target, path); err != nil {
		t.Fatalf("import of a legitimate export failed: %v", err)
	}

	sessions, err := target.AllSessions()
	if err != nil {
		t.Fatal(err)
	}

	if len(sessions) != 1 || sessions[0].SubjectID != "sub-1" {
		t.Fatalf("expected the orphaned session to survive the round trip, got %v", sessions)
	}

	goals, err := target.ListGoals()
	if err != nil {
		t.Fatal(err)
	}

	if len(goals) != 1 {
		t.Fatalf("expected 1 goal after import, got %d", len(goals))
	}
}

// Importing the same snapshot twice must not duplicate sessions or inflate
// totals.
func TestImportIsIdempotent(t *testing.T) {
	source := newTestClient(t)
	seedDatabase(t, source)

	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := ToFile(source, path); err != nil {
		t.Fatal(err)
	}

	target := newTestClient(t)

	if _, err := FromFile(target, path); err != nil {
		t.Fatal(err)
	}

	if _, err := FromFile(target, path); err != nil {
		t.Fatal(err)
	}

	sessions, err := target.AllSessions()
	if err != nil {
		t.Fatal(err)
	}

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session after double import, got %d", len(sessions))
	}

	sub, err := target.GetSubject("sub-1")
	if err != nil {
		t.Fatal(err)
	}

	if sub.TotalTime != 1800 {
		t.Fatalf("expected total 1800 after double import, got %d", sub.TotalTime)
	}
}
