// Package goal manages periodic study targets
package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/stats"
	"github.com/ayoisaiah/scholar/store"
)

// Tracker persists study goals and derives their progress from the session
// log. At most one goal exists per (type, subject) pair.
type Tracker struct {
	db store.DB
}

func NewTracker(db store.DB) *Tracker {
	return &Tracker{db: db}
}

// Set creates a goal, or replaces the existing goal for the same type and
// subject while retaining its id. The target is whole seconds and must be
// positive. An empty subject id means the goal covers all subjects.
func (t *Tracker) Set(
	goalType models.GoalType,
	target int64,
	subjectID string,
) (*models.Goal, error) {
	if !goalType.Valid() {
		return nil, errInvalidGoalType.Fmt(goalType)
	}

	if target <= 0 {
		return nil, errInvalidGoalTarget
	}

	if subjectID != "" {
		if _, err := t.db.GetSubject(subjectID); err != nil {
			return nil, err
		}
	}

	g := &models.Goal{
		ID:        uuid.NewString(),
		Type:      goalType,
		Target:    target,
		SubjectID: subjectID,
	}

	existing, err := t.db.ListGoals()
	if err != nil {
		return nil, err
	}

	for i := range existing {
		if existing[i].Type == goalType &&
			existing[i].SubjectID == subjectID {
			g.ID = existing[i].ID
			break
		}
	}

	if err := t.db.SaveGoal(g); err != nil {
		return nil, err
	}

	return g, nil
}

func (t *Tracker) List() ([]models.Goal, error) {
	return t.db.ListGoals()
}

func (t *Tracker) Delete(id string) error {
	return t.db.DeleteGoal(id)
}

// Progress derives a goal's completion percentage for the period containing
// now. Live accumulation from an unfinished session is included when it
// qualifies.
func (t *Tracker) Progress(
	g *models.Goal,
	now time.Time,
	active *models.Session,
	activeElapsed int64,
) (int, error) {
	start, end := stats.GoalWindow(g.Type, now)

	sessions, err := t.db.GetSessions(start, end, nil, "")
	if err != nil {
		return 0, err
	}

	return stats.GoalProgress(g, sessions, now, active, activeElapsed), nil
}
