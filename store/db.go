package store

import (
	"time"

	"github.com/ayoisaiah/scholar/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveSession appends a finalized session to the session log and folds
	// its duration into the owning subject's (and topic's) cached totals in
	// the same transaction. Re-submitting an already-stored session id is a
	// no-op.
	SaveSession(sess *models.Session) error
	// ImportSession appends a session without updating cached totals, for
	// restoring logs that may reference since-deleted subjects.
	ImportSession(sess *models.Session) error
	// GetSessions returns saved sessions according to the time, tag, and
	// subject constraints.
	GetSessions(
		startTime, endTime time.Time,
		tags []string,
		subjectID string,
	) ([]models.Session, error)
	// AllSessions returns the full session log in start-time order.
	AllSessions() ([]models.Session, error)
	// DeleteSessions deletes one or more saved sessions by id.
	DeleteSessions(ids []string) error

	// SaveSubject creates or overwrites a subject record, topics included.
	SaveSubject(sub *models.Subject) error
	// GetSubject retrieves a subject by id. The wasted-time sentinel always
	// resolves.
	GetSubject(id string) (*models.Subject, error)
	// FindSubject retrieves a subject by case-insensitive name match.
	FindSubject(name string) (*models.Subject, error)
	// ListSubjects returns all subjects.
	ListSubjects() ([]models.Subject, error)
	// DeleteSubject removes a subject record. Its logged sessions remain.
	DeleteSubject(id string) error

	// SaveGoal creates or overwrites a goal record.
	SaveGoal(g *models.Goal) error
	// ListGoals returns all goals.
	ListGoals() ([]models.Goal, error)
	// DeleteGoal removes a goal record.
	DeleteGoal(id string) error

	// ReconcileTotals recomputes every cached subject and topic total from
	// the session log as ground truth.
	ReconcileTotals() error

	// Close ends the database connection.
	Close() error
	// Open begins a database connection.
	Open() error
}
