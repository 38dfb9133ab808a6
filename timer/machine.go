// Package timer operates the study session timer and the lifecycle of the
// active session
package timer

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/store"
)

// Clock supplies the current time. Injecting it keeps state transitions
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// State is the lifecycle state of the session machine.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Machine owns the lifecycle of at most one active session: idle -> running
// -> paused -> running -> idle. Stopping appends the finalized session to
// the log and folds its duration into the owning subject's totals.
type Machine struct {
	db     store.DB
	clock  Clock
	active *models.Session
	state  State
}

func NewMachine(db store.DB, clock Clock) *Machine {
	if clock == nil {
		clock = SystemClock
	}

	return &Machine{db: db, clock: clock}
}

// State reports the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Active returns the in-flight session, or nil when idle.
func (m *Machine) Active() *models.Session { return m.active }

// Elapsed returns the whole seconds accumulated by the active session while
// running. Paused stretches contribute nothing.
func (m *Machine) Elapsed() int64 {
	if m.active == nil {
		return 0
	}

	return m.active.Elapsed(m.clock.Now())
}

// Start begins accumulating a new session. Valid only from Idle.
func (m *Machine) Start(
	sessType models.SessionType,
	subjectID, topicID string,
	tags []string,
) (*models.Session, error) {
	if m.state != Idle {
		return nil, errSessionInProgress
	}

	if !sessType.Valid() {
		return nil, errInvalidSessionType.Fmt(sessType)
	}

	sub, err := m.db.GetSubject(subjectID)
	if err != nil {
		return nil, err
	}

	if topicID != "" && sub.Topic(topicID) == nil {
		return nil, store.ErrTopicNotFound.Fmt(topicID)
	}

	now := m.clock.Now()

	m.active = &models.Session{
		ID:        uuid.NewString(),
		SubjectID: sub.ID,
		TopicID:   topicID,
		StartTime: now,
		Tags:      tags,
		Type:      sessType,
		Timeline: []models.Timeline{
			{StartTime: now},
		},
	}
	m.state = Running

	return m.active, nil
}

// StartWasted begins a wasted-time session against the sentinel subject.
func (m *Machine) StartWasted(tags []string) (*models.Session, error) {
	return m.Start(models.Wasted, models.WastedSubjectID, "", tags)
}

// Pause suspends accumulation. Valid only from Running. The start time is
// unchanged; the wall-clock gap until Resume is excluded from elapsed time.
func (m *Machine) Pause() error {
	if m.state != Running {
		return errNotRunning
	}

	m.active.Timeline[len(m.active.Timeline)-1].EndTime = m.clock.Now()
	m.state = Paused

	return nil
}

// Resume continues accumulation. Valid only from Paused.
func (m *Machine) Resume() error {
	if m.state != Paused {
		return errNotPaused
	}

	m.active.Timeline = append(m.active.Timeline, models.Timeline{
		StartTime: m.clock.Now(),
	})
	m.state = Running

	return nil
}

// Stop finalizes the active session, appends it to the log, and returns to
// Idle. Valid from Running or Paused. Zero-elapsed sessions are still
// logged. When the append fails, the finalized session is returned alongside
// the error so the caller can warn and retry; saving is idempotent on the
// session id, and the machine resets either way.
func (m *Machine) Stop(notes string) (*models.Session, error) {
	if m.state == Idle {
		return nil, errNoSession
	}

	now := m.clock.Now()
	sess := m.active

	if m.state == Running {
		sess.Timeline[len(sess.Timeline)-1].EndTime = now
	}

	sess.EndTime = now
	sess.Duration = sess.Elapsed(now)
	sess.Notes = notes

	m.active = nil
	m.state = Idle

	if err := m.db.SaveSession(sess); err != nil {
		return sess, err
	}

	return sess, nil
}

// Discard drops the active session without logging it and returns to Idle.
// Valid from Running or Paused.
func (m *Machine) Discard() error {
	if m.state == Idle {
		return errNoSession
	}

	m.active = nil
	m.state = Idle

	return nil
}

// AddManual appends a fully-formed session directly to the log, bypassing
// the lifecycle entirely. Valid in any state. Totals fold exactly as they
// do on Stop.
func (m *Machine) AddManual(sess *models.Session) error {
	if !sess.Type.Valid() {
		return errInvalidSessionType.Fmt(sess.Type)
	}

	if sess.EndTime.Before(sess.StartTime) {
		return errEndBeforeStart
	}

	sub, err := m.db.GetSubject(sess.SubjectID)
	if err != nil {
		return err
	}

	if sess.TopicID != "" && sub.Topic(sess.TopicID) == nil {
		return store.ErrTopicNotFound.Fmt(sess.TopicID)
	}

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	if sess.Duration == 0 {
		sess.Duration = int64(sess.EndTime.Sub(sess.StartTime).Seconds())
	}

	if len(sess.Timeline) == 0 {
		sess.Timeline = []models.Timeline{
			{StartTime: sess.StartTime, EndTime: sess.EndTime},
		}
	}

	return m.db.SaveSession(sess)
}
