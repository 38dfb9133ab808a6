// Package store connects to the data store and manages subjects, sessions,
// and goals
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
)

const (
	subjectBucket   = "subjects"
	sessionBucket   = "sessions"
	goalBucket      = "goals"
	sessionIDBucket = "session_ids"
)

var pathToDB string

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// sessionKey builds the bolt key for a session. The key leads with the UTC
// start time so that cursor scans return sessions in chronological order; the
// id suffix keeps concurrent manual entries with identical start times
// distinct.
func sessionKey(sess *models.Session) []byte {
	k := timeutil.ToKey(sess.StartTime)
	k = append(k, '|')

	return append(k, sess.ID...)
}

// putSession writes a session record and its id index entry. It reports
// whether the session was new to the log: re-submitting an already-stored
// session id is a no-op, which makes retrying a failed write safe.
func putSession(tx *bolt.Tx, sess *models.Session) (bool, error) {
	ids := tx.Bucket([]byte(sessionIDBucket))
	if ids.Get([]byte(sess.ID)) != nil {
		return false, nil
	}

	value, err := json.Marshal(sess)
	if err != nil {
		return false, err
	}

	key := sessionKey(sess)

	if err := tx.Bucket([]byte(sessionBucket)).Put(key, value); err != nil {
		return false, err
	}

	return true, ids.Put([]byte(sess.ID), key)
}

// SaveSession appends a finalized session and folds its duration into the
// owning subject and topic cached totals in a single transaction.
func (c *Client) SaveSession(sess *models.Session) error {
	err := c.Update(func(tx *bolt.Tx) error {
		isNew, err := putSession(tx, sess)
		if err != nil || !isNew {
			return err
		}

		if !sess.CountsTowardTotals() ||
			sess.SubjectID == models.WastedSubjectID {
			return nil
		}

		return foldTotals(tx, sess)
	})
	if err != nil {
		if isReferenceErr(err) {
			return err
		}

		return errWriteFailed.Wrap(err)
	}

	return nil
}

// ImportSession appends a session without touching any cached totals. The
// log may legitimately reference subjects that no longer exist, so restores
// write the raw records and rebuild totals afterwards with ReconcileTotals.
func (c *Client) ImportSession(sess *models.Session) error {
	err := c.Update(func(tx *bolt.Tx) error {
		_, err := putSession(tx, sess)
		return err
	})
	if err != nil {
		return errWriteFailed.Wrap(err)
	}

	return nil
}

// foldTotals adds a session's duration to the cached totals of its subject
// and, when set, its topic.
func foldTotals(tx *bolt.Tx, sess *models.Session) error {
	b := tx.Bucket([]byte(subjectBucket))

	raw := b.Get([]byte(sess.SubjectID))
	if raw == nil {
		return ErrSubjectNotFound.Fmt(sess.SubjectID)
	}

	var sub models.Subject

	if err := json.Unmarshal(raw, &sub); err != nil {
		return err
	}

	sub.TotalTime += sess.Duration

	if sess.TopicID != "" {
		topic := sub.Topic(sess.TopicID)
		if topic == nil {
			return ErrTopicNotFound.Fmt(sess.TopicID)
		}

		topic.TotalTime += sess.Duration
	}

	value, err := json.Marshal(&sub)
	if err != nil {
		return err
	}

	return b.Put([]byte(sub.ID), value)
}

func isReferenceErr(err error) bool {
	return errors.Is(err, ErrSubjectNotFound) ||
		errors.Is(err, ErrTopicNotFound) ||
		errors.Is(err, ErrGoalNotFound)
}

// matchesFilter reports whether a session satisfies the tag and subject
// constraints.
func matchesFilter(
	sess *models.Session,
	tags []string,
	subjectID string,
) bool {
	if subjectID != "" && sess.SubjectID != subjectID {
		return false
	}

	if len(tags) == 0 {
		return true
	}

	for _, t := range sess.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}

	return false
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
	tags []string,
	subjectID string,
) ([]models.Session, error) {
	var sessions []models.Session

	min := timeutil.ToKey(startTime)

	// 0xff sorts after the '|' id separator so every key whose timestamp
	// component is within bounds is included.
	max := append(timeutil.ToKey(endTime), 0xff)

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			if matchesFilter(&sess, tags, subjectID) {
				sessions = append(sessions, sess)
			}
		}

		return nil
	})

	return sessions, err
}

func (c *Client) AllSessions() ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

func (c *Client) DeleteSessions(ids []string) error {
	err := c.Update(func(tx *bolt.Tx) error {
		idx := tx.Bucket([]byte(sessionIDBucket))
		sessions := tx.Bucket([]byte(sessionBucket))

		for _, id := range ids {
			key := idx.Get([]byte(id))
			if key == nil {
				continue
			}

			if err := sessions.Delete(key); err != nil {
				return err
			}

			if err := idx.Delete([]byte(id)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errWriteFailed.Wrap(err)
	}

	return nil
}

func (c *Client) SaveSubject(sub *models.Subject) error {
	value, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(subjectBucket)).Put([]byte(sub.ID), value)
	})
	if err != nil {
		return errWriteFailed.Wrap(err)
	}

	return nil
}

func (c *Client) GetSubject(id string) (*models.Subject, error) {
	if id == models.WastedSubjectID {
		return &models.Subject{
			ID:   models.WastedSubjectID,
			Name: "Wasted time",
		}, nil
	}

	var sub models.Subject

	err := c.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(subjectBucket)).Get([]byte(id))
		if raw == nil {
			return ErrSubjectNotFound.Fmt(id)
		}

		return json.Unmarshal(raw, &sub)
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (c *Client) FindSubject(name string) (*models.Subject, error) {
	subjects, err := c.ListSubjects()
	if err != nil {
		return nil, err
	}

	for i := range subjects {
		if strings.EqualFold(subjects[i].Name, name) {
			return &subjects[i], nil
		}
	}

	return nil, ErrSubjectNotFound.Fmt(name)
}

func (c *Client) ListSubjects() ([]models.Subject, error) {
	var subjects []models.Subject

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(subjectBucket)).
			ForEach(func(_, v []byte) error {
				var sub models.Subject

				if err := json.Unmarshal(v, &sub); err != nil {
					return err
				}

				subjects = append(subjects, sub)

				return nil
			})
	})

	return subjects, err
}

func (c *Client) DeleteSubject(id string) error {
	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(subjectBucket))

		if b.Get([]byte(id)) == nil {
			return ErrSubjectNotFound.Fmt(id)
		}

		return b.Delete([]byte(id))
	})
	if err != nil {
		if isReferenceErr(err) {
			return err
		}

		return errWriteFailed.Wrap(err)
	}

	return nil
}

func (c *Client) SaveGoal(g *models.Goal) error {
	value, err := json.Marshal(g)
	if err != nil {
		return err
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(goalBucket)).Put([]byte(g.ID), value)
	})
	if err != nil {
		return errWriteFailed.Wrap(err)
	}

	return nil
}

func (c *Client) ListGoals() ([]models.Goal, error) {
	var goals []models.Goal

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(goalBucket)).
			ForEach(func(_, v []byte) error {
				var g models.Goal

				if err := json.Unmarshal(v, &g); err != nil {
					return err
				}

				goals = append(goals, g)

				return nil
			})
	})

	return goals, err
}

func (c *Client) DeleteGoal(id string) error {
	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(goalBucket))

		if b.Get([]byte(id)) == nil {
			return ErrGoalNotFound.Fmt(id)
		}

		return b.Delete([]byte(id))
	})
	if err != nil {
		if isReferenceErr(err) {
			return err
		}

		return errWriteFailed.Wrap(err)
	}

	return nil
}

// ReconcileTotals recomputes every cached subject and topic total from the
// session log. The log is ground truth; cached totals are a denormalized
// index that can drift if the database is mutated externally.
func (c *Client) ReconcileTotals() error {
	err := c.Update(func(tx *bolt.Tx) error {
		subjectTotals := make(map[string]int64)
		topicTotals := make(map[string]int64)

		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			if !sess.CountsTowardTotals() {
				continue
			}

			subjectTotals[sess.SubjectID] += sess.Duration

			if sess.TopicID != "" {
				topicTotals[sess.TopicID] += sess.Duration
			}
		}

		b := tx.Bucket([]byte(subjectBucket))

		return b.ForEach(func(k, v []byte) error {
			var sub models.Subject

			if err := json.Unmarshal(v, &sub); err != nil {
				return err
			}

			sub.TotalTime = subjectTotals[sub.ID]

			for i := range sub.Topics {
				sub.Topics[i].TotalTime = topicTotals[sub.Topics[i].ID]
			}

			value, err := json.Marshal(&sub)
			if err != nil {
				return err
			}

			return b.Put(k, value)
		})
	})
	if err != nil {
		return errWriteFailed.Wrap(err)
	}

	return nil
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// a lock timeout means another scholar process holds the database
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errScholarRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist
	// already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{
			subjectBucket,
			sessionBucket,
			goalBucket,
			sessionIDBucket,
		} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
