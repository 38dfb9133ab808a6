// Package export reads and writes snapshot files for data interchange
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/store"
)

// Snapshot collects the full database contents into a models.Snapshot.
func Snapshot(db store.DB) (*models.Snapshot, error) {
	subjects, err := db.ListSubjects()
	if err != nil {
		return nil, err
	}

	sessions, err := db.AllSessions()
	if err != nil {
		return nil, err
	}

	goals, err := db.ListGoals()
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{
		Subjects:   subjects,
		Sessions:   sessions,
		Goals:      goals,
		ExportDate: time.Now(),
	}, nil
}

// ToFile writes the full database contents to path as indented JSON.
func ToFile(db store.DB, path string) error {
	snap, err := Snapshot(db)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}

// FromFile loads a snapshot file and writes every entity it contains into
// the database. Ids and totals are preserved exactly, so exporting and then
// importing reconstructs an equivalent data set. Session imports are
// idempotent on id, which makes re-importing a snapshot safe.
func FromFile(db store.DB, path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap models.Snapshot

	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}

	return &snap, Restore(db, &snap)
}

// Restore writes a snapshot's entities into the database. Sessions go in
// raw, without the per-session total fold: a snapshot can legitimately
// carry sessions for subjects deleted before the export, and those must
// survive the round trip.
func Restore(db store.DB, snap *models.Snapshot) error {
	for i := range snap.Subjects {
		if err := db.SaveSubject(&snap.Subjects[i]); err != nil {
			return err
		}
	}

	for i := range snap.Sessions {
		if err := db.ImportSession(&snap.Sessions[i]); err != nil {
			return err
		}
	}

	for i := range snap.Goals {
		if err := db.SaveGoal(&snap.Goals[i]); err != nil {
			return err
		}
	}

	// Imported subjects carry stale cached totals. Recomputing from the
	// log restores the exact figures.
	return db.ReconcileTotals()
}
