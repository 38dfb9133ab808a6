package app

import (
	"os"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/store"
)

// delSessions deletes all the specified sessions. It requests confirmation
// before proceeding with the operation.
func delSessions(
	db store.DB,
	sessions []models.Session,
) error {
	if len(sessions) == 0 {
		return nil
	}

	printSessionsTable(os.Stdout, db, sessions)

	if !confirm(
		"The above sessions will be deleted permanently." +
			" Press ENTER to proceed",
	) {
		return nil
	}

	ids := make([]string, len(sessions))

	for i := range sessions {
		ids[i] = sessions[i].ID
	}

	if err := db.DeleteSessions(ids); err != nil {
		return err
	}

	return db.ReconcileTotals()
}
