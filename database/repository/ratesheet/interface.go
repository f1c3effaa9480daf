package ratesheetRepo

import (
	"context"

	"sweepstack/models"
)

// RateSheetRepository defines data access for versioned rate-sheet
// snapshots. Sheets are insert-only: publishing writes a new version
// document, never edits an existing one.
type RateSheetRepository interface {
	// Latest returns the highest-version sheet, or nil when the store is
	// empty.
	Latest(ctx context.Context) (*models.RateSheet, error)
	// Publish inserts the sheet as the next version and returns the
	// version it was assigned.
	Publish(ctx context.Context, sheet *models.RateSheet) (int, error)
}
