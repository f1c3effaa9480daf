package rates

import (
	"context"

	"sweepstack/models"
)

// RateSheetService is the settings collaborator surface the booking core
// reads from. Current always hands out a whole snapshot; callers never see
// a sheet mid-update.
type RateSheetService interface {
	Current(ctx context.Context) (*models.RateSheet, error)
	Publish(ctx context.Context, sheet *models.RateSheet) (*models.RateSheet, error)
}
