package bookingRepo

import (
	"context"

	"sweepstack/models"
)

// ListFilter narrows booking listings; zero values mean "any".
type ListFilter struct {
	CustomerID string
	CleanerID  string
	Status     models.BookingStatus
	// Unclaimed restricts to bookings with no assigned cleaner, the job
	// board cleaners browse.
	Unclaimed bool
	Limit     int64
}

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, f ListFilter) ([]models.Booking, error)

	// UpdateFields applies a partial update to one booking and returns the
	// updated record. Callers own transition validation; this is a plain
	// field write.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Booking, error)

	// Claim atomically assigns the booking to cleanerID. The filter and
	// write are a single conditional update: it succeeds only when the
	// booking is BOOKED and either unclaimed or already claimed by the
	// same cleaner (the idempotent-retry arm). It never overwrites another
	// cleaner's claim. A nil booking with a nil error means the condition
	// did not match; the caller diagnoses why.
	Claim(ctx context.Context, id, cleanerID string) (*models.Booking, error)
}
