package booking

import (
	"context"

	bookingRepo "sweepstack/database/repository/booking"
	"sweepstack/models"
)

// CreateBookingInput carries a booking request plus the identity and
// payment context needed to materialize it.
type CreateBookingInput struct {
	CustomerID string
	Request    models.BookingRequest
	// Confirm creates the booking directly in BOOKED, charging through the
	// payment collaborator; otherwise the booking rests in DRAFT.
	Confirm       bool
	PaymentMethod string
}

// RescheduleInput is the customer- or admin-driven slot change.
type RescheduleInput struct {
	Date      string
	StartTime string
	// Reprice recomputes the total against the current rate sheet; by
	// default the original price is kept.
	Reprice bool
}

// CompleteJobInput is the assigned cleaner's submission.
type CompleteJobInput struct {
	BookingID      string
	CleanerID      string
	Checklist      []models.ChecklistItem
	EvidencePhotos int
	Notes          string
}

// BookingService is the booking core: quoting, lifecycle, and job claims.
type BookingService interface {
	Quote(ctx context.Context, req models.BookingRequest) (*models.Quote, error)
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error)

	// ClaimJob atomically assigns an unassigned BOOKED job to the cleaner;
	// at most one concurrent claim per booking succeeds.
	ClaimJob(ctx context.Context, bookingID, cleanerID string) (*models.Booking, error)
	StartJob(ctx context.Context, bookingID, cleanerID, arrivalCode string) (*models.Booking, error)
	CompleteJob(ctx context.Context, in CompleteJobInput) (*models.Booking, error)

	Reschedule(ctx context.Context, bookingID string, in RescheduleInput) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, reason string) (*models.Booking, error)
}

// ReminderScheduler queues a visit reminder for a confirmed booking.
// Delivery itself belongs to an external collaborator.
type ReminderScheduler interface {
	ScheduleVisitReminder(ctx context.Context, b *models.Booking) error
}
