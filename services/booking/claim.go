package booking

import (
	"context"

	"sweepstack/models"
	"sweepstack/utils"

	"go.uber.org/zap"
)

// ClaimJob assigns an unassigned BOOKED job to the requesting cleaner. The
// assignment itself is one conditional write inside the repository, so
// when N cleaners race for the same job exactly one succeeds and the rest
// observe it already claimed. A cleaner retrying their own successful
// claim sees success again, not a conflict.
//
// The reads below run only after a failed claim, to name the reason; they
// never participate in deciding the winner.
func (s *DefaultBookingService) ClaimJob(ctx context.Context, bookingID, cleanerID string) (*models.Booking, error) {
	if cleanerID == "" {
		return nil, NewValidationError("cleanerId is required")
	}

	claimed, err := s.Repo.Claim(ctx, bookingID, cleanerID)
	if err != nil {
		return nil, err
	}
	if claimed != nil {
		utils.GetLogger().Info("job claimed",
			zap.String("booking", bookingID), zap.String("cleaner", cleanerID))
		return claimed, nil
	}

	// The conditional update matched nothing. Diagnose why.
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	switch {
	case b == nil:
		return nil, NewNotFoundError(bookingID)
	case b.Status != models.StatusBooked:
		return nil, NewInvalidTransitionError(string(b.Status), string(EventClaim))
	default:
		return nil, NewAlreadyClaimedError(bookingID)
	}
}
