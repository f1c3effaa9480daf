package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "sweepstack/database/repository/booking"
	"sweepstack/models"
	"sweepstack/services/pricing"
	"sweepstack/services/rates"
	"sweepstack/utils"

	"go.uber.org/zap"
)

// Policy carries the configurable lifecycle and pricing decisions.
type Policy struct {
	// AllowUnpriced lets a booking proceed when its quote contains
	// fallback-priced lines. The quote is flagged either way.
	AllowUnpriced bool
	// RescheduleMinLead is how far in the future a new slot must be.
	RescheduleMinLead time.Duration
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Rates     rates.RateSheetService
	Payments  PaymentHandler
	Reminders ReminderScheduler
	Policy    Policy
}

func (s *DefaultBookingService) Quote(ctx context.Context, req models.BookingRequest) (*models.Quote, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	sheet, err := s.Rates.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate sheet: %w", err)
	}
	return &models.Quote{
		Price:            pricing.ComputePrice(req, sheet),
		Duration:         pricing.EstimateDuration(req, sheet),
		RateSheetVersion: sheet.Version,
	}, nil
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if in.CustomerID == "" {
		return nil, NewValidationError("customerId is required")
	}
	if err := validateRequest(in.Request); err != nil {
		return nil, err
	}

	sheet, err := s.Rates.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate sheet: %w", err)
	}
	breakdown := pricing.ComputePrice(in.Request, sheet)
	estimate := pricing.EstimateDuration(in.Request, sheet)

	if breakdown.Unpriced && !s.Policy.AllowUnpriced {
		return nil, NewUnpricedServiceError(
			"request references kinds the current rate sheet does not price")
	}

	now := time.Now()
	id, err := utils.NewBookingID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to mint booking id: %w", err)
	}

	b := &models.Booking{
		ID:               id,
		CustomerID:       in.CustomerID,
		ServiceType:      in.Request.ServiceType,
		PropertyType:     in.Request.PropertyType,
		Rooms:            in.Request.Rooms,
		Addons:           in.Request.Addons,
		Frequency:        in.Request.Frequency,
		Date:             in.Request.Date,
		StartTime:        in.Request.StartTime,
		HasPets:          in.Request.HasPets,
		Notes:            in.Request.Notes,
		TotalAmount:      breakdown.Total,
		RateSheetVersion: sheet.Version,
		Unpriced:         breakdown.Unpriced,
		EstimatedMinutes: estimate.TotalMinutes,
		CrewSize:         estimate.CrewSize,
		Status:           models.StatusDraft,
		Checklist:        defaultChecklist(in.Request),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if in.Confirm {
		if err := s.confirm(ctx, b, in.PaymentMethod); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	if b.Status == models.StatusBooked && s.Reminders != nil {
		if err := s.Reminders.ScheduleVisitReminder(ctx, b); err != nil {
			utils.GetLogger().Warn("failed to schedule visit reminder",
				zap.String("booking", b.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("booking created",
		zap.String("booking", b.ID),
		zap.String("status", string(b.Status)),
		zap.Float64("total", b.TotalAmount))
	return b, nil
}

// confirm moves a freshly built booking into BOOKED: it records the charge
// and mints the arrival code the cleaner will need on-site.
func (s *DefaultBookingService) confirm(ctx context.Context, b *models.Booking, method string) error {
	next, err := NextStatus(b.Status, EventConfirm)
	if err != nil {
		return err
	}

	invoice, err := s.Payments.ProcessPayment(ctx, PaymentRequest{
		BookingID: b.ID,
		Amount:    b.TotalAmount,
		Currency:  "USD",
		Method:    method,
	})
	if err != nil {
		return NewValidationError(fmt.Sprintf("payment failed: %v", err))
	}

	code, err := utils.NewArrivalCode()
	if err != nil {
		return fmt.Errorf("failed to mint arrival code: %w", err)
	}

	b.Status = next
	b.PaymentMethod = invoice.Method
	b.ArrivalCode = code
	return nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError(id)
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error) {
	return s.Repo.List(ctx, f)
}

// StartJob verifies arrival and moves a claimed booking to IN_PROGRESS.
// Only the assigned cleaner may start, and the presented code must match
// the one minted at confirmation.
func (s *DefaultBookingService) StartJob(ctx context.Context, bookingID, cleanerID, arrivalCode string) (*models.Booking, error) {
	if cleanerID == "" || arrivalCode == "" {
		return nil, NewValidationError("cleanerId and arrivalCode are required")
	}
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(b.Status, EventStart)
	if err != nil {
		return nil, err
	}
	if b.CleanerID == "" || b.CleanerID != cleanerID {
		return nil, NewValidationError("only the assigned cleaner may start this job")
	}
	if b.ArrivalCode != arrivalCode {
		return nil, NewValidationError("arrival code does not match")
	}

	now := time.Now()
	updated, err := s.Repo.UpdateFields(ctx, bookingID, map[string]any{
		"status":     next,
		"started_at": now,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NewNotFoundError(bookingID)
	}
	utils.GetLogger().Info("job started",
		zap.String("booking", bookingID), zap.String("cleaner", cleanerID))
	return updated, nil
}

// CompleteJob closes out an in-progress booking. Every required checklist
// task must be done and the submission must carry minimum evidence (at
// least one photo or nonempty notes).
func (s *DefaultBookingService) CompleteJob(ctx context.Context, in CompleteJobInput) (*models.Booking, error) {
	if in.CleanerID == "" {
		return nil, NewValidationError("cleanerId is required")
	}
	b, err := s.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(b.Status, EventComplete)
	if err != nil {
		return nil, err
	}
	if b.CleanerID != in.CleanerID {
		return nil, NewValidationError("only the assigned cleaner may complete this job")
	}

	checklist := in.Checklist
	if len(checklist) == 0 {
		checklist = b.Checklist
	}
	for _, item := range checklist {
		if item.Required && !item.Done {
			return nil, NewValidationError(
				fmt.Sprintf("required task not done: %s", item.Task))
		}
	}
	if in.EvidencePhotos < 1 && in.Notes == "" {
		return nil, NewValidationError("completion requires at least one photo or notes")
	}

	now := time.Now()
	updated, err := s.Repo.UpdateFields(ctx, in.BookingID, map[string]any{
		"status":          next,
		"checklist":       checklist,
		"evidence_photos": in.EvidencePhotos,
		"cleaner_notes":   in.Notes,
		"completed_at":    now,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NewNotFoundError(in.BookingID)
	}
	utils.GetLogger().Info("job completed",
		zap.String("booking", in.BookingID), zap.String("cleaner", in.CleanerID))
	return updated, nil
}

// Reschedule moves the booking to a new slot at least the configured lead
// time out. The record passes through RESCHEDULED and re-enters its origin
// state; the price is kept unless an explicit re-price is requested.
func (s *DefaultBookingService) Reschedule(ctx context.Context, bookingID string, in RescheduleInput) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := NextStatus(b.Status, EventReschedule); err != nil {
		return nil, err
	}

	slot, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.StartTime, time.Local)
	if err != nil {
		return nil, NewValidationError("date must be YYYY-MM-DD and startTime HH:MM")
	}
	lead := s.Policy.RescheduleMinLead
	if lead <= 0 {
		lead = 24 * time.Hour
	}
	if time.Until(slot) < lead {
		return nil, NewValidationError(
			fmt.Sprintf("new slot must be at least %v from now", lead))
	}

	fields := map[string]any{
		"date":       in.Date,
		"start_time": in.StartTime,
		// The RESCHEDULED stop is transient; the booking re-enters its
		// origin state in the same write.
		"status": b.Status,
	}

	if in.Reprice {
		sheet, err := s.Rates.Current(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load rate sheet: %w", err)
		}
		req := models.BookingRequest{
			ServiceType: b.ServiceType,
			Rooms:       b.Rooms,
			Addons:      b.Addons,
			Frequency:   b.Frequency,
		}
		breakdown := pricing.ComputePrice(req, sheet)
		if breakdown.Unpriced && !s.Policy.AllowUnpriced {
			return nil, NewUnpricedServiceError(
				"current rate sheet no longer prices this booking")
		}
		fields["total_amount"] = breakdown.Total
		fields["rate_sheet_version"] = sheet.Version
		fields["unpriced"] = breakdown.Unpriced
	}

	updated, err := s.Repo.UpdateFields(ctx, bookingID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NewNotFoundError(bookingID)
	}
	utils.GetLogger().Info("booking rescheduled",
		zap.String("booking", bookingID),
		zap.String("date", in.Date),
		zap.Bool("repriced", in.Reprice))
	return updated, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(b.Status, EventCancel)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := s.Repo.UpdateFields(ctx, bookingID, map[string]any{
		"status":        next,
		"cancel_reason": reason,
		"cancelled_at":  now,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NewNotFoundError(bookingID)
	}
	utils.GetLogger().Info("booking cancelled",
		zap.String("booking", bookingID), zap.String("reason", reason))
	return updated, nil
}

// validateRequest rejects malformed requests before any pricing or claim
// logic runs.
func validateRequest(req models.BookingRequest) error {
	if req.ServiceType == "" {
		return NewValidationError("serviceType is required")
	}
	if len(req.Rooms) == 0 {
		return NewValidationError("at least one room is required")
	}
	for _, room := range req.Rooms {
		if room.Quantity < 1 {
			return NewValidationError(fmt.Sprintf("room %s has invalid quantity", room.Kind))
		}
	}
	for _, addon := range req.Addons {
		if addon.Quantity < 1 {
			return NewValidationError(fmt.Sprintf("addon %s has invalid quantity", addon.Kind))
		}
	}
	if req.Frequency == "" {
		return NewValidationError("frequency is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return NewValidationError("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return NewValidationError("startTime must be HH:MM")
	}
	return nil
}

// defaultChecklist derives the task list the assigned cleaner works
// through from the rooms and add-ons booked.
func defaultChecklist(req models.BookingRequest) []models.ChecklistItem {
	var items []models.ChecklistItem
	for _, room := range req.Rooms {
		items = append(items, models.ChecklistItem{
			Task:     fmt.Sprintf("Clean %s (x%d)", room.Kind, room.Quantity),
			Required: true,
		})
	}
	for _, addon := range req.Addons {
		items = append(items, models.ChecklistItem{
			Task:     fmt.Sprintf("Add-on: %s (x%d)", addon.Kind, addon.Quantity),
			Required: true,
		})
	}
	items = append(items, models.ChecklistItem{Task: "Final walkthrough", Required: false})
	return items
}
