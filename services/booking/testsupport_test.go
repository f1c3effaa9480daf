package booking

import (
	"context"
	"sync"

	bookingRepo "sweepstack/database/repository/booking"
	"sweepstack/models"
)

// memBookingRepo is an in-memory BookingRepository. Claim mirrors the
// production semantics: the condition check and the assignment happen
// under one lock, as a single conditional update.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) List(_ context.Context, f bookingRepo.ListFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if f.CustomerID != "" && b.CustomerID != f.CustomerID {
			continue
		}
		if f.CleanerID != "" && b.CleanerID != f.CleanerID {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Unclaimed && b.CleanerID != "" {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBookingRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "status":
			b.Status = v.(models.BookingStatus)
		case "date":
			b.Date = v.(string)
		case "start_time":
			b.StartTime = v.(string)
		case "total_amount":
			b.TotalAmount = v.(float64)
		case "rate_sheet_version":
			b.RateSheetVersion = v.(int)
		case "unpriced":
			b.Unpriced = v.(bool)
		case "checklist":
			b.Checklist = v.([]models.ChecklistItem)
		case "evidence_photos":
			b.EvidencePhotos = v.(int)
		case "cleaner_notes":
			b.CleanerNotes = v.(string)
		case "cancel_reason":
			b.CancelReason = v.(string)
		}
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) Claim(_ context.Context, id, cleanerID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	if b.Status != models.StatusBooked {
		return nil, nil
	}
	if b.CleanerID != "" && b.CleanerID != cleanerID {
		return nil, nil
	}
	b.CleanerID = cleanerID
	cp := *b
	return &cp, nil
}

// staticRates serves one fixed sheet.
type staticRates struct {
	sheet *models.RateSheet
}

func (s staticRates) Current(context.Context) (*models.RateSheet, error) {
	return s.sheet, nil
}

func (s staticRates) Publish(_ context.Context, sheet *models.RateSheet) (*models.RateSheet, error) {
	return sheet, nil
}

// fakePayments approves everything.
type fakePayments struct{}

func (fakePayments) ProcessPayment(_ context.Context, req PaymentRequest) (*models.Invoice, error) {
	return &models.Invoice{
		InvoiceID: "inv-test",
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
	}, nil
}

func newTestService(repo *memBookingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Rates:    staticRates{sheet: models.DefaultRateSheet()},
		Payments: fakePayments{},
		Policy:   Policy{AllowUnpriced: true},
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		ServiceType: models.ServiceDeepClean,
		Rooms: []models.RoomSelection{
			{Kind: models.RoomBedroom, Quantity: 2},
			{Kind: models.RoomBathroom, Quantity: 1},
		},
		Frequency: models.FrequencyMonthly,
		Date:      "2027-03-01",
		StartTime: "09:00",
	}
}
