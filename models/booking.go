package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusDraft       BookingStatus = "DRAFT"
	StatusBooked      BookingStatus = "BOOKED"
	StatusInProgress  BookingStatus = "IN_PROGRESS"
	StatusRescheduled BookingStatus = "RESCHEDULED"
	StatusCompleted   BookingStatus = "COMPLETED"
	StatusCancelled   BookingStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ChecklistItem is a single task the assigned cleaner must work through.
type ChecklistItem struct {
	Task     string `bson:"task" json:"task"`
	Required bool   `bson:"required" json:"required"`
	Done     bool   `bson:"done" json:"done"`
}

// Booking is the persisted record of one scheduled cleaning job. Bookings
// are never deleted; COMPLETED and CANCELLED records are retained for
// history and earnings reporting.
type Booking struct {
	ID         string `bson:"id" json:"id"` // BK-<date>-<random>, generated at creation
	CustomerID string `bson:"customer_id" json:"customerId"`

	// Subject fields mirrored from the booking request.
	ServiceType  ServiceType      `bson:"service_type" json:"serviceType"`
	PropertyType string           `bson:"property_type" json:"propertyType"`
	Rooms        []RoomSelection  `bson:"rooms" json:"rooms"`
	Addons       []AddonSelection `bson:"addons,omitempty" json:"addons,omitempty"`
	Frequency    Frequency        `bson:"frequency" json:"frequency"`
	Date         string           `bson:"date" json:"date"`            // "YYYY-MM-DD"
	StartTime    string           `bson:"start_time" json:"startTime"` // "HH:MM"
	HasPets      bool             `bson:"has_pets" json:"hasPets"`
	Notes        string           `bson:"notes,omitempty" json:"notes,omitempty"`

	// Priced once at creation; immutable except through an explicit
	// re-price on reschedule.
	TotalAmount      float64 `bson:"total_amount" json:"totalAmount"`
	RateSheetVersion int     `bson:"rate_sheet_version" json:"rateSheetVersion"`
	Unpriced         bool    `bson:"unpriced,omitempty" json:"unpriced,omitempty"`
	PaymentMethod    string  `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`

	// Crew planning, frozen at pricing time.
	EstimatedMinutes float64 `bson:"estimated_minutes" json:"estimatedMinutes"`
	CrewSize         int     `bson:"crew_size" json:"crewSize"`

	Status BookingStatus `bson:"status" json:"status"`

	// CleanerID is empty until claimed and set exactly once under normal
	// operation, by the claim coordinator's conditional write.
	CleanerID   string `bson:"cleaner_id" json:"cleanerId,omitempty"`
	ArrivalCode string `bson:"arrival_code,omitempty" json:"-"`

	Checklist      []ChecklistItem `bson:"checklist,omitempty" json:"checklist,omitempty"`
	EvidencePhotos int             `bson:"evidence_photos,omitempty" json:"evidencePhotos,omitempty"`
	CleanerNotes   string          `bson:"cleaner_notes,omitempty" json:"cleanerNotes,omitempty"`

	CancelReason string     `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	CancelledAt  *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
	StartedAt    *time.Time `bson:"started_at,omitempty" json:"startedAt,omitempty"`
	CompletedAt  *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ScheduledAt parses the booking's date and start time in the given
// location. Bookings store wall-clock fields so a reschedule is a plain
// field update.
func (b *Booking) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.StartTime, loc)
}
