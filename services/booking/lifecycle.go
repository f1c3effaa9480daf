package booking

import "sweepstack/models"

// Event is a lifecycle action applied to a booking.
type Event string

const (
	EventConfirm    Event = "confirm"
	EventClaim      Event = "claim"
	EventStart      Event = "start"
	EventComplete   Event = "complete"
	EventReschedule Event = "reschedule"
	EventCancel     Event = "cancel"
)

// transitions is the full lifecycle table. Claiming deliberately leaves the
// status at BOOKED: a claim only assigns the cleaner, and the booking moves
// to IN_PROGRESS on arrival-code verification. A reschedule passes through
// RESCHEDULED and re-enters its origin state with the new slot. COMPLETED
// and CANCELLED are terminal.
var transitions = map[models.BookingStatus]map[Event]models.BookingStatus{
	models.StatusDraft: {
		EventConfirm:    models.StatusBooked,
		EventReschedule: models.StatusRescheduled,
		EventCancel:     models.StatusCancelled,
	},
	models.StatusBooked: {
		EventClaim:      models.StatusBooked,
		EventStart:      models.StatusInProgress,
		EventReschedule: models.StatusRescheduled,
		EventCancel:     models.StatusCancelled,
	},
	models.StatusInProgress: {
		EventComplete: models.StatusCompleted,
	},
}

// NextStatus validates one lifecycle step. It returns the target status or
// an InvalidTransition error naming the current state and the event.
func NextStatus(current models.BookingStatus, event Event) (models.BookingStatus, error) {
	if allowed, ok := transitions[current]; ok {
		if next, ok := allowed[event]; ok {
			return next, nil
		}
	}
	return "", NewInvalidTransitionError(string(current), string(event))
}

// CanTransition reports whether the event is legal from the current state.
func CanTransition(current models.BookingStatus, event Event) bool {
	_, err := NextStatus(current, event)
	return err == nil
}
