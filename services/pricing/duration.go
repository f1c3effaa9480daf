package pricing

import (
	"math"

	"sweepstack/models"
)

// CrewShiftMinutes is the labor one worker covers in a single visit; total
// labor beyond it adds another crew member.
const CrewShiftMinutes = 240

// EstimateDuration estimates total labor minutes, the crew required, and
// the two duration views derived from them. The admin view is the exact
// total in hours; the customer view divides minutes evenly across the crew
// and shows how long a single worker is on-site, coarsened to a half-hour
// grid.
func EstimateDuration(req models.BookingRequest, sheet *models.RateSheet) models.DurationEstimate {
	minutes := sheet.Duration.BaseMinutes
	for _, room := range req.Rooms {
		if room.Quantity > 0 {
			minutes += float64(room.Quantity) * sheet.RoomMinutesOf(room.Kind)
		}
	}
	for _, addon := range req.Addons {
		if addon.Quantity > 0 {
			minutes += float64(addon.Quantity) * sheet.AddonMinutesOf(addon.Kind)
		}
	}
	minutes *= sheet.ServiceMultiplierOf(req.ServiceType)

	crew := int(math.Ceil(minutes / CrewShiftMinutes))
	if crew < 1 {
		crew = 1
	}

	return models.DurationEstimate{
		TotalMinutes:        minutes,
		CrewSize:            crew,
		InternalHours:       math.Round(minutes/60*10) / 10,
		CustomerFacingHours: customerHours(minutes / float64(crew)),
	}
}

// customerHours coarsens per-worker minutes to the customer-facing grid: a
// remainder of 30 minutes or more rounds up to the next whole hour, a
// nonzero remainder under 30 shows as an extra half hour, and an exact
// whole hour is returned unchanged.
func customerHours(perWorkerMinutes float64) float64 {
	whole := math.Floor(perWorkerMinutes / 60)
	remainder := perWorkerMinutes - whole*60
	switch {
	case remainder >= 30:
		return whole + 1
	case remainder > 0:
		return whole + 0.5
	default:
		return whole
	}
}
