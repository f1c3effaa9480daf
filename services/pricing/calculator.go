// Package pricing holds the pure pricing and duration calculators. Both
// take a booking request plus a rate-sheet snapshot and return a value;
// neither touches storage or shared state, so identical inputs always
// produce identical output.
package pricing

import (
	"fmt"
	"math"

	"sweepstack/models"
)

// round2 rounds to currency precision, two decimals half-up. Amounts are
// never negative here, so half away from zero and half-up coincide.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputePrice prices a booking request against a rate-sheet snapshot.
// Unknown service, room, or add-on kinds contribute their documented
// fallback price and mark the line (and the breakdown) as unpriced rather
// than failing; whether an unpriced quote may proceed to checkout is the
// caller's policy decision.
func ComputePrice(req models.BookingRequest, sheet *models.RateSheet) models.PriceBreakdown {
	var out models.PriceBreakdown

	base, priced := sheet.ServicePriceOf(req.ServiceType)
	out.LineItems = append(out.LineItems, models.LineItem{
		Label:    string(req.ServiceType),
		Kind:     "service",
		Quantity: 1,
		Unit:     base,
		Amount:   base,
		Unpriced: !priced,
	})
	subtotal := base
	out.Unpriced = !priced

	for _, room := range req.Rooms {
		if room.Quantity <= 0 {
			continue
		}
		unit, priced := sheet.RoomPriceOf(room.Kind)
		amount := float64(room.Quantity) * unit
		out.LineItems = append(out.LineItems, models.LineItem{
			Label:    fmt.Sprintf("%s x%d", room.Kind, room.Quantity),
			Kind:     "room",
			Quantity: room.Quantity,
			Unit:     unit,
			Amount:   amount,
			Unpriced: !priced,
		})
		subtotal += amount
		if !priced {
			out.Unpriced = true
		}
	}

	for _, addon := range req.Addons {
		if addon.Quantity <= 0 {
			continue
		}
		unit, priced := sheet.AddonPriceOf(addon.Kind)
		amount := float64(addon.Quantity) * unit
		out.LineItems = append(out.LineItems, models.LineItem{
			Label:    fmt.Sprintf("%s x%d", addon.Kind, addon.Quantity),
			Kind:     "addon",
			Quantity: addon.Quantity,
			Unit:     unit,
			Amount:   amount,
			Unpriced: !priced,
		})
		subtotal += amount
		if !priced {
			out.Unpriced = true
		}
	}

	out.Subtotal = round2(subtotal)
	out.Discount = round2(subtotal * sheet.DiscountRateOf(req.Frequency))
	out.Total = round2(subtotal - out.Discount)
	return out
}
