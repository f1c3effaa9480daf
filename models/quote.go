package models

// LineItem is one priced component of a quote.
type LineItem struct {
	Label    string  `json:"label"`
	Kind     string  `json:"kind"` // "service", "room" or "addon"
	Quantity int     `json:"quantity"`
	Unit     float64 `json:"unit"`
	Amount   float64 `json:"amount"`
	// Unpriced marks a line whose kind the rate sheet did not list; the
	// amount shown is the documented fallback, not a real price.
	Unpriced bool `json:"unpriced,omitempty"`
}

// PriceBreakdown is the result of pricing a booking request against a
// rate-sheet snapshot.
type PriceBreakdown struct {
	LineItems []LineItem `json:"lineItems"`
	Subtotal  float64    `json:"subtotal"`
	Discount  float64    `json:"discount"`
	Total     float64    `json:"total"`
	// Unpriced is set when any line fell back to a default price, so the
	// caller can block checkout rather than silently underprice.
	Unpriced bool `json:"unpriced,omitempty"`
}

// DurationEstimate is the result of estimating labor for a booking request.
type DurationEstimate struct {
	// TotalMinutes is total labor across the whole crew.
	TotalMinutes float64 `json:"totalMinutes"`
	CrewSize     int     `json:"crewSize"`
	// InternalHours is the exact admin-facing duration, one decimal.
	InternalHours float64 `json:"internalHours"`
	// CustomerFacingHours is how long a single worker is on-site, rounded
	// to the half-hour grid the customer sees.
	CustomerFacingHours float64 `json:"customerFacingHours"`
}

// Quote pairs the price breakdown and duration estimate returned by the
// quote endpoint.
type Quote struct {
	Price            PriceBreakdown   `json:"price"`
	Duration         DurationEstimate `json:"duration"`
	RateSheetVersion int              `json:"rateSheetVersion"`
}

// Invoice records the outcome of the opaque charge call made at
// confirmation time.
type Invoice struct {
	InvoiceID string  `bson:"invoice_id" json:"invoiceId"`
	BookingID string  `bson:"booking_id" json:"bookingId"`
	PaymentID string  `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Amount    float64 `bson:"amount" json:"amount"`
	Currency  string  `bson:"currency" json:"currency"`
	Method    string  `bson:"method" json:"method"`
	Status    string  `bson:"status" json:"status"`
}
