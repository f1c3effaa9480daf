package models

import "time"

// ServiceType identifies a cleaning service offering.
type ServiceType string

const (
	ServiceStandardClean    ServiceType = "Standard Cleaning"
	ServiceDeepClean        ServiceType = "Deep Cleaning"
	ServiceMoveInOutClean   ServiceType = "Move In/Out Cleaning"
	ServicePostConstruction ServiceType = "Post Construction Cleaning"
	ServiceAirbnbTurnaround ServiceType = "Airbnb Turnaround"
	ServiceOfficeClean      ServiceType = "Office Cleaning"
)

// RoomKind identifies a billable room category.
type RoomKind string

const (
	RoomBedroom    RoomKind = "bedroom"
	RoomBathroom   RoomKind = "bathroom"
	RoomToilet     RoomKind = "toilet"
	RoomKitchen    RoomKind = "kitchen"
	RoomLivingRoom RoomKind = "living-room"
	RoomOffice     RoomKind = "office"
	RoomBasement   RoomKind = "basement"
)

// AddonKind identifies an optional extra, including kitchen add-ons and
// laundry; all add-on categories price into the same subtotal.
type AddonKind string

const (
	AddonInsideFridge   AddonKind = "inside-fridge"
	AddonInsideOven     AddonKind = "inside-oven"
	AddonInsideCabinet  AddonKind = "inside-cabinets"
	AddonInteriorWindow AddonKind = "interior-windows"
	AddonLaundryBasket  AddonKind = "laundry-basket"
	AddonIroning        AddonKind = "ironing"
	AddonWallWash       AddonKind = "wall-washing"
)

// Frequency is the recurrence cadence driving the discount rate.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one-time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Documented fallback values for kinds a rate sheet does not list. Every
// caller goes through the accessors below so the fallback behavior is
// identical everywhere.
const (
	DefaultServicePrice      = 0.0
	DefaultRoomPrice         = 10.0
	DefaultAddonPrice        = 0.0
	DefaultDiscountRate      = 0.0
	DefaultServiceMultiplier = 1.0
)

// DurationCoefficients hold the labor-minute inputs for duration estimation.
type DurationCoefficients struct {
	BaseMinutes        float64                 `bson:"base_minutes" json:"baseMinutes"`
	RoomMinutes        map[RoomKind]float64    `bson:"room_minutes" json:"roomMinutes"`
	AddonMinutes       map[AddonKind]float64   `bson:"addon_minutes" json:"addonMinutes"`
	ServiceMultipliers map[ServiceType]float64 `bson:"service_multipliers" json:"serviceMultipliers"`
}

// RateSheet is a versioned, immutable pricing configuration snapshot. It is
// owned by the settings collaborator; pricing and duration calls receive a
// whole snapshot and never mutate it. Updates insert a new version document
// rather than editing the current one in place, so an in-flight calculation
// never observes a half-updated sheet.
type RateSheet struct {
	Version       int                     `bson:"version" json:"version"`
	ServicePrices map[ServiceType]float64 `bson:"service_prices" json:"servicePrices"`
	RoomPrices    map[RoomKind]float64    `bson:"room_prices" json:"roomPrices"`
	AddonPrices   map[AddonKind]float64   `bson:"addon_prices" json:"addonPrices"`
	DiscountRates map[Frequency]float64   `bson:"discount_rates" json:"discountRates"`
	Duration      DurationCoefficients    `bson:"duration" json:"duration"`
	CreatedAt     time.Time               `bson:"created_at" json:"createdAt"`
}

// ServicePriceOf returns the base price for a service type. The second
// return reports whether the sheet actually listed the kind; an unlisted
// service falls back to DefaultServicePrice (0) so callers can flag the
// quote instead of failing.
func (rs *RateSheet) ServicePriceOf(st ServiceType) (float64, bool) {
	if p, ok := rs.ServicePrices[st]; ok && p >= 0 {
		return p, true
	}
	return DefaultServicePrice, false
}

// RoomPriceOf returns the per-unit price for a room kind, falling back to
// DefaultRoomPrice for unlisted kinds.
func (rs *RateSheet) RoomPriceOf(rk RoomKind) (float64, bool) {
	if p, ok := rs.RoomPrices[rk]; ok && p >= 0 {
		return p, true
	}
	return DefaultRoomPrice, false
}

// AddonPriceOf returns the per-unit price for an add-on kind, falling back
// to DefaultAddonPrice for unlisted kinds.
func (rs *RateSheet) AddonPriceOf(ak AddonKind) (float64, bool) {
	if p, ok := rs.AddonPrices[ak]; ok && p >= 0 {
		return p, true
	}
	return DefaultAddonPrice, false
}

// DiscountRateOf returns the discount fraction for a frequency. One-time
// bookings and unlisted frequencies carry no discount.
func (rs *RateSheet) DiscountRateOf(f Frequency) float64 {
	if f == FrequencyOneTime {
		return DefaultDiscountRate
	}
	if r, ok := rs.DiscountRates[f]; ok && r >= 0 {
		return r
	}
	return DefaultDiscountRate
}

// RoomMinutesOf returns the labor minutes per unit of a room kind.
func (rs *RateSheet) RoomMinutesOf(rk RoomKind) float64 {
	if m, ok := rs.Duration.RoomMinutes[rk]; ok && m >= 0 {
		return m
	}
	return 0
}

// AddonMinutesOf returns the labor minutes per unit of an add-on kind.
func (rs *RateSheet) AddonMinutesOf(ak AddonKind) float64 {
	if m, ok := rs.Duration.AddonMinutes[ak]; ok && m >= 0 {
		return m
	}
	return 0
}

// ServiceMultiplierOf returns the duration multiplier for a service type
// (e.g. deep clean 1.5, move in/out 2.0, post construction 2.5). Unlisted
// types run at 1.0.
func (rs *RateSheet) ServiceMultiplierOf(st ServiceType) float64 {
	if m, ok := rs.Duration.ServiceMultipliers[st]; ok && m > 0 {
		return m
	}
	return DefaultServiceMultiplier
}

// DefaultRateSheet returns the built-in version-1 sheet used to seed an
// empty settings store.
func DefaultRateSheet() *RateSheet {
	return &RateSheet{
		Version: 1,
		ServicePrices: map[ServiceType]float64{
			ServiceStandardClean:    99,
			ServiceDeepClean:        159,
			ServiceMoveInOutClean:   189,
			ServicePostConstruction: 249,
			ServiceAirbnbTurnaround: 119,
			ServiceOfficeClean:      139,
		},
		RoomPrices: map[RoomKind]float64{
			RoomBedroom:    15,
			RoomBathroom:   15,
			RoomToilet:     10,
			RoomKitchen:    20,
			RoomLivingRoom: 15,
			RoomOffice:     12,
			RoomBasement:   18,
		},
		AddonPrices: map[AddonKind]float64{
			AddonInsideFridge:   25,
			AddonInsideOven:     30,
			AddonInsideCabinet:  20,
			AddonInteriorWindow: 5,
			AddonLaundryBasket:  15,
			AddonIroning:        20,
			AddonWallWash:       35,
		},
		DiscountRates: map[Frequency]float64{
			FrequencyWeekly:   0.15,
			FrequencyBiWeekly: 0.10,
			FrequencyMonthly:  0.05,
		},
		Duration: DurationCoefficients{
			BaseMinutes: 60,
			RoomMinutes: map[RoomKind]float64{
				RoomBedroom:    30,
				RoomBathroom:   45,
				RoomToilet:     20,
				RoomKitchen:    60,
				RoomLivingRoom: 30,
				RoomOffice:     25,
				RoomBasement:   40,
			},
			AddonMinutes: map[AddonKind]float64{
				AddonInsideFridge:   30,
				AddonInsideOven:     45,
				AddonInsideCabinet:  30,
				AddonInteriorWindow: 10,
				AddonLaundryBasket:  40,
				AddonIroning:        30,
				AddonWallWash:       60,
			},
			ServiceMultipliers: map[ServiceType]float64{
				ServiceStandardClean:    1.0,
				ServiceDeepClean:        1.5,
				ServiceMoveInOutClean:   2.0,
				ServicePostConstruction: 2.5,
				ServiceAirbnbTurnaround: 1.0,
				ServiceOfficeClean:      1.0,
			},
		},
	}
}
