package pricing

import (
	"reflect"
	"testing"

	"sweepstack/models"
)

func testSheet() *models.RateSheet {
	return &models.RateSheet{
		Version: 7,
		ServicePrices: map[models.ServiceType]float64{
			models.ServiceDeepClean:     159,
			models.ServiceStandardClean: 99,
		},
		RoomPrices: map[models.RoomKind]float64{
			models.RoomBedroom:  15,
			models.RoomBathroom: 15,
			models.RoomKitchen:  20,
		},
		AddonPrices: map[models.AddonKind]float64{
			models.AddonInsideOven:    30,
			models.AddonLaundryBasket: 15,
		},
		DiscountRates: map[models.Frequency]float64{
			models.FrequencyWeekly:   0.15,
			models.FrequencyBiWeekly: 0.10,
			models.FrequencyMonthly:  0.05,
		},
	}
}

func deepCleanRequest(freq models.Frequency) models.BookingRequest {
	return models.BookingRequest{
		ServiceType: models.ServiceDeepClean,
		Rooms: []models.RoomSelection{
			{Kind: models.RoomBedroom, Quantity: 2},
			{Kind: models.RoomBathroom, Quantity: 1},
		},
		Frequency: freq,
		Date:      "2026-09-15",
		StartTime: "10:00",
	}
}

func TestComputePriceWorkedExample(t *testing.T) {
	// Deep Cleaning 159 + 2 bedrooms at 15 + 1 bathroom at 15, monthly 5%.
	got := ComputePrice(deepCleanRequest(models.FrequencyMonthly), testSheet())

	if got.Subtotal != 204 {
		t.Errorf("subtotal = %v, want 204", got.Subtotal)
	}
	if got.Discount != 10.20 {
		t.Errorf("discount = %v, want 10.20", got.Discount)
	}
	if got.Total != 193.80 {
		t.Errorf("total = %v, want 193.80", got.Total)
	}
	if got.Unpriced {
		t.Error("fully priced request flagged as unpriced")
	}
	if len(got.LineItems) != 3 {
		t.Errorf("line items = %d, want 3", len(got.LineItems))
	}
}

func TestComputePriceDeterminism(t *testing.T) {
	req := deepCleanRequest(models.FrequencyWeekly)
	sheet := testSheet()

	first := ComputePrice(req, sheet)
	for i := 0; i < 5; i++ {
		if got := ComputePrice(req, sheet); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestComputePriceDiscountMonotonicity(t *testing.T) {
	sheet := testSheet()
	weekly := ComputePrice(deepCleanRequest(models.FrequencyWeekly), sheet).Total
	biweekly := ComputePrice(deepCleanRequest(models.FrequencyBiWeekly), sheet).Total
	monthly := ComputePrice(deepCleanRequest(models.FrequencyMonthly), sheet).Total
	oneTime := ComputePrice(deepCleanRequest(models.FrequencyOneTime), sheet).Total

	if !(weekly <= biweekly && biweekly <= monthly && monthly <= oneTime) {
		t.Errorf("totals not monotone in discount: weekly=%v biweekly=%v monthly=%v oneTime=%v",
			weekly, biweekly, monthly, oneTime)
	}
}

func TestComputePriceUnknownKinds(t *testing.T) {
	tests := []struct {
		name      string
		req       models.BookingRequest
		wantTotal float64
	}{
		{
			name: "unknown service prices at zero and flags",
			req: models.BookingRequest{
				ServiceType: "Chimney Sweeping",
				Rooms:       []models.RoomSelection{{Kind: models.RoomBedroom, Quantity: 1}},
				Frequency:   models.FrequencyOneTime,
			},
			wantTotal: 15,
		},
		{
			name: "unlisted room kind falls back to default unit price",
			req: models.BookingRequest{
				ServiceType: models.ServiceStandardClean,
				Rooms:       []models.RoomSelection{{Kind: "sunroom", Quantity: 2}},
				Frequency:   models.FrequencyOneTime,
			},
			wantTotal: 99 + 2*models.DefaultRoomPrice,
		},
		{
			name: "unknown addon contributes zero and flags",
			req: models.BookingRequest{
				ServiceType: models.ServiceStandardClean,
				Rooms:       []models.RoomSelection{{Kind: models.RoomBedroom, Quantity: 1}},
				Addons:      []models.AddonSelection{{Kind: "chandelier", Quantity: 3}},
				Frequency:   models.FrequencyOneTime,
			},
			wantTotal: 114,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePrice(tt.req, testSheet())
			if !got.Unpriced {
				t.Error("breakdown not flagged unpriced")
			}
			if got.Total != tt.wantTotal {
				t.Errorf("total = %v, want %v", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestComputePriceNonNegative(t *testing.T) {
	reqs := []models.BookingRequest{
		{ServiceType: "nope", Frequency: models.FrequencyWeekly},
		{ServiceType: models.ServiceDeepClean, Frequency: "mystery"},
		deepCleanRequest(models.FrequencyWeekly),
	}
	for _, req := range reqs {
		got := ComputePrice(req, testSheet())
		if got.Total < 0 || got.Subtotal < 0 || got.Discount < 0 {
			t.Errorf("negative amount in %+v", got)
		}
	}
}

func TestComputePriceAddonsFlattenIntoSubtotal(t *testing.T) {
	req := deepCleanRequest(models.FrequencyOneTime)
	req.Addons = []models.AddonSelection{
		{Kind: models.AddonInsideOven, Quantity: 1},
		{Kind: models.AddonLaundryBasket, Quantity: 2},
	}
	got := ComputePrice(req, testSheet())
	// 204 base+rooms, plus 30 oven plus 2x15 laundry, all in one sum.
	if got.Subtotal != 264 {
		t.Errorf("subtotal = %v, want 264", got.Subtotal)
	}
	if got.Total != 264 {
		t.Errorf("one-time total = %v, want 264", got.Total)
	}
}
