package models

import "testing"

func TestRateSheetFallbacks(t *testing.T) {
	sheet := &RateSheet{
		ServicePrices: map[ServiceType]float64{ServiceDeepClean: 159},
		RoomPrices:    map[RoomKind]float64{RoomBedroom: 15},
		AddonPrices:   map[AddonKind]float64{AddonInsideOven: 30},
		DiscountRates: map[Frequency]float64{FrequencyWeekly: 0.15},
	}

	t.Run("listed kinds report priced", func(t *testing.T) {
		if p, ok := sheet.ServicePriceOf(ServiceDeepClean); !ok || p != 159 {
			t.Errorf("ServicePriceOf = %v, %v", p, ok)
		}
		if p, ok := sheet.RoomPriceOf(RoomBedroom); !ok || p != 15 {
			t.Errorf("RoomPriceOf = %v, %v", p, ok)
		}
		if p, ok := sheet.AddonPriceOf(AddonInsideOven); !ok || p != 30 {
			t.Errorf("AddonPriceOf = %v, %v", p, ok)
		}
	})

	t.Run("unlisted kinds fall back without erroring", func(t *testing.T) {
		if p, ok := sheet.ServicePriceOf("Chimney Sweeping"); ok || p != DefaultServicePrice {
			t.Errorf("unlisted service = %v, %v; want %v, false", p, ok, DefaultServicePrice)
		}
		if p, ok := sheet.RoomPriceOf("sunroom"); ok || p != DefaultRoomPrice {
			t.Errorf("unlisted room = %v, %v; want %v, false", p, ok, DefaultRoomPrice)
		}
		if p, ok := sheet.AddonPriceOf("chandelier"); ok || p != DefaultAddonPrice {
			t.Errorf("unlisted addon = %v, %v; want %v, false", p, ok, DefaultAddonPrice)
		}
	})

	t.Run("one-time never discounts", func(t *testing.T) {
		// Even if a sheet mistakenly lists a one-time discount.
		withOneTime := &RateSheet{DiscountRates: map[Frequency]float64{FrequencyOneTime: 0.5}}
		if r := withOneTime.DiscountRateOf(FrequencyOneTime); r != 0 {
			t.Errorf("one-time discount = %v, want 0", r)
		}
	})

	t.Run("unlisted multiplier is neutral", func(t *testing.T) {
		if m := sheet.ServiceMultiplierOf("Chimney Sweeping"); m != DefaultServiceMultiplier {
			t.Errorf("multiplier = %v, want %v", m, DefaultServiceMultiplier)
		}
	})
}

func TestDefaultRateSheetNonNegative(t *testing.T) {
	sheet := DefaultRateSheet()
	for k, v := range sheet.ServicePrices {
		if v < 0 {
			t.Errorf("service %s priced %v", k, v)
		}
	}
	for k, v := range sheet.RoomPrices {
		if v < 0 {
			t.Errorf("room %s priced %v", k, v)
		}
	}
	for k, v := range sheet.AddonPrices {
		if v < 0 {
			t.Errorf("addon %s priced %v", k, v)
		}
	}
	for k, v := range sheet.DiscountRates {
		if v < 0 || v > 1 {
			t.Errorf("discount %s = %v", k, v)
		}
	}
	if sheet.Duration.BaseMinutes < 0 {
		t.Errorf("base minutes %v", sheet.Duration.BaseMinutes)
	}
}
