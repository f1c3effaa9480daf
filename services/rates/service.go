// Package rates serves versioned rate-sheet snapshots. Reads go through a
// short-lived Redis cache; writes insert a new version and drop the cache
// key, so a settings edit never races an in-flight price calculation.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	ratesheetRepo "sweepstack/database/repository/ratesheet"
	"sweepstack/models"
	"sweepstack/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const currentSheetKey = "ratesheet:current"

// DefaultRateSheetService implements RateSheetService over the Mongo store
// and a Redis snapshot cache.
type DefaultRateSheetService struct {
	Repo     ratesheetRepo.RateSheetRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

func (s *DefaultRateSheetService) Current(ctx context.Context) (*models.RateSheet, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, currentSheetKey).Result(); err == nil {
			var sheet models.RateSheet
			if err := json.Unmarshal([]byte(raw), &sheet); err == nil {
				return &sheet, nil
			}
		}
	}

	sheet, err := s.Repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		// Empty settings store: seed the built-in sheet so pricing always
		// has a snapshot to work from.
		seeded := models.DefaultRateSheet()
		if _, err := s.Repo.Publish(ctx, seeded); err != nil {
			return nil, fmt.Errorf("seed default rate sheet: %w", err)
		}
		sheet = seeded
	}

	s.cache(ctx, sheet)
	return sheet, nil
}

func (s *DefaultRateSheetService) Publish(ctx context.Context, sheet *models.RateSheet) (*models.RateSheet, error) {
	sanitize(sheet)
	if _, err := s.Repo.Publish(ctx, sheet); err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, currentSheetKey).Err(); err != nil {
			utils.GetLogger().Warn("failed to drop rate sheet cache", zap.Error(err))
		}
	}
	return sheet, nil
}

func (s *DefaultRateSheetService) cache(ctx context.Context, sheet *models.RateSheet) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(sheet)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, currentSheetKey, raw, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache rate sheet", zap.Error(err))
	}
}

// sanitize clamps negative prices and coefficients to zero at the write
// boundary; the sheet invariant is that all values are non-negative.
func sanitize(sheet *models.RateSheet) {
	for k, v := range sheet.ServicePrices {
		if v < 0 {
			sheet.ServicePrices[k] = 0
		}
	}
	for k, v := range sheet.RoomPrices {
		if v < 0 {
			sheet.RoomPrices[k] = 0
		}
	}
	for k, v := range sheet.AddonPrices {
		if v < 0 {
			sheet.AddonPrices[k] = 0
		}
	}
	for k, v := range sheet.DiscountRates {
		if v < 0 {
			sheet.DiscountRates[k] = 0
		}
	}
	if sheet.Duration.BaseMinutes < 0 {
		sheet.Duration.BaseMinutes = 0
	}
	for k, v := range sheet.Duration.RoomMinutes {
		if v < 0 {
			sheet.Duration.RoomMinutes[k] = 0
		}
	}
	for k, v := range sheet.Duration.AddonMinutes {
		if v < 0 {
			sheet.Duration.AddonMinutes[k] = 0
		}
	}
	for k, v := range sheet.Duration.ServiceMultipliers {
		if v <= 0 {
			sheet.Duration.ServiceMultipliers[k] = models.DefaultServiceMultiplier
		}
	}
}
