package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"mindwell/models"
	"mindwell/services/schedule"
	"mindwell/utils"

	"go.uber.org/zap"
)

// GetWeeklyAvailability fetches the specialist's raw persisted schedule
// and runs it through the normalization pipeline. The pipeline itself is
// pure and cache-free; memoization lives here, keyed on a structural
// hash of the raw value, so a profile whose schedule has not changed
// never recomputes.
func (s *DefaultSpecialistService) GetWeeklyAvailability(id string) (*models.WeeklyAvailability, error) {
	sp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load specialist for availability: %w", err)
	}

	raw := utils.ToPlainValue(sp.Availability)
	cacheKey := availabilityCacheKey(id, raw)

	if cached := s.cachedAvailability(cacheKey); cached != nil {
		return cached, nil
	}

	availability := &models.WeeklyAvailability{
		SpecialistID: id,
		Schedule:     schedule.Normalize(raw),
	}
	availability.Metrics = schedule.DeriveMetrics(availability.Schedule)

	s.storeAvailability(cacheKey, availability)
	return availability, nil
}

// UpdateAvailability persists a new raw schedule value on the profile and
// returns its normalized reading. Any shape is accepted; malformed input
// simply normalizes to an empty schedule, per the pipeline's degradation
// rules.
func (s *DefaultSpecialistService) UpdateAvailability(id string, rawSchedule any) (*models.WeeklyAvailability, error) {
	if err := s.Repo.UpdateAvailability(id, rawSchedule); err != nil {
		return nil, err
	}

	raw := utils.ToPlainValue(rawSchedule)
	availability := &models.WeeklyAvailability{
		SpecialistID: id,
		Schedule:     schedule.Normalize(raw),
	}
	availability.Metrics = schedule.DeriveMetrics(availability.Schedule)

	s.storeAvailability(availabilityCacheKey(id, raw), availability)
	return availability, nil
}

// availabilityCacheKey builds a key from the specialist ID and a
// structural hash of the raw schedule value. JSON encoding sorts object
// keys, so equal structures always hash alike; stale entries for replaced
// schedules age out by TTL.
func availabilityCacheKey(id string, raw any) string {
	encoded, err := json.Marshal(raw)
	if err != nil {
		encoded = []byte(fmt.Sprintf("%v", raw))
	}
	h := fnv.New64a()
	h.Write(encoded)
	return fmt.Sprintf("availability:%s:%x", id, h.Sum64())
}

func (s *DefaultSpecialistService) cachedAvailability(key string) *models.WeeklyAvailability {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	payload, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var availability models.WeeklyAvailability
	if err := json.Unmarshal(payload, &availability); err != nil {
		utils.GetLogger().Warn("discarding unreadable availability cache entry",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return &availability
}

func (s *DefaultSpecialistService) storeAvailability(key string, availability *models.WeeklyAvailability) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(availability)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if err := s.Cache.Set(ctx, key, payload, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability",
			zap.String("key", key), zap.Error(err))
	}
}
