package database

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/providers"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
)

// CachedScheduleTypeAdapter wraps the appointment-type lookup with caching.
// The table is a closed lookup, read-only from this service, so a generous
// TTL is safe.
type CachedScheduleTypeAdapter struct {
	adapter repositories.ScheduleTypeRepository
	cache   providers.CacheProvider
}

// NewCachedScheduleTypeAdapter creates a new cached appointment-type adapter
func NewCachedScheduleTypeAdapter(adapter repositories.ScheduleTypeRepository, cache providers.CacheProvider) repositories.ScheduleTypeRepository {
	return &CachedScheduleTypeAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

const (
	scheduleTypesCacheKey = "schedule:types"
	scheduleTypesTTL      = 3600
)

// ListTypes returns the lookup table, serving from cache when possible
func (a *CachedScheduleTypeAdapter) ListTypes(ctx context.Context) ([]*entities.ScheduleType, error) {
	if cached, err := a.cache.Get(ctx, scheduleTypesCacheKey); err == nil {
		var types []*entities.ScheduleType
		if err := json.Unmarshal(cached, &types); err == nil {
			return types, nil
		} else {
			log.Warn().Err(err).Msg("failed to unmarshal cached schedule types")
		}
	}

	types, err := a.adapter.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(types); err == nil {
		if err := a.cache.Set(ctx, scheduleTypesCacheKey, data, scheduleTypesTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache schedule types")
		}
	}

	return types, nil
}
