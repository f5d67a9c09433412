package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

const settingsCacheKey = "commission_settings"

// SettingsReader is the source of truth the cache falls back to.
type SettingsReader interface {
	Get(ctx context.Context) (models.CommissionSettings, error)
}

// CachedSettingsRepository fronts the settings singleton with a short-lived
// Redis cache. Every operation still gets one consistent snapshot; the TTL
// only bounds how long an admin update takes to become visible.
type CachedSettingsRepository struct {
	inner SettingsReader
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedSettingsRepository(inner SettingsReader, rdb *redis.Client, ttl time.Duration) *CachedSettingsRepository {
	return &CachedSettingsRepository{inner: inner, rdb: rdb, ttl: ttl}
}

// Get returns the cached snapshot when fresh, otherwise reads through and
// repopulates. Cache failures degrade to the database, never to an error.
func (r *CachedSettingsRepository) Get(ctx context.Context) (models.CommissionSettings, error) {
	if r.rdb != nil {
		raw, err := r.rdb.Get(ctx, settingsCacheKey).Bytes()
		if err == nil {
			var s models.CommissionSettings
			if err := json.Unmarshal(raw, &s); err == nil {
				return s, nil
			}
			logger.Log.Warnw("corrupt settings cache entry, falling back to database", "error", err)
		}
	}

	s, err := r.inner.Get(ctx)
	if err != nil {
		return models.CommissionSettings{}, err
	}

	if r.rdb != nil {
		if raw, err := json.Marshal(s); err == nil {
			if err := r.rdb.Set(ctx, settingsCacheKey, raw, r.ttl).Err(); err != nil {
				logger.Log.Warnw("failed to cache settings", "error", err)
			}
		}
	}

	return s, nil
}

// Invalidate drops the cached snapshot after an admin update.
func (r *CachedSettingsRepository) Invalidate(ctx context.Context) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, settingsCacheKey).Err(); err != nil {
		logger.Log.Warnw("failed to invalidate settings cache", "error", err)
	}
}
