// internal/services/cache_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hearthmade/storefront-backend/internal/config"
)

var cacheCtx = context.Background()

// CacheService is a thin read-through cache for catalog result pages. When
// no Redis address is configured the service stays disabled and every call
// is a no-op, so the catalog degrades to direct queries.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(cfg *config.Config) *CacheService {
	if cfg.Redis.Addr == "" {
		return &CacheService{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &CacheService{
		client: client,
		ttl:    time.Duration(cfg.Redis.CatalogTTL) * time.Second,
	}
}

func (cs *CacheService) Enabled() bool {
	return cs.client != nil
}

func (cs *CacheService) Close() error {
	if cs.client != nil {
		return cs.client.Close()
	}
	return nil
}

// GetJSON loads key into dest, reporting whether a value was found. Cache
// failures are logged and reported as misses; the caller falls through to
// the store.
func (cs *CacheService) GetJSON(key string, dest interface{}) bool {
	if cs.client == nil {
		return false
	}

	val, err := cs.client.Get(cacheCtx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache payload unmarshal failed")
		return false
	}

	return true
}

func (cs *CacheService) SetJSON(key string, value interface{}) {
	if cs.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache payload marshal failed")
		return
	}

	if err := cs.client.Set(cacheCtx, key, data, cs.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// InvalidatePrefix removes all keys matching prefix using SCAN. Called on
// every admin product write so stale catalog pages never outlive an edit.
func (cs *CacheService) InvalidatePrefix(prefix string) error {
	if cs.client == nil {
		return nil
	}

	pattern := prefix + "*"
	var cursor uint64

	for {
		keys, nextCursor, err := cs.client.Scan(cacheCtx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := cs.client.Del(cacheCtx, keys...).Err(); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

func (cs *CacheService) Ping() error {
	if cs.client == nil {
		return nil
	}
	return cs.client.Ping(cacheCtx).Err()
}
