package services

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisService is an optional cache layer. When redis is unreachable the
// service stays registered but disabled; callers get cache misses.
type RedisService struct {
	appContext.DefaultService
	redis *redis.Client
}

const REDIS_SVC = "redis_svc"

func (svc RedisService) Id() string {
	return REDIS_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	svc.initRedisClient()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) Start() error {
	if svc.redis == nil {
		return nil
	}

	ctx := context.Background()
	if _, err := svc.redis.Ping(ctx).Result(); err != nil {
		log.WithError(err).Warn("Redis unreachable, caching disabled")
		svc.redis = nil
	}
	return nil
}

func (svc *RedisService) Shutdown() {
	if svc.redis != nil {
		_ = svc.redis.Close()
	}
}

func (svc *RedisService) initRedisClient() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
}

// GetJSON loads key into dest. Returns false on miss, disabled cache, or a
// decode failure.
func (svc *RedisService) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if svc.redis == nil {
		return false
	}

	data, err := svc.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.WithError(err).WithField("key", key).Warn("Failed to decode cached value")
		return false
	}
	return true
}

func (svc *RedisService) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if svc.redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("Failed to encode cache value")
		return
	}

	if err := svc.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		log.WithError(err).WithField("key", key).Warn("Failed to write cache value")
	}
}
