package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/benjaminhze/cribhunter/internal/config"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

const profileKeyPrefix = "profile:"

// RedisService caches user profiles for identity resolution. With a nil
// client it is disabled: every read misses and every write is a no-op.
type RedisService struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewRedisService connects using REDIS_URL when set, otherwise host/port.
// An unreachable server disables the cache instead of failing startup.
func NewRedisService(cfg config.RedisConfig, logger *logging.Logger) *RedisService {
	logger = logger.With("component", "redis")
	if !cfg.Enabled() {
		logger.Info("redis not configured, profile cache disabled")
		return NewDisabledRedisService()
	}

	var opt *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			logger.Warn("invalid REDIS_URL, profile cache disabled", "error", err)
			return NewDisabledRedisService()
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis connection failed, profile cache disabled", "addr", opt.Addr, "error", err)
		_ = client.Close()
		return NewDisabledRedisService()
	}

	logger.Info("connected to redis", "addr", opt.Addr)
	return NewRedisServiceWithClient(client, cfg.ProfileTTL, logger)
}

func NewRedisServiceWithClient(client *redis.Client, ttl time.Duration, logger *logging.Logger) *RedisService {
	if ttl <= 0 {
		ttl = config.DefaultProfileTTL
	}
	return &RedisService{client: client, ttl: ttl, logger: logger}
}

func NewDisabledRedisService() *RedisService {
	return &RedisService{}
}

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

// GetProfile returns (nil, nil) on a cache miss.
func (r *RedisService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	if r.client == nil {
		return nil, nil
	}
	data, err := r.client.Get(ctx, profileKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetProfile stores the user without its password hash.
func (r *RedisService) SetProfile(ctx context.Context, user *entities.User) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKeyPrefix+user.Id.String(), data, r.ttl).Err()
}

func (r *RedisService) InvalidateProfile(ctx context.Context, userID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, profileKeyPrefix+userID).Err()
}

func (r *RedisService) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
