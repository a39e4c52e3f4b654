package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"jobportal_front/internal/logger"
)

const DefaultTTL = 600 * time.Second

type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis - общий для всех сессий кеш. Если Redis недоступен, кеш
// работает как пустой: чтения промахиваются, записи игнорируются.
type Redis struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(opts Options) *Redis {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		logger.Info("Redis address is not configured, cache disabled")
		return &Redis{ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, bypassing cache", "addr", addr, "error", err)
		_ = client.Close()
		return &Redis{ttl: ttl}
	}

	logger.Info("Redis connected", "addr", addr)
	return &Redis{client: client, ttl: ttl}
}

// NewWithClient - для тестов и для уже созданного клиента
func NewWithClient(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		logger.Warn("Redis unavailable, bypassing cache", "error", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON возвращает false без ошибки при промахе
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON: ttl <= 0 означает TTL по умолчанию
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
