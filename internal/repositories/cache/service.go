package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lpaflow/internal/services/fees"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Fee-quote caching. Quotes are cheap to recompute but backed by three table
// scans; a short TTL keeps the wizard's summary page snappy without letting
// stale figures survive a tier change for long.
func (s *CacheService) GetQuote(ctx context.Context, applicationID string) (*fees.Quote, error) {
	key := s.GenerateKey("fees", "quote", applicationID)
	var quote fees.Quote
	found, err := s.Get(ctx, key, &quote)
	if err != nil || !found {
		return nil, err
	}
	return &quote, nil
}

func (s *CacheService) SetQuote(ctx context.Context, applicationID string, quote *fees.Quote) error {
	key := s.GenerateKey("fees", "quote", applicationID)
	return s.SetWithTTL(ctx, key, quote, time.Minute)
}

func (s *CacheService) InvalidateQuote(ctx context.Context, applicationID string) error {
	return s.Delete(ctx, s.GenerateKey("fees", "quote", applicationID))
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
