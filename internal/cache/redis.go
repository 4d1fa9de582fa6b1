package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/airlineops/config"
	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the report aggregates. Booking-path seat math is never
// cached: availability must be read fresh from the store on every attempt.
type RedisCache struct {
	client     *redis.Client
	reportsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, reportsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		reportsTTL: reportsTTL,
	}
}

func (c *RedisCache) GetPlaneRepairs(ctx context.Context) ([]domain.PlaneRepairCount, error) {
	data, err := c.client.Get(ctx, planeRepairsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var counts []domain.PlaneRepairCount
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *RedisCache) SetPlaneRepairs(ctx context.Context, counts []domain.PlaneRepairCount) error {
	payload, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, planeRepairsKey(), payload, c.reportsTTL).Err()
}

func (c *RedisCache) GetYearRepairs(ctx context.Context) ([]domain.YearRepairCount, error) {
	data, err := c.client.Get(ctx, yearRepairsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var counts []domain.YearRepairCount
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *RedisCache) SetYearRepairs(ctx context.Context, counts []domain.YearRepairCount) error {
	payload, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, yearRepairsKey(), payload, c.reportsTTL).Err()
}

func planeRepairsKey() string {
	return "cache:repairs:plane"
}

func yearRepairsKey() string {
	return "cache:repairs:year"
}
