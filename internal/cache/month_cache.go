// Package cache keeps computed month views in redis.
//
// Entries are keyed by a per-user version counter. Invalidate bumps the
// counter, so every month cached for that user becomes unreachable at once
// and expires on its own TTL. When the bump fails the user's months are
// deleted instead.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/limbo/moodcalendar/pkg/cleanup"
	"github.com/limbo/moodcalendar/pkg/entity"
)

const keyPrefix = "moodcal"

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

type MonthCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMonthCache(cfg RedisCfg, ttl time.Duration) *MonthCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis for monthCache: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return NewMonthCacheWithClient(client, ttl)
}

func NewMonthCacheWithClient(client *redis.Client, ttl time.Duration) *MonthCache {
	return &MonthCache{
		client: client,
		ttl:    ttl,
	}
}

func versionKey(uid uuid.UUID) string {
	return fmt.Sprintf("%s:user:%s:version", keyPrefix, uid.String())
}

func monthKey(uid uuid.UUID, version int64, year, month int) string {
	return fmt.Sprintf("%s:user:%s:v%d:month:%04d-%02d", keyPrefix, uid.String(), version, year, month)
}

// monthsPattern matches every month of the user under any version, not the version key.
func monthsPattern(uid uuid.UUID) string {
	return fmt.Sprintf("%s:user:%s:v*:month:*", keyPrefix, uid.String())
}

// Version returns the user's current cache generation. A missing counter is 0.
func (c *MonthCache) Version(ctx context.Context, uid uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(uid)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("getting cache version: %w", err)
	}
	return v, nil
}

// Get returns the month cached under version. The bool is false on a miss.
func (c *MonthCache) Get(ctx context.Context, uid uuid.UUID, version int64, year, month int) (*entity.MonthData, bool, error) {
	raw, err := c.client.Get(ctx, monthKey(uid, version, year, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting cached month: %w", err)
	}
	var data entity.MonthData
	if err = sonic.Unmarshal(raw, &data); err != nil {
		return nil, false, fmt.Errorf("unmarshalling cached month: %w", err)
	}
	return &data, true, nil
}

// Set stores data under the version it was computed for. Data computed
// before a concurrent Invalidate lands under a stale version and is never read.
func (c *MonthCache) Set(ctx context.Context, uid uuid.UUID, version int64, data *entity.MonthData) error {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshalling month: %w", err)
	}
	if err = c.client.Set(ctx, monthKey(uid, version, data.Year, data.Month), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("storing month: %w", err)
	}
	return nil
}

// Invalidate bumps the user's version. If the bump fails, it purges the
// user's months so a recovered redis never serves pre-mutation views.
func (c *MonthCache) Invalidate(ctx context.Context, uid uuid.UUID) error {
	err := c.client.Incr(ctx, versionKey(uid)).Err()
	if err == nil {
		return nil
	}
	slog.WarnContext(ctx, "cache version bump failed, purging months", slog.String("uid", uid.String()), slog.String("error", err.Error()))
	if purgeErr := c.purge(ctx, uid); purgeErr != nil {
		return fmt.Errorf("bumping cache version: %w; purging months: %w", err, purgeErr)
	}
	return nil
}

func (c *MonthCache) purge(ctx context.Context, uid uuid.UUID) error {
	keys := make([]string, 0)
	iter := c.client.Scan(ctx, 0, monthsPattern(uid), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
