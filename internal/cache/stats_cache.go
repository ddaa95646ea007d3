package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyStats = "stats:"

// StatsCache caches analytics reports in Redis, one key per
// (user, reference day, window). Keying on the day keeps a report cached
// around reference midnight from presenting the previous day as today.
// Any write that can change a report invalidates all of the user's keys.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStatsCache returns a new StatsCache.
func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func statsKey(userID int64, day string, days int) string {
	return keyStats + strconv.FormatInt(userID, 10) + ":" + day + ":" + strconv.Itoa(days)
}

// Get returns the cached report or nil on miss.
func (c *StatsCache) Get(ctx context.Context, userID int64, day string, days int) (*dom.AnalyticsReport, error) {
	b, err := c.rdb.Get(ctx, statsKey(userID, day, days)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rep dom.AnalyticsReport
	if err := json.Unmarshal(b, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Set stores the report.
func (c *StatsCache) Set(ctx context.Context, userID int64, day string, days int, rep dom.AnalyticsReport) error {
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey(userID, day, days), b, c.ttl).Err()
}

// Invalidate removes all of the user's cached reports.
func (c *StatsCache) Invalidate(ctx context.Context, userID int64) error {
	pattern := keyStats + strconv.FormatInt(userID, 10) + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
