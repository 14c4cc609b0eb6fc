// Package ban records clients that trip the rate limiter and reports a
// periodic summary. Tracking lives in Redis so the log survives the
// in-memory visitor map; when no Redis service is configured the package is
// a no-op. Catalog and cart data are never written here.
package ban

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andrevrochas/techshop/internal/redissvc"
)

var (
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

type OffenseLogEntry struct {
	Target string    `json:"target"`
	Route  string    `json:"route"`
	Time   time.Time `json:"time"`
}

const DailyOffenseLogKey = "ratelimit:offenselog:daily"

// RecordOffense appends a rate-limit offense to the daily log.
func RecordOffense(target, route string) {
	if rdb == nil {
		return
	}
	entry := OffenseLogEntry{
		Target: target,
		Route:  route,
		Time:   time.Now(),
	}
	data, _ := json.Marshal(entry)
	if err := rdb.RPush(ctx, DailyOffenseLogKey, data).Err(); err != nil {
		slog.Warn("failed to record rate-limit offense", "error", err)
	}
}

// StartDailySummary logs an aggregate of the day's offenses once per
// interval and clears the log.
func StartDailySummary(interval time.Duration) {
	for {
		time.Sleep(interval)
		LogDailySummary()
	}
}

func LogDailySummary() {
	if rdb == nil {
		return
	}
	entries, err := rdb.LRange(ctx, DailyOffenseLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyOffenseLogKey).Err() // clear after reading

	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)
	total := 0

	for _, item := range entries {
		var entry OffenseLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			routeCounts[entry.Route]++
			targetCounts[entry.Target]++
			total++
		}
	}

	slog.Info("daily rate-limit summary",
		"total", total,
		"by_route", routeCounts,
		"by_client", targetCounts,
	)
}
