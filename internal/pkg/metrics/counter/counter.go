package counter

import (
	"context"
	"strconv"
	"time"

	"github.com/MarcSteiner/BaseForge/internal/pkg/cache"
)

const (
	upgradesStartedKey   = "upgrade:counters:started"
	upgradesCompletedKey = "upgrade:counters:completed"
)

// AddUpgradeStarted increments the per-day admission counter in Redis
func AddUpgradeStarted() error {
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, upgradesStartedKey, dayField(), 1).Err()
}

// AddUpgradeCompleted increments the per-day completion counter in Redis
func AddUpgradeCompleted() error {
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, upgradesCompletedKey, dayField(), 1).Err()
}

// Totals sums both counters across all recorded days.
func Totals() (started int64, completed int64, err error) {
	started, err = sumHash(upgradesStartedKey)
	if err != nil {
		return 0, 0, err
	}
	completed, err = sumHash(upgradesCompletedKey)
	if err != nil {
		return 0, 0, err
	}
	return started, completed, nil
}

func sumHash(key string) (int64, error) {
	ctx := context.Background()
	fields, err := cache.GetClient().HGetAll(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		total += n
	}
	return total, nil
}

func dayField() string {
	return time.Now().UTC().Format("2006-01-02")
}
