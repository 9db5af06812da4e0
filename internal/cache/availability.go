package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
)

const availabilityTTL = 5 * time.Minute

// AvailabilityCache memoizes the free-slot set per professional and day.
// Entries are short-lived and dropped on every write to that day, so a miss
// is always safe. Cache failures never fail the request.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func availabilityKey(professionalID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", professionalID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]domain.Slot, bool) {

	raw, err := c.client.Get(ctx, availabilityKey(professionalID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("availability cache get:", err)
		}
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		log.Println("availability cache decode:", err)
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	professionalID uint,
	date string,
	slots []domain.Slot,
) {

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(
		ctx,
		availabilityKey(professionalID, date),
		raw,
		availabilityTTL,
	).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	professionalID uint,
	date string,
) {
	if err := c.client.Del(ctx, availabilityKey(professionalID, date)).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
