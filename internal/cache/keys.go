package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	EventKeyPrefix = "event:%d"
	EventsAllKey   = "events:all"
	StatesKey      = "states:all"
)

const (
	EventTTL     = 10 * time.Minute
	EventListTTL = 1 * time.Minute
	// States are static reference data; the long TTL only bounds staleness
	// after a reseed.
	StatesTTL = 24 * time.Hour
)

func EventKey(eventID uint) string {
	return fmt.Sprintf(EventKeyPrefix, eventID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateEvent drops both the single-event entry and the event list.
func InvalidateEvent(ctx context.Context, eventID uint) {
	Invalidate(ctx, EventKey(eventID))
	Invalidate(ctx, EventsAllKey)
}

func InvalidateStates(ctx context.Context) {
	Invalidate(ctx, StatesKey)
}
