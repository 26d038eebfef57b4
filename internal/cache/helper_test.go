package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAsidePopulatesOnMiss(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var got payload
	err := Aside(ctx, "test:key", &got, time.Minute, func() error {
		fetches++
		got = payload{Name: "volunteers", Count: 3}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.True(t, mr.Exists("test:key"))

	// Second call is served from the cache; fetch never runs.
	var again payload
	err = Aside(ctx, "test:key", &again, time.Minute, func() error {
		fetches++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, got, again)
}

func TestAsideFetchErrorNotCached(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	var got payload
	err := Aside(ctx, "test:key", &got, time.Minute, func() error {
		return assert.AnError
	})
	require.Error(t, err)
	assert.False(t, mr.Exists("test:key"))
}

func TestAsideWithoutClientFallsThrough(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var got payload
	err := Aside(context.Background(), "test:key", &got, time.Minute, func() error {
		fetches++
		got.Count = 7
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 7, got.Count)
}

func TestInvalidateEventDropsBothKeys(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, EventKey(5), payload{Name: "event"}, time.Minute))
	require.NoError(t, SetJSON(ctx, EventsAllKey, []payload{}, time.Minute))

	InvalidateEvent(ctx, 5)

	assert.False(t, mr.Exists(EventKey(5)))
	assert.False(t, mr.Exists(EventsAllKey))
}

func TestSetJSONRespectsTTL(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, StatesKey, []payload{{Name: "TX"}}, StatesTTL))
	require.True(t, mr.Exists(StatesKey))

	mr.FastForward(StatesTTL + time.Second)
	assert.False(t, mr.Exists(StatesKey))
}
