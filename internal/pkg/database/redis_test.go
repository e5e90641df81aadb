package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	err := client.Set(ctx, "key", "value", 0)
	require.NoError(t, err)

	got, err := client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, client.Delete(ctx, "key"))

	_, err = client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_HashOperations(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	fields := map[string]interface{}{
		"lat": "36.1147",
		"lng": "-115.1728",
		"ts":  "1700000000",
	}
	require.NoError(t, client.HMSet(ctx, "position:sample:c1", fields))

	values, err := client.HMGet(ctx, "position:sample:c1", "lat", "lng", "missing")
	require.NoError(t, err)
	assert.Equal(t, "36.1147", values[0])
	assert.Equal(t, "-115.1728", values[1])
	assert.Equal(t, "", values[2])

	all, err := client.HGetAll(ctx, "position:sample:c1")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, client.HDel(ctx, "position:sample:c1", "ts"))
	all, err = client.HGetAll(ctx, "position:sample:c1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRedisClient_Expire(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", 0))
	require.NoError(t, client.Expire(ctx, "key", 30*time.Second))

	mr.FastForward(31 * time.Second)

	_, err := client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Geo(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	err := client.GeoAdd(ctx, "courier:geo", -115.1728, 36.1147, "courier-1")
	require.NoError(t, err)

	results, err := client.GeoRadius(ctx, "courier:geo", -115.1728, 36.1147, 1, "km")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "courier-1", results[0].Name)
}
