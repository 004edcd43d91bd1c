package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisClient(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedisClient_GetSet(t *testing.T) {
	_, client := newTestRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), 0))

	val, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}

func TestRedisClient_GetMiss(t *testing.T) {
	_, client := newTestRedisClient(t)

	val, err := client.Get(context.Background(), "never-set")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisClient_SetTTL(t *testing.T) {
	mr, client := newTestRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), 5))
	assert.Equal(t, 5*time.Second, mr.TTL("k"))

	require.NoError(t, client.Set(ctx, "forever", []byte("v"), 0))
	assert.Zero(t, mr.TTL("forever"))
}

func TestRedisClient_Del(t *testing.T) {
	_, client := newTestRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, client.Set(ctx, "b", []byte("2"), 0))

	n, err := client.Del(ctx, "a", "b", "never-set")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRedisClient_MGetAlignment(t *testing.T) {
	_, client := newTestRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, client.Set(ctx, "c", []byte("3"), 0))

	vals, err := client.MGet(ctx, "a", "b", "c")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, []byte("1"), vals[0])
	assert.Nil(t, vals[1])
	assert.Equal(t, []byte("3"), vals[2])
}

func TestRedisClient_PipelineSet(t *testing.T) {
	mr, client := newTestRedisClient(t)
	ctx := context.Background()

	acks, err := client.PipelineSet(ctx, map[string][]byte{
		"x": []byte("1"),
		"y": []byte("2"),
	}, 10)
	require.NoError(t, err)
	require.Len(t, acks, 2)
	for _, ack := range acks {
		assert.Equal(t, "OK", ack)
	}

	mr.CheckGet(t, "x", "1")
	mr.CheckGet(t, "y", "2")
	assert.Equal(t, 10*time.Second, mr.TTL("x"))
}

func TestRedisClient_Exists(t *testing.T) {
	_, client := newTestRedisClient(t)
	ctx := context.Background()

	ok, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, client.Set(ctx, "k", []byte("v"), 0))
	ok, err = client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisClient_FlushAll(t *testing.T) {
	mr, client := newTestRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, client.FlushAll(ctx))
	assert.False(t, mr.Exists("k"))
}

func TestRedisClient_Ping(t *testing.T) {
	_, client := newTestRedisClient(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient("invalid://url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
