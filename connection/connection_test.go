package connection

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openoes/sdk-go/model"
)

// newTestServer starts a miniredis server and returns its config.
func newTestServer(t *testing.T) (*miniredis.Miniredis, *model.Config) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("an error '%s' occurred when starting miniredis", err)
	}
	t.Cleanup(mr.Close)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	return mr, &model.Config{Host: mr.Host(), Port: port}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewWSPClient(nil)
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "", opts.Password)
	assert.Equal(t, 0, opts.DB)
}

func TestNewClientFixedSocketPolicy(t *testing.T) {
	client := NewWSPClient(&model.Config{Host: "redis-wsp", Port: 6380})
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, 5*time.Second, opts.ReadTimeout)
	assert.Equal(t, 5*time.Second, opts.WriteTimeout)
	assert.Equal(t, 10*time.Second, opts.DialTimeout)
	assert.NotNil(t, opts.Dialer)
}

func TestNewClientExtraOptions(t *testing.T) {
	cfg := &model.Config{
		Host: "redis-wsp",
		Port: 6380,
		Extra: func(opts *redis.Options) {
			opts.PoolSize = 42
			// Fixed policy fields must not be overridable.
			opts.ReadTimeout = 99 * time.Second
		},
	}

	client := NewWSPClient(cfg)
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, 42, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.ReadTimeout)
}

func TestClientsReachBackend(t *testing.T) {
	_, cfg := newTestServer(t)
	ctx := context.Background()

	wsp := NewWSPClient(cfg)
	defer wsp.Close()
	replica := NewReplicaClient(cfg)
	defer replica.Close()

	require.NoError(t, wsp.Set(ctx, "key1", "value1", 0).Err())

	got, err := replica.Get(ctx, "key1").Result()
	require.NoError(t, err)
	assert.Equal(t, "value1", got)
}
