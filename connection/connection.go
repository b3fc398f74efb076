// Package connection builds and manages the client handles of the OpenOES
// Community Edition deployment: the WSP Valkey/Redis instance and the
// stream-writeable replica the Exchange writes to.
package connection

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openoes/sdk-go/model"
)

// Socket policy applied to every handle, regardless of caller input.
const (
	operationTimeout = 5 * time.Second
	connectTimeout   = 10 * time.Second
	keepAlivePeriod  = 30 * time.Second
)

// NewWSPClient returns a client handle for the WSP Valkey/Redis instance.
// A nil cfg resolves to the defaults (localhost:6379, database 0). The
// handle connects lazily; a bad endpoint surfaces on first use.
func NewWSPClient(cfg *model.Config) *redis.Client {
	return newClient(cfg)
}

// NewReplicaClient returns a client handle for the stream-writeable replica.
// The replica is expected to run with 'replica-read-only no' and an ACL that
// lets the Exchange identity write to stream keys; that configuration is
// applied server-side and nothing here differs from NewWSPClient.
func NewReplicaClient(cfg *model.Config) *redis.Client {
	return newClient(cfg)
}

func newClient(cfg *model.Config) *redis.Client {
	c := model.Config{}
	if cfg != nil {
		c = *cfg
	}

	c = c.WithDefaults()

	slog.Default().Debug("creating Valkey/Redis client", "host", c.Host, "port", c.Port)

	opts := &redis.Options{
		Addr:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Password: c.Password,
		DB:       c.DB,
	}

	if c.Extra != nil {
		c.Extra(opts)
	}

	// The fixed policy wins over anything Extra set.
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: keepAlivePeriod,
	}
	opts.Dialer = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialer.DialContext(ctx, network, addr)
	}
	opts.DialTimeout = connectTimeout
	opts.ReadTimeout = operationTimeout
	opts.WriteTimeout = operationTimeout

	return redis.NewClient(opts)
}
