package connection

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/openoes/sdk-go/model"
)

// Manager owns the two client handles of one OpenOES session: the WSP
// primary and the stream-writeable replica. It owns only the client side;
// server state is untouched by its lifecycle.
type Manager struct {
	wsp     *redis.Client
	replica *redis.Client

	closeOnce sync.Once
	closeErr  error
}

// NewManager builds both handles. When replicaCfg is nil the replica reuses
// a value copy of wspCfg, so both handles point at the same endpoint unless
// the caller differentiates them.
func NewManager(wspCfg, replicaCfg *model.Config) *Manager {
	slog.Default().Info("initializing Valkey/Redis connection manager")

	if replicaCfg == nil {
		replicaCfg = wspCfg.Clone()
	}

	return &Manager{
		wsp:     NewWSPClient(wspCfg),
		replica: NewReplicaClient(replicaCfg),
	}
}

// WSP returns the live WSP handle. The manager keeps ownership; callers must
// not close it.
func (m *Manager) WSP() *redis.Client {
	return m.wsp
}

// Replica returns the live stream-writeable replica handle. The manager
// keeps ownership; callers must not close it.
func (m *Manager) Replica() *redis.Client {
	return m.replica
}

// Close releases both handles. Redundant calls return the first result
// without touching the handles again.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		slog.Default().Info("closing Valkey/Redis connections")
		m.closeErr = errors.Join(m.wsp.Close(), m.replica.Close())
	})

	return m.closeErr
}

// WithManager builds a manager, runs fn with it, and closes both handles on
// every exit path, including a panic inside fn.
func WithManager(wspCfg, replicaCfg *model.Config, fn func(*Manager) error) error {
	m := NewManager(wspCfg, replicaCfg)
	defer m.Close()

	return fn(m)
}
