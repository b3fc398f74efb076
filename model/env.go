package model

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/openoes/sdk-go/oeserr"
)

const (
	// EnvPrefixWSP selects the WSP instance variables, e.g. OPENOES_WSP_HOST.
	EnvPrefixWSP = "OPENOES_WSP_"
	// EnvPrefixReplica selects the stream-writeable replica variables,
	// e.g. OPENOES_REPLICA_HOST.
	EnvPrefixReplica = "OPENOES_REPLICA_"
)

var dotenvOnce sync.Once

// FromEnv builds a Config from environment variables carrying the given
// prefix. A .env file in the working directory is loaded once per process,
// without overriding variables already set. Unset variables leave the
// corresponding Config field at its zero value, which resolves through
// WithDefaults.
func FromEnv(prefix string) (*Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return nil, oeserr.NewConfigurationError("failed to parse environment configuration: "+err.Error(), prefix+"*")
	}

	return cfg, nil
}
