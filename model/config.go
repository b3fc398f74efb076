package model

import (
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultHost is used when no host is configured.
	DefaultHost = "localhost"
	// DefaultPort is used when no port is configured.
	DefaultPort = 6379
)

// Config describes one Valkey/Redis endpoint. The zero value is usable and
// resolves to localhost:6379, no password, database 0.
type Config struct {
	// Connection host. For example: "localhost"
	Host string `json:"host" env:"HOST"`
	// Connection port. For example: 6379
	Port int `json:"port" env:"PORT"`
	// Connection password
	Password string `json:"password" env:"PASSWORD"`
	// Valkey/Redis database
	DB int `json:"db" env:"DB"`

	// Extra is applied to the underlying client options after the fields
	// above are mapped and before the fixed socket policy. It is the
	// pass-through for anything this struct does not cover.
	Extra func(*redis.Options) `json:"-"`
}

// WithDefaults returns a copy of c with unset fields resolved to their
// defaults.
func (c Config) WithDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultHost
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}

	return c
}

// Clone returns a value copy of c, or nil if c is nil. Mutating the original
// after cloning does not affect the copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	cp := *c

	return &cp
}
