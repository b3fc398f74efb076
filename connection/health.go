package connection

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"

	"github.com/redis/go-redis/v9"
)

// CheckConnection reports whether the handle can reach its endpoint. It
// never returns an error: any failure during the probe, connectivity or
// otherwise, is logged and reported as false, so it is safe to poll from
// monitoring code.
func CheckConnection(ctx context.Context, client redis.UniversalClient) bool {
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			slog.Default().Error("connection check failed", "error", err)
		} else {
			slog.Default().Error("unexpected error checking connection", "error", err)
		}

		return false
	}

	return pong == "PONG"
}

// ConnectionInfo queries server metadata over the handle. On success the
// returned map carries "valkey_version" (falling back to the legacy
// redis_version field), "connected_clients", "used_memory_human", "role" and
// "connected": true. On any failure it carries "connected": false and an
// "error" message instead; it never returns an error.
func ConnectionInfo(ctx context.Context, client redis.UniversalClient) map[string]any {
	raw, err := client.Info(ctx).Result()
	if err != nil {
		slog.Default().Error("error getting connection info", "error", err)

		return map[string]any{
			"error":     err.Error(),
			"connected": false,
		}
	}

	return buildInfo(parseInfo(raw))
}

func buildInfo(fields map[string]string) map[string]any {
	version := fields["valkey_version"]
	if version == "" {
		version = fields["redis_version"]
	}

	return map[string]any{
		"valkey_version":    version,
		"connected_clients": fields["connected_clients"],
		"used_memory_human": fields["used_memory_human"],
		"role":              fields["role"],
		"connected":         true,
	}
}

// parseInfo splits an INFO reply into key/value pairs, skipping section
// headers and blank lines.
func parseInfo(raw string) map[string]string {
	fields := map[string]string{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		fields[key] = value
	}

	return fields
}
