package connection

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConnection(t *testing.T) {
	mr, cfg := newTestServer(t)
	ctx := context.Background()

	client := NewWSPClient(cfg)
	defer client.Close()

	assert.True(t, CheckConnection(ctx, client))

	// Connectivity failure must surface as false, not an error.
	mr.Close()
	assert.False(t, CheckConnection(ctx, client))
}

func TestCheckConnectionClosedClient(t *testing.T) {
	_, cfg := newTestServer(t)

	client := NewWSPClient(cfg)
	require.NoError(t, client.Close())

	assert.False(t, CheckConnection(context.Background(), client))
}

func TestConnectionInfoFailure(t *testing.T) {
	mr, cfg := newTestServer(t)
	mr.Close()

	client := NewWSPClient(cfg)
	defer client.Close()

	info := ConnectionInfo(context.Background(), client)

	assert.Equal(t, false, info["connected"])
	errMsg, ok := info["error"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, errMsg)
}

func TestParseInfo(t *testing.T) {
	raw := "# Server\r\nredis_version:7.2.4\r\nvalkey_version:8.0.1\r\n\r\n" +
		"# Clients\r\nconnected_clients:3\r\n" +
		"# Memory\r\nused_memory_human:1.04M\r\n" +
		"# Replication\r\nrole:master\r\n"

	expected := map[string]string{
		"redis_version":     "7.2.4",
		"valkey_version":    "8.0.1",
		"connected_clients": "3",
		"used_memory_human": "1.04M",
		"role":              "master",
	}

	if diff := cmp.Diff(expected, parseInfo(raw)); diff != "" {
		t.Errorf("parseInfo() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInfo(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		expected map[string]any
	}{
		{
			name: "valkey version preferred",
			fields: map[string]string{
				"valkey_version":    "8.0.1",
				"redis_version":     "7.2.4",
				"connected_clients": "3",
				"used_memory_human": "1.04M",
				"role":              "master",
			},
			expected: map[string]any{
				"valkey_version":    "8.0.1",
				"connected_clients": "3",
				"used_memory_human": "1.04M",
				"role":              "master",
				"connected":         true,
			},
		},
		{
			name: "legacy redis version fallback",
			fields: map[string]string{
				"redis_version":     "7.2.4",
				"connected_clients": "1",
				"used_memory_human": "900K",
				"role":              "slave",
			},
			expected: map[string]any{
				"valkey_version":    "7.2.4",
				"connected_clients": "1",
				"used_memory_human": "900K",
				"role":              "slave",
				"connected":         true,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, buildInfo(tc.fields)); diff != "" {
				t.Errorf("buildInfo() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
