// Package oestest provides a Valkey/Redis-compatible mock backend for
// integration testing against the OpenOES SDK, plus fixture generators,
// seeding scenarios and response validators.
package oestest

import (
	"strconv"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/openoes/sdk-go/connection"
	"github.com/openoes/sdk-go/model"
	"github.com/openoes/sdk-go/oeserr"
)

// Backend is an in-process stand-in for both OpenOES instances. The WSP and
// replica handles of its manager point at the same embedded server, which is
// also how a default single-node deployment looks to the SDK.
type Backend struct {
	srv     *miniredis.Miniredis
	manager *connection.Manager
	journal *journal
}

// NewBackend starts an embedded Valkey/Redis-compatible server and wires a
// connection manager to it. Callers own the backend and must Close it.
func NewBackend() (*Backend, error) {
	srv, err := miniredis.Run()
	if err != nil {
		return nil, oeserr.NewConnectionError("failed to start mock backend: "+err.Error(), "", 0)
	}

	port, err := strconv.Atoi(srv.Port())
	if err != nil {
		srv.Close()
		return nil, oeserr.NewConnectionError("mock backend reported an invalid port: "+err.Error(), srv.Host(), 0)
	}

	cfg := &model.Config{Host: srv.Host(), Port: port}

	return &Backend{
		srv:     srv,
		manager: connection.NewManager(cfg, nil),
		journal: newJournal(),
	}, nil
}

// Manager returns the connection manager wired to the backend.
func (b *Backend) Manager() *connection.Manager {
	return b.manager
}

// Addr returns the backend address in host:port form.
func (b *Backend) Addr() string {
	return b.srv.Addr()
}

// Server exposes the embedded server for direct state assertions.
func (b *Backend) Server() *miniredis.Miniredis {
	return b.srv
}

// FastForward advances the backend clock, expiring keys whose TTL elapses.
func (b *Backend) FastForward(d time.Duration) {
	b.srv.FastForward(d)
}

// Written returns the journaled fixture with the given id, if a scenario
// wrote one.
func (b *Backend) Written(id string) (map[string]string, bool) {
	return b.journal.get(id)
}

// WrittenIDs returns the ids of every journaled fixture.
func (b *Backend) WrittenIDs() []string {
	return b.journal.ids()
}

// Close releases the manager handles and stops the embedded server.
func (b *Backend) Close() {
	_ = b.manager.Close()
	b.srv.Close()
}
