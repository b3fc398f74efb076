package oestest

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var defaultAssets = []string{"BTC", "ETH", "USDT"}

// Generator produces fixture records for one OpenOES record family. Records
// are flat string maps, the shape both stream entries and hashes take on the
// wire.
type Generator interface {
	Generate() map[string]string
}

// CreditRequestGenerator produces credit request fixtures as the Exchange
// would write them.
type CreditRequestGenerator struct {
	// Assets to draw from; defaults to BTC, ETH and USDT.
	Assets []string
}

func (g CreditRequestGenerator) Generate() map[string]string {
	return map[string]string{
		"request_id": uuid.NewString(),
		"user_id":    newUserID(),
		"asset":      pickAsset(g.Assets),
		"amount":     randomAmount(),
		"status":     "pending",
		"timestamp":  fixtureTimestamp(),
	}
}

// SettlementGenerator produces settlement fixtures.
type SettlementGenerator struct {
	Assets []string
}

func (g SettlementGenerator) Generate() map[string]string {
	return map[string]string{
		"settlement_id": uuid.NewString(),
		"user_id":       newUserID(),
		"asset":         pickAsset(g.Assets),
		"amount":        randomAmount(),
		"status":        "completed",
		"timestamp":     fixtureTimestamp(),
	}
}

// EventTypes lists the event families the WSP publishes.
var EventTypes = []string{
	"credit_request_created",
	"credit_request_approved",
	"settlement_completed",
	"account_updated",
}

// EventGenerator produces lifecycle event fixtures.
type EventGenerator struct{}

func (EventGenerator) Generate() map[string]string {
	return map[string]string{
		"event_id":   uuid.NewString(),
		"event_type": EventTypes[rand.Intn(len(EventTypes))],
		"source":     "wsp",
		"timestamp":  fixtureTimestamp(),
	}
}

// AccountGenerator produces account balance fixtures.
type AccountGenerator struct {
	Assets []string
}

func (g AccountGenerator) Generate() map[string]string {
	return map[string]string{
		"account_id": uuid.NewString(),
		"user_id":    newUserID(),
		"asset":      pickAsset(g.Assets),
		"balance":    randomAmount(),
		"updated_at": fixtureTimestamp(),
	}
}

func pickAsset(assets []string) string {
	if len(assets) == 0 {
		assets = defaultAssets
	}

	return assets[rand.Intn(len(assets))]
}

func newUserID() string {
	return "user-" + uuid.NewString()[:8]
}

func randomAmount() string {
	return strconv.FormatFloat(rand.Float64()*100, 'f', 8, 64)
}

func fixtureTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
