package oestest

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/openoes/sdk-go/oeserr"
)

// Keys and streams the scenarios seed.
const (
	CreditRequestStream = "openoes:credit_requests"
	EventStream         = "openoes:events"

	settlementKeyPrefix = "openoes:settlement:"
	accountKeyPrefix    = "openoes:account:"
)

// Scenario seeds the mock backend with one reproducible data shape. Every
// written fixture is journaled on the backend under its record id.
type Scenario interface {
	Name() string
	Run(ctx context.Context, backend *Backend) error
}

// CreditRequestScenario appends credit requests to the replica's request
// stream, the way the Exchange writes them in production.
type CreditRequestScenario struct {
	// Stream defaults to CreditRequestStream.
	Stream string
	// Count defaults to 1.
	Count int
}

func (CreditRequestScenario) Name() string { return "credit_request" }

func (s CreditRequestScenario) Run(ctx context.Context, backend *Backend) error {
	stream := s.Stream
	if stream == "" {
		stream = CreditRequestStream
	}

	gen := CreditRequestGenerator{}
	client := backend.Manager().Replica()

	for i := 0; i < countOrOne(s.Count); i++ {
		record := gen.Generate()

		err := client.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: toValues(record)}).Err()
		if err != nil {
			return oeserr.NewStreamError("failed to seed credit request: "+err.Error(), stream)
		}

		backend.journal.record(record["request_id"], record)
	}

	return nil
}

// SettlementScenario stores settlement hashes on the WSP instance.
type SettlementScenario struct {
	Count int
}

func (SettlementScenario) Name() string { return "settlement" }

func (s SettlementScenario) Run(ctx context.Context, backend *Backend) error {
	gen := SettlementGenerator{}
	client := backend.Manager().WSP()

	for i := 0; i < countOrOne(s.Count); i++ {
		record := gen.Generate()
		key := settlementKeyPrefix + record["settlement_id"]

		if err := client.HSet(ctx, key, toValues(record)).Err(); err != nil {
			return oeserr.NewKeyAccessError("failed to seed settlement: "+err.Error(), key)
		}

		backend.journal.record(record["settlement_id"], record)
	}

	return nil
}

// EventHandlingScenario appends lifecycle events to the WSP event stream.
type EventHandlingScenario struct {
	Stream string
	Count  int
}

func (EventHandlingScenario) Name() string { return "event_handling" }

func (s EventHandlingScenario) Run(ctx context.Context, backend *Backend) error {
	stream := s.Stream
	if stream == "" {
		stream = EventStream
	}

	gen := EventGenerator{}
	client := backend.Manager().WSP()

	for i := 0; i < countOrOne(s.Count); i++ {
		record := gen.Generate()

		err := client.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: toValues(record)}).Err()
		if err != nil {
			return oeserr.NewStreamError("failed to seed event: "+err.Error(), stream)
		}

		backend.journal.record(record["event_id"], record)
	}

	return nil
}

// IntegrationScenario seeds everything at once: credit requests, settlements,
// events and account balances.
type IntegrationScenario struct {
	Count int
}

func (IntegrationScenario) Name() string { return "integration" }

func (s IntegrationScenario) Run(ctx context.Context, backend *Backend) error {
	scenarios := []Scenario{
		CreditRequestScenario{Count: s.Count},
		SettlementScenario{Count: s.Count},
		EventHandlingScenario{Count: s.Count},
	}

	for _, scenario := range scenarios {
		if err := scenario.Run(ctx, backend); err != nil {
			return err
		}
	}

	gen := AccountGenerator{}
	client := backend.Manager().WSP()

	for i := 0; i < countOrOne(s.Count); i++ {
		record := gen.Generate()
		key := accountKeyPrefix + record["account_id"]

		if err := client.HSet(ctx, key, toValues(record)).Err(); err != nil {
			return oeserr.NewKeyAccessError("failed to seed account: "+err.Error(), key)
		}

		backend.journal.record(record["account_id"], record)
	}

	return nil
}

func countOrOne(count int) int {
	if count <= 0 {
		return 1
	}

	return count
}

func toValues(record map[string]string) map[string]interface{} {
	values := make(map[string]interface{}, len(record))
	for k, v := range record {
		values[k] = v
	}

	return values
}
