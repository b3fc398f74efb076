package oestest

import (
	"strconv"

	"github.com/openoes/sdk-go/oeserr"
)

// Validator checks that a record read back from the backend has the shape
// its family requires. Failures are reported as taxonomy validation errors.
type Validator interface {
	Validate(record map[string]string) error
}

// CreditRequestValidator checks credit request records.
type CreditRequestValidator struct{}

func (CreditRequestValidator) Validate(record map[string]string) error {
	if err := requireFields(record, "request_id", "user_id", "asset", "amount", "status"); err != nil {
		return err
	}

	return requireNumeric(record, "amount")
}

// SettlementValidator checks settlement records.
type SettlementValidator struct{}

func (SettlementValidator) Validate(record map[string]string) error {
	if err := requireFields(record, "settlement_id", "user_id", "asset", "amount", "status"); err != nil {
		return err
	}

	return requireNumeric(record, "amount")
}

// EventValidator checks lifecycle event records.
type EventValidator struct{}

func (EventValidator) Validate(record map[string]string) error {
	if err := requireFields(record, "event_id", "event_type", "source"); err != nil {
		return err
	}

	for _, known := range EventTypes {
		if record["event_type"] == known {
			return nil
		}
	}

	return oeserr.NewValidationError("unknown event type", "event_type", record["event_type"])
}

// AccountValidator checks account balance records.
type AccountValidator struct{}

func (AccountValidator) Validate(record map[string]string) error {
	if err := requireFields(record, "account_id", "user_id", "asset", "balance"); err != nil {
		return err
	}

	if err := requireNumeric(record, "balance"); err != nil {
		return err
	}

	if balance, _ := strconv.ParseFloat(record["balance"], 64); balance < 0 {
		return oeserr.NewValidationError("balance cannot be negative", "balance", record["balance"])
	}

	return nil
}

func requireFields(record map[string]string, fields ...string) error {
	for _, field := range fields {
		if record[field] == "" {
			return oeserr.NewValidationError("missing required field", field, "")
		}
	}

	return nil
}

func requireNumeric(record map[string]string, field string) error {
	if _, err := strconv.ParseFloat(record[field], 64); err != nil {
		return oeserr.NewValidationError("field is not numeric", field, record[field])
	}

	return nil
}
