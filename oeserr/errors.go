// Package oeserr defines the closed error taxonomy of the OpenOES SDK.
//
// Every failure the SDK surfaces belongs to one of the kinds below. Each kind
// carries its own identifying context fields; fields left at their zero value
// are omitted from the rendered message. Every error is logged once, at error
// level, at the moment it is constructed.
package oeserr

import (
	"strconv"
	"strings"
	"time"
)

// Kind names one member of the taxonomy.
type Kind string

const (
	KindGeneric       Kind = "OpenOESError"
	KindConnection    Kind = "ConnectionError"
	KindACL           Kind = "ACLError"
	KindStream        Kind = "StreamError"
	KindKeyAccess     Kind = "KeyAccessError"
	KindValidation    Kind = "ValidationError"
	KindCreditRequest Kind = "CreditRequestError"
	KindSettlement    Kind = "SettlementError"
	KindConfiguration Kind = "ConfigurationError"
	KindTimeout       Kind = "TimeoutError"
)

// Error is implemented by every value in the taxonomy. Use errors.As with an
// *Error target to test membership without enumerating kinds.
type Error interface {
	error
	Kind() Kind
}

type detail struct {
	key   string
	value string
}

// base is the single construction site shared by all kinds: it renders the
// message and emits the one construction-time log record.
type base struct {
	kind Kind
	msg  string
}

func newBase(kind Kind, message string, details []detail) base {
	if len(details) > 0 {
		pairs := make([]string, 0, len(details))
		for _, d := range details {
			pairs = append(pairs, d.key+"="+d.value)
		}

		message = message + " (" + strings.Join(pairs, ", ") + ")"
	}

	activeLogger().Error(message, "kind", string(kind))

	return base{kind: kind, msg: message}
}

func (b *base) Error() string {
	return b.msg
}

func (b *base) Kind() Kind {
	return b.kind
}

// GenericError is the base kind, raised when no specialized kind applies.
type GenericError struct {
	base
}

// New returns a generic taxonomy error.
func New(message string) *GenericError {
	return &GenericError{base: newBase(KindGeneric, message, nil)}
}

// ConnectionError reports a failure reaching a Valkey/Redis endpoint.
type ConnectionError struct {
	base

	Host string
	Port int
}

func NewConnectionError(message, host string, port int) *ConnectionError {
	var details []detail
	if host != "" {
		details = append(details, detail{"host", host})
	}

	if port != 0 {
		details = append(details, detail{"port", strconv.Itoa(port)})
	}

	return &ConnectionError{base: newBase(KindConnection, message, details), Host: host, Port: port}
}

// ACLError reports a Valkey/Redis ACL rejection.
type ACLError struct {
	base

	Username string
}

func NewACLError(message, username string) *ACLError {
	var details []detail
	if username != "" {
		details = append(details, detail{"username", username})
	}

	return &ACLError{base: newBase(KindACL, message, details), Username: username}
}

// StreamError reports a failure operating on a stream key.
type StreamError struct {
	base

	StreamName string
}

func NewStreamError(message, streamName string) *StreamError {
	var details []detail
	if streamName != "" {
		details = append(details, detail{"stream", streamName})
	}

	return &StreamError{base: newBase(KindStream, message, details), StreamName: streamName}
}

// KeyAccessError reports a failure operating on a non-stream key.
type KeyAccessError struct {
	base

	Key string
}

func NewKeyAccessError(message, key string) *KeyAccessError {
	var details []detail
	if key != "" {
		details = append(details, detail{"key", key})
	}

	return &KeyAccessError{base: newBase(KindKeyAccess, message, details), Key: key}
}

// ValidationError reports malformed or missing data.
type ValidationError struct {
	base

	Field string
	Value string
}

func NewValidationError(message, field, value string) *ValidationError {
	var details []detail
	if field != "" {
		details = append(details, detail{"field", field})
	}

	if value != "" {
		details = append(details, detail{"value", value})
	}

	return &ValidationError{base: newBase(KindValidation, message, details), Field: field, Value: value}
}

// CreditRequestError reports a failure processing a credit request.
type CreditRequestError struct {
	base

	RequestID string
	UserID    string
	Asset     string
}

func NewCreditRequestError(message, requestID, userID, asset string) *CreditRequestError {
	var details []detail
	if requestID != "" {
		details = append(details, detail{"request_id", requestID})
	}

	if userID != "" {
		details = append(details, detail{"user_id", userID})
	}

	if asset != "" {
		details = append(details, detail{"asset", asset})
	}

	return &CreditRequestError{
		base:      newBase(KindCreditRequest, message, details),
		RequestID: requestID,
		UserID:    userID,
		Asset:     asset,
	}
}

// SettlementError reports a failure processing a settlement.
type SettlementError struct {
	base

	SettlementID string
	UserID       string
}

func NewSettlementError(message, settlementID, userID string) *SettlementError {
	var details []detail
	if settlementID != "" {
		details = append(details, detail{"settlement_id", settlementID})
	}

	if userID != "" {
		details = append(details, detail{"user_id", userID})
	}

	return &SettlementError{
		base:         newBase(KindSettlement, message, details),
		SettlementID: settlementID,
		UserID:       userID,
	}
}

// ConfigurationError reports an invalid or missing configuration parameter.
type ConfigurationError struct {
	base

	Parameter string
}

func NewConfigurationError(message, parameter string) *ConfigurationError {
	var details []detail
	if parameter != "" {
		details = append(details, detail{"parameter", parameter})
	}

	return &ConfigurationError{base: newBase(KindConfiguration, message, details), Parameter: parameter}
}

// TimeoutError reports an operation that did not complete in time.
type TimeoutError struct {
	base

	Operation string
	Timeout   time.Duration
}

func NewTimeoutError(message, operation string, timeout time.Duration) *TimeoutError {
	var details []detail
	if operation != "" {
		details = append(details, detail{"operation", operation})
	}

	if timeout != 0 {
		details = append(details, detail{"timeout", timeout.String()})
	}

	return &TimeoutError{base: newBase(KindTimeout, message, details), Operation: operation, Timeout: timeout}
}
