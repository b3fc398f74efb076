package oeserr

import (
	"context"
	"errors"
)

// Guard wraps op so that every failure it reports belongs to the taxonomy.
// Errors that are already taxonomy members pass through untouched. Anything
// else is logged with the operation name and replaced by a generic error
// whose message carries the original one.
func Guard(name string, op func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		return classify(name, op(ctx))
	}
}

// GuardValue is Guard for operations returning a value alongside the error.
// The value is passed through unchanged on success.
func GuardValue[T any](name string, op func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		v, err := op(ctx)
		return v, classify(name, err)
	}
}

func classify(name string, err error) error {
	if err == nil {
		return nil
	}

	var te Error
	if errors.As(err, &te) {
		return err
	}

	activeLogger().Error("unhandled exception", "operation", name, "error", err)

	return New("Unhandled exception: " + err.Error())
}
