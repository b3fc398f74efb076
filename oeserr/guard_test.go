package oeserr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardPassesThroughTaxonomyErrors(t *testing.T) {
	taxonomyErrs := []error{
		New("already classified"),
		NewConnectionError("refused", "h", 1),
		NewACLError("denied", "exchange"),
		NewStreamError("full", "s"),
		NewValidationError("bad", "f", "v"),
	}

	for _, want := range taxonomyErrs {
		op := Guard("readStream", func(context.Context) error {
			return want
		})

		got := op(context.Background())
		assert.Same(t, want, got)
	}
}

func TestGuardDoesNotDoubleLogTaxonomyErrors(t *testing.T) {
	h := captureLogs(t)

	want := NewStreamError("full", "openoes:events")
	require.Len(t, h.all(), 1)

	op := Guard("readStream", func(context.Context) error {
		return want
	})

	_ = op(context.Background())
	assert.Len(t, h.all(), 1)
}

func TestGuardWrapsForeignErrors(t *testing.T) {
	op := Guard("readStream", func(context.Context) error {
		return errors.New("boom")
	})

	err := op(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Unhandled exception: boom", err.Error())

	var te Error
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindGeneric, te.Kind())

	var generic *GenericError
	assert.True(t, errors.As(err, &generic))
}

func TestGuardWrapLogsOperationName(t *testing.T) {
	h := captureLogs(t)

	op := Guard("readStream", func(context.Context) error {
		return errors.New("boom")
	})
	_ = op(context.Background())

	records := h.all()
	// One trace record plus the construction record of the new error.
	require.Len(t, records, 2)
	assert.Equal(t, "readStream", records[0].attrs["operation"])
}

func TestGuardSuccess(t *testing.T) {
	op := Guard("noop", func(context.Context) error {
		return nil
	})

	assert.NoError(t, op(context.Background()))
}

func TestGuardValue(t *testing.T) {
	t.Run("success passes value through", func(t *testing.T) {
		op := GuardValue("readCount", func(context.Context) (int64, error) {
			return 42, nil
		})

		v, err := op(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("foreign error is classified", func(t *testing.T) {
		op := GuardValue("readCount", func(context.Context) (int64, error) {
			return 0, errors.New("boom")
		})

		_, err := op(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Unhandled exception: boom", err.Error())
	})

	t.Run("taxonomy error passes through", func(t *testing.T) {
		want := NewKeyAccessError("read-only", "k")
		op := GuardValue("readCount", func(context.Context) (string, error) {
			return "", want
		})

		_, err := op(context.Background())
		assert.Same(t, error(want), err)
	})
}
