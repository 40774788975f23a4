package errors

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(io.EOF, "read archive")

	assert.True(t, IsAny(wrapped, context.Canceled, io.EOF))
	assert.False(t, IsAny(wrapped, context.Canceled))
	assert.False(t, IsAny(wrapped))
}

func TestStackTrace(t *testing.T) {
	t.Run("wrapped error carries a stack", func(t *testing.T) {
		err := Wrapf(io.ErrUnexpectedEOF, "decode %s", "orders")

		assert.Contains(t, StackTrace(err), "TestStackTrace")
	})

	t.Run("plain error has none", func(t *testing.T) {
		assert.Empty(t, StackTrace(New("plain")))
		assert.Empty(t, StackTrace(nil))
	})
}
