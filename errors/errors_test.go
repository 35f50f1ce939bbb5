package zqe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	err := E(Incompatible, "cannot merge %s with %s", "i64", "String")
	assert.EqualError(t, err, "incompatible types: cannot merge i64 with String")
	var zerr *Error
	require.True(t, errors.As(err, &zerr))
	assert.Equal(t, "cannot merge i64 with String", zerr.Message())

	inner := errors.New("boom")
	err = E(Invalid, inner)
	assert.ErrorIs(t, err, inner)
	assert.EqualError(t, err, "invalid type: boom")

	assert.EqualError(t, E(Other), "no error")
	assert.Equal(t, "incompatible types", (&Error{Kind: Incompatible}).Message())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Other, KindOf(nil))
	assert.Equal(t, Other, KindOf(errors.New("plain")))
	err := E(Incompatible, "x")
	assert.True(t, IsIncompatible(err))
	assert.False(t, IsInvalid(err))
	wrapped := fmt.Errorf("file.yaml: %w", err)
	assert.True(t, IsIncompatible(wrapped))
	assert.True(t, IsInvalid(E(E(Invalid, "bad kind"))))
}
