package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrUpstream.Code, ErrUpstream.Status, "request to backend failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFromErrorUnwrapsThroughFmt(t *testing.T) {
	inner := Clone(ErrNotFound, "curso não encontrado")
	wrapped := fmt.Errorf("loading: %w", inner)

	got := FromError(wrapped)

	require.NotNil(t, got)
	assert.Equal(t, ErrNotFound.Code, got.Code)
	assert.Equal(t, "curso não encontrado", got.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	got := FromError(stderrors.New("boom"))

	require.NotNil(t, got)
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrMutationRejected, "Aluno já matriculado")

	assert.Equal(t, ErrMutationRejected.Code, clone.Code)
	assert.Equal(t, ErrMutationRejected.Status, clone.Status)
	assert.Equal(t, "Aluno já matriculado", clone.Message)
	assert.Equal(t, "the server rejected this operation", ErrMutationRejected.Message)
}

func TestCloneEmptyMessageKeepsOriginal(t *testing.T) {
	clone := Clone(ErrLoadFailed, "")

	assert.Equal(t, ErrLoadFailed.Message, clone.Message)
}

func TestIsMatchesByCode(t *testing.T) {
	err := Clone(ErrUnauthenticated, "sessão expirada")

	assert.True(t, Is(err, ErrUnauthenticated))
	assert.False(t, Is(err, ErrForbidden))
	assert.False(t, Is(nil, ErrForbidden))
	assert.False(t, Is(stderrors.New("plain"), ErrForbidden))
}
