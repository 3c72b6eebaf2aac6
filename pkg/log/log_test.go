package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))

	t.Run("contexto sem ID retorna vazio", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})

	t.Run("cada execução ganha um ID próprio", func(t *testing.T) {
		_, other := WithCorrelationID(context.Background())
		assert.NotEqual(t, correlationID, other)
	})
}

func TestForContext(t *testing.T) {
	SetupTestLogger()

	ctx, _ := WithCorrelationID(context.Background())
	assert.NotNil(t, ForContext(ctx))
	assert.NotNil(t, ForContext(context.Background()))
}
