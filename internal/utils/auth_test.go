package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Run("Roundtrip", func(t *testing.T) {
		ctx := SetUserContext(context.Background(), 42)

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("Missing", func(t *testing.T) {
		id, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
		assert.Equal(t, int64(0), id)
	})
}
