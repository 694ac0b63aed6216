package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeepsTypedKind(t *testing.T) {
	err := E(NotFound, "event not found: %s", "e1")

	normalized := Normalize(context.Background(), fmt.Errorf("getEventById: %w", err))

	require.NotNil(t, normalized)
	assert.Equal(t, NotFound, normalized.Kind)
	assert.True(t, IsNotFound(normalized))
	assert.False(t, IsUnauthorized(normalized))
}

func TestNormalizeWrapsUnknownAsInternal(t *testing.T) {
	cause := errors.New("driver: bad connection")

	normalized := Normalize(context.Background(), cause)

	require.NotNil(t, normalized)
	assert.Equal(t, Internal, normalized.Kind)
	assert.ErrorIs(t, normalized, cause)
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, Normalize(context.Background(), nil))
}

func TestErrorStringCarriesKindAndCause(t *testing.T) {
	err := Wrap(Unauthorized, errors.New("organizer mismatch"), "update rejected")

	assert.Contains(t, err.Error(), "UNAUTHORIZED")
	assert.Contains(t, err.Error(), "organizer mismatch")
	assert.True(t, IsUnauthorized(err))
}
