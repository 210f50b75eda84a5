package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.False(t, id.IsZero())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewUUID()
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestUUIDFromString(t *testing.T) {
	const valid = "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(valid)

		require.NoError(t, err)
		assert.Equal(t, valid, id.String())
	})

	t.Run("should accept UUID with braces and urn prefix", func(t *testing.T) {
		braced, err := kernel.UUIDFromString("{" + valid + "}")
		require.NoError(t, err)

		urn, err := kernel.UUIDFromString("urn:uuid:" + valid)
		require.NoError(t, err)

		assert.True(t, braced.IsEqual(urn))
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should return error for invalid byte length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromGoogle(t *testing.T) {
	t.Run("should wrap a non-nil uuid", func(t *testing.T) {
		raw := uuid.New()

		id, err := kernel.UUIDFromGoogle(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.Bytes())
	})

	t.Run("should reject uuid.Nil", func(t *testing.T) {
		_, err := kernel.UUIDFromGoogle(uuid.Nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.True(t, id.IsZero())
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, id.IsEqual(kernel.UUID{}))
	assert.False(t, id.IsEqual(kernel.NewUUID()))
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", id.String())
}
