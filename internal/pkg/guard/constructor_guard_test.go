package guard_test

import (
	"errors"
	"sync"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, err.Error(), "constructor")
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	type Shelf struct {
		code  string
		guard guard.ConstructorGuard
	}

	errShelfNotConstructed := errors.New("Shelf must be created via NewShelf")

	newShelf := func(code string) (Shelf, error) {
		if code == "" {
			return Shelf{}, errors.New("code is required")
		}
		return Shelf{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		shelf, err := newShelf("A-01")

		require.NoError(t, err)
		require.NoError(t, shelf.guard.Validate(errShelfNotConstructed))
		assert.Equal(t, "A-01", shelf.code)
	})

	t.Run("failed_constructor_returns_unconstructed_value", func(t *testing.T) {
		shelf, err := newShelf("")

		require.Error(t, err)
		assert.Equal(t, errShelfNotConstructed, shelf.guard.Validate(errShelfNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
