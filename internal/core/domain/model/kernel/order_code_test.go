package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCode(t *testing.T) {
	t.Run("should create code from positive sequence", func(t *testing.T) {
		code, err := kernel.NewOrderCode(1001)

		require.NoError(t, err)
		assert.Equal(t, "ORD-1001", code.String())
		assert.NoError(t, code.Validate())
	})

	t.Run("should reject zero sequence", func(t *testing.T) {
		_, err := kernel.NewOrderCode(0)

		require.Error(t, err)
	})

	t.Run("should reject negative sequence", func(t *testing.T) {
		_, err := kernel.NewOrderCode(-5)

		require.Error(t, err)
	})
}

func TestOrderCodeFromString(t *testing.T) {
	t.Run("should parse canonical code", func(t *testing.T) {
		code, err := kernel.OrderCodeFromString("ORD-42")

		require.NoError(t, err)
		assert.Equal(t, "ORD-42", code.String())
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		invalid := []string{"", "ORD-", "ORD-0", "ORD-01", "42", "ord-42", "ORD-4x2"}

		for _, s := range invalid {
			_, err := kernel.OrderCodeFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestOrderCode_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var code kernel.OrderCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderCodeIsNotConstructed, err)
	})
}

func TestOrderCode_IsEqual(t *testing.T) {
	a, err := kernel.NewOrderCode(7)
	require.NoError(t, err)
	b, err := kernel.OrderCodeFromString("ORD-7")
	require.NoError(t, err)
	c, err := kernel.NewOrderCode(8)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
