package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates_money_from_non_negative_decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(49.90))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "49.90", m.String())
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses_decimal_string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.55")

		require.NoError(t, err)
		assert.Equal(t, "10.55", m.String())
	})

	t.Run("rejects_malformed_string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten bucks")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-5.00")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("mul_int_and_round_has_no_float_drift", func(t *testing.T) {
		price, err := kernel.MoneyFromString("49.90")
		require.NoError(t, err)

		total := price.MulInt(2).Round()

		expected, err := kernel.MoneyFromString("99.80")
		require.NoError(t, err)
		assert.True(t, total.IsEqual(expected))
		assert.Equal(t, "99.80", total.String())
	})

	t.Run("add_accumulates_subtotals", func(t *testing.T) {
		a, err := kernel.MoneyFromString("0.10")
		require.NoError(t, err)
		b, err := kernel.MoneyFromString("0.20")
		require.NoError(t, err)

		sum := a.Add(b)

		expected, err := kernel.MoneyFromString("0.30")
		require.NoError(t, err)
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("round_uses_standard_half_away_rounding", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")
		require.NoError(t, err)

		assert.Equal(t, "10.01", m.Round().String())
	})
}

func TestZeroMoney(t *testing.T) {
	m := kernel.ZeroMoney()

	require.NoError(t, m.Validate())
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_money_fails_validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
		require.ErrorIs(t, m.Validate(), errs.ErrValueIsRequired)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("numeric_equality_ignores_trailing_zeros", func(t *testing.T) {
		a, err := kernel.MoneyFromString("99.8")
		require.NoError(t, err)
		b, err := kernel.MoneyFromString("99.80")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})
}
