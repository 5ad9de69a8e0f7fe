package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustLine(t *testing.T, price string, quantity int) *order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, price))
	require.NoError(t, err)
	return line
}

func mustAddressRef(t *testing.T) order.AddressReference {
	t.Helper()
	ref, err := order.NewAddressReference(kernel.NewUUID())
	require.NoError(t, err)
	return ref
}

func mustSnapshot(t *testing.T) order.AddressSnapshot {
	t.Helper()
	snap, err := order.NewAddressSnapshot("Rua das Flores", "123", "Centro", "apt 4")
	require.NoError(t, err)
	return snap
}

func mustPayment(t *testing.T, method order.PaymentMethod) order.Payment {
	t.Helper()
	p, err := order.NewPayment(method, nil)
	require.NoError(t, err)
	return p
}

func TestNewCustomerOrder(t *testing.T) {
	t.Run("creates_pending_order_with_computed_total", func(t *testing.T) {
		customerID := kernel.NewUUID()
		lines := []*order.Line{mustLine(t, "49.90", 2)}

		o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, mustAddressRef(t), lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		require.NotNil(t, o.CustomerID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Nil(t, o.Payment())
		assert.True(t, o.Total().IsEqual(mustMoney(t, "99.80")))
	})

	t.Run("total_sums_multiple_lines_rounded_to_two_decimals", func(t *testing.T) {
		lines := []*order.Line{
			mustLine(t, "10.555", 1),
			mustLine(t, "0.10", 3),
		}

		o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), mustAddressRef(t), lines)

		require.NoError(t, err)
		// 10.555 + 0.30 = 10.855 -> 10.86
		assert.True(t, o.Total().IsEqual(mustMoney(t, "10.86")))
	})

	t.Run("rejects_empty_lines", func(t *testing.T) {
		_, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), mustAddressRef(t), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unconstructed_destination", func(t *testing.T) {
		_, err := order.NewCustomerOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.AddressReference{},
			[]*order.Line{mustLine(t, "1.00", 1)})

		require.Error(t, err)
	})
}

func TestNewGuestOrder(t *testing.T) {
	t.Run("creates_order_without_owner", func(t *testing.T) {
		changeFor := mustMoney(t, "100.00")
		payment, err := order.NewPayment(order.Cash, &changeFor)
		require.NoError(t, err)

		o, err := order.NewGuestOrder(
			kernel.NewUUID(), mustSnapshot(t), "Maria", "11999990000", payment,
			[]*order.Line{mustLine(t, "25.00", 1)})

		require.NoError(t, err)
		assert.Nil(t, o.CustomerID())
		assert.Equal(t, "Maria", o.CustomerName())
		assert.Equal(t, "11999990000", o.Phone())
		require.NotNil(t, o.Payment())
		assert.Equal(t, order.Cash, o.Payment().Method())
		require.NotNil(t, o.Payment().ChangeFor())
		assert.True(t, o.Payment().ChangeFor().IsEqual(changeFor))

		snap, ok := o.Destination().(order.AddressSnapshot)
		require.True(t, ok)
		assert.Equal(t, "Rua das Flores", snap.Street())
		assert.Equal(t, "123", snap.Number())
		assert.Equal(t, "Centro", snap.District())
		assert.Equal(t, "apt 4", snap.Complement())
	})

	t.Run("requires_contact_details", func(t *testing.T) {
		lines := []*order.Line{mustLine(t, "25.00", 1)}

		_, err := order.NewGuestOrder(
			kernel.NewUUID(), mustSnapshot(t), "", "11999990000", mustPayment(t, order.Pix), lines)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewGuestOrder(
			kernel.NewUUID(), mustSnapshot(t), "Maria", "", mustPayment(t, order.Pix), lines)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_lines", func(t *testing.T) {
		_, err := order.NewGuestOrder(
			kernel.NewUUID(), mustSnapshot(t), "Maria", "11999990000", mustPayment(t, order.Card), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewCustomerOrder(
			kernel.NewUUID(), kernel.NewUUID(), mustAddressRef(t),
			[]*order.Line{mustLine(t, "10.00", 1)})
		require.NoError(t, err)
		return o
	}

	t.Run("walks_the_happy_path", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_disallowed_transition_and_keeps_status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))

		err := o.ChangeStatus(order.Canceled)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("rejects_self_transition", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ChangeStatus(order.Pending)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_ReplaceLines(t *testing.T) {
	t.Run("recomputes_total_from_new_snapshots", func(t *testing.T) {
		o, err := order.NewCustomerOrder(
			kernel.NewUUID(), kernel.NewUUID(), mustAddressRef(t),
			[]*order.Line{mustLine(t, "10.00", 1)})
		require.NoError(t, err)

		require.NoError(t, o.ReplaceLines([]*order.Line{mustLine(t, "15.50", 2)}))

		assert.True(t, o.Total().IsEqual(mustMoney(t, "31.00")))
		require.Len(t, o.Lines(), 1)
	})

	t.Run("rejects_empty_replacement", func(t *testing.T) {
		o, err := order.NewCustomerOrder(
			kernel.NewUUID(), kernel.NewUUID(), mustAddressRef(t),
			[]*order.Line{mustLine(t, "10.00", 1)})
		require.NoError(t, err)

		err = o.ReplaceLines(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.True(t, o.Total().IsEqual(mustMoney(t, "10.00")))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_order_as_written", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		ref := mustAddressRef(t)
		lines := []*order.Line{mustLine(t, "20.00", 2)}

		o, err := order.RestoreOrder(
			id, &customerID, ref, order.Preparing, "", "", nil,
			mustMoney(t, "40.00"), lines)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Preparing, o.Status())
		assert.True(t, o.Total().IsEqual(mustMoney(t, "40.00")))
	})

	t.Run("rejects_missing_destination", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), nil, nil, order.Pending, "", "", nil,
			mustMoney(t, "1.00"), []*order.Line{mustLine(t, "1.00", 1)})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), nil, mustSnapshot(t), order.Unknown, "Maria", "11999990000", nil,
			mustMoney(t, "1.00"), []*order.Line{mustLine(t, "1.00", 1)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentMethodFromString(t *testing.T) {
	for _, method := range []order.PaymentMethod{order.Cash, order.Card, order.Pix} {
		parsed, err := order.PaymentMethodFromString(method.String())
		require.NoError(t, err)
		assert.Equal(t, method, parsed)
	}

	_, err := order.PaymentMethodFromString("CHECK")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
