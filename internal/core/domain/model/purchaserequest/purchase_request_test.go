package purchaserequest_test

import (
	"fmt"
	"testing"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contact() purchaserequest.Contact {
	return purchaserequest.Contact{
		FullName:        "Ada Buyer",
		Email:           "ada@example.com",
		Phone:           "+44 20 7946 0000",
		ShippingAddress: "1 Main Street",
		PaymentMethod:   "CASH_ON_DELIVERY",
	}
}

func newPurchase(t *testing.T) *purchaserequest.PurchaseRequest {
	t.Helper()
	r, err := purchaserequest.NewPurchaseRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		contact(), decimal.RequireFromString("49.99"))
	require.NoError(t, err)
	return r
}

func TestNewPurchaseRequest(t *testing.T) {
	t.Run("should create pending purchase with amount snapshot", func(t *testing.T) {
		buyerID := kernel.NewUUID()
		amount := decimal.RequireFromString("49.99")

		r, err := purchaserequest.NewPurchaseRequest(kernel.NewUUID(), kernel.NewUUID(), buyerID, contact(), amount)

		require.NoError(t, err)
		assert.Equal(t, purchaserequest.Pending, r.Status())
		assert.True(t, r.IsBoughtBy(buyerID))
		assert.True(t, amount.Equal(r.Amount()))
	})

	t.Run("should validate contact", func(t *testing.T) {
		c := contact()
		c.Email = "not an email"
		c.Phone = ""

		_, err := purchaserequest.NewPurchaseRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			c, decimal.NewFromInt(1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		_, err := purchaserequest.NewPurchaseRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			contact(), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount is invalid")
	})
}

func TestRestorePurchaseRequest(t *testing.T) {
	at := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	r, err := purchaserequest.RestorePurchaseRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		contact(), decimal.NewFromInt(3), purchaserequest.Shipped, at, at)
	require.NoError(t, err)
	assert.Equal(t, purchaserequest.Shipped, r.Status())

	_, err = purchaserequest.RestorePurchaseRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		contact(), decimal.NewFromInt(3), purchaserequest.Status(6), at, at)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPurchaseRequest_ForwardOnly(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		r := newPurchase(t)
		amount := r.Amount()

		require.NoError(t, r.Confirm())
		require.NoError(t, r.Ship())
		require.NoError(t, r.Deliver())

		assert.Equal(t, purchaserequest.Delivered, r.Status())
		assert.True(t, amount.Equal(r.Amount()))
	})

	t.Run("skipping a step is refused", func(t *testing.T) {
		r := newPurchase(t)

		err := r.Ship()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, purchaserequest.Pending, r.Status())
	})

	t.Run("going backwards is refused", func(t *testing.T) {
		r := newPurchase(t)
		require.NoError(t, r.Confirm())
		require.NoError(t, r.Ship())

		require.ErrorIs(t, r.Confirm(), errs.ErrInvalidState)
		assert.Equal(t, purchaserequest.Shipped, r.Status())
	})
}

func TestStatus_Transitions(t *testing.T) {
	actions := map[string]func(purchaserequest.Status) (purchaserequest.Status, error){
		"confirm": purchaserequest.Status.Confirm,
		"ship":    purchaserequest.Status.Ship,
		"deliver": purchaserequest.Status.Deliver,
		"cancel":  purchaserequest.Status.Cancel,
	}

	allowed := map[purchaserequest.Status]map[string]purchaserequest.Status{
		purchaserequest.Pending:   {"confirm": purchaserequest.Confirmed, "cancel": purchaserequest.Cancelled},
		purchaserequest.Confirmed: {"ship": purchaserequest.Shipped, "cancel": purchaserequest.Cancelled},
		purchaserequest.Shipped:   {"deliver": purchaserequest.Delivered, "cancel": purchaserequest.Cancelled},
		purchaserequest.Delivered: {},
		purchaserequest.Cancelled: {},
	}

	for from, targets := range allowed {
		for name, action := range actions {
			t.Run(fmt.Sprintf("%s from %s", name, from), func(t *testing.T) {
				got, err := action(from)

				if expected, ok := targets[name]; ok {
					require.NoError(t, err)
					assert.Equal(t, expected, got)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidState)
			})
		}
	}

	_, err := purchaserequest.Unknown.Cancel()
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestParseStatus(t *testing.T) {
	for _, status := range purchaserequest.Statuses() {
		parsed, err := purchaserequest.ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := purchaserequest.ParseStatus("RETURNED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
