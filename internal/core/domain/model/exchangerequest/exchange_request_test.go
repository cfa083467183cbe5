package exchangerequest_test

import (
	"testing"
	"time"

	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer() exchangerequest.Offer {
	return exchangerequest.Offer{
		ItemName:    "Acoustic guitar",
		Category:    "Music",
		Description: " barely used ",
		ImageCount:  2,
		Message:     "Happy to meet downtown",
	}
}

func TestNewExchangeRequest(t *testing.T) {
	t.Run("should create pending request", func(t *testing.T) {
		productID := kernel.NewUUID()
		requesterID := kernel.NewUUID()

		r, err := exchangerequest.NewExchangeRequest(kernel.NewUUID(), productID, requesterID, offer())

		require.NoError(t, err)
		assert.Equal(t, exchangerequest.Pending, r.Status())
		assert.True(t, productID.IsEqual(r.ProductID()))
		assert.True(t, r.IsRequestedBy(requesterID))
		assert.Equal(t, "barely used", r.Offer().Description)
	})

	t.Run("should bound image count", func(t *testing.T) {
		for _, count := range []int{0, 13} {
			o := offer()
			o.ImageCount = count

			_, err := exchangerequest.NewExchangeRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), o)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}

		for _, count := range []int{exchangerequest.MinImages, exchangerequest.MaxImages} {
			o := offer()
			o.ImageCount = count

			_, err := exchangerequest.NewExchangeRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), o)

			require.NoError(t, err)
		}
	})

	t.Run("should require item fields", func(t *testing.T) {
		_, err := exchangerequest.NewExchangeRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			exchangerequest.Offer{ImageCount: 1})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "exchange item name")
		assert.Contains(t, err.Error(), "exchange item category")
	})
}

func TestRestoreExchangeRequest(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	r, err := exchangerequest.RestoreExchangeRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		exchangerequest.Offer{ItemName: "legacy"}, exchangerequest.Approved, "", at, &at)

	require.NoError(t, err)
	assert.Equal(t, exchangerequest.Approved, r.Status())

	_, err = exchangerequest.RestoreExchangeRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		offer(), exchangerequest.Unknown, "", at, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestExchangeRequest_Decisions(t *testing.T) {
	newRequest := func(t *testing.T) *exchangerequest.ExchangeRequest {
		r, err := exchangerequest.NewExchangeRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), offer())
		require.NoError(t, err)
		return r
	}

	t.Run("approve", func(t *testing.T) {
		r := newRequest(t)

		require.NoError(t, r.Approve())
		assert.Equal(t, exchangerequest.Approved, r.Status())
		assert.NotNil(t, r.ResolvedAt())
		require.ErrorIs(t, r.Status().ValidateCancel(), errs.ErrInvalidState)
	})

	t.Run("reject", func(t *testing.T) {
		r := newRequest(t)

		require.NoError(t, r.Reject("not interested"))
		assert.Equal(t, exchangerequest.Rejected, r.Status())
		assert.Equal(t, "not interested", r.RejectionReason())
		require.ErrorIs(t, r.Approve(), errs.ErrInvalidState)
	})

	t.Run("pending can be cancelled", func(t *testing.T) {
		require.NoError(t, newRequest(t).Status().ValidateCancel())
	})
}
