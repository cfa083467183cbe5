package donaterequest_test

import (
	"testing"
	"time"

	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDonateRequest(t *testing.T) {
	t.Run("should create pending request", func(t *testing.T) {
		itemID := kernel.NewUUID()
		requesterID := kernel.NewUUID()

		r, err := donaterequest.NewDonateRequest(kernel.NewUUID(), itemID, requesterID, " for the shelter ")

		require.NoError(t, err)
		assert.Equal(t, donaterequest.Pending, r.Status())
		assert.True(t, itemID.IsEqual(r.ItemID()))
		assert.True(t, r.IsRequestedBy(requesterID))
		assert.Equal(t, "for the shelter", r.Description())
		assert.Nil(t, r.ResolvedAt())
	})

	t.Run("should require item and requester", func(t *testing.T) {
		_, err := donaterequest.NewDonateRequest(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "donate item")
		assert.Contains(t, err.Error(), "requester")
	})
}

func TestRestoreDonateRequest(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	r, err := donaterequest.RestoreDonateRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", donaterequest.Rejected, "already given away", at, &at)

	require.NoError(t, err)
	assert.Equal(t, donaterequest.Rejected, r.Status())
	assert.Equal(t, "already given away", r.RejectionReason())

	_, err = donaterequest.RestoreDonateRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", donaterequest.Status(7), "", at, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDonateRequest_Decisions(t *testing.T) {
	newRequest := func(t *testing.T) *donaterequest.DonateRequest {
		r, err := donaterequest.NewDonateRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")
		require.NoError(t, err)
		return r
	}

	t.Run("approve pending", func(t *testing.T) {
		r := newRequest(t)

		require.NoError(t, r.Approve())

		assert.Equal(t, donaterequest.Approved, r.Status())
		assert.NotNil(t, r.ResolvedAt())
	})

	t.Run("reject pending", func(t *testing.T) {
		r := newRequest(t)

		require.NoError(t, r.Reject("no longer needed"))

		assert.Equal(t, donaterequest.Rejected, r.Status())
		assert.Equal(t, "no longer needed", r.RejectionReason())
	})

	t.Run("decided requests are final", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.Approve())

		require.ErrorIs(t, r.Approve(), errs.ErrInvalidState)
		require.ErrorIs(t, r.Reject(""), errs.ErrInvalidState)
		assert.Equal(t, donaterequest.Approved, r.Status())
	})
}

func TestStatus_Rules(t *testing.T) {
	assert.True(t, donaterequest.Pending.IsActive())
	assert.True(t, donaterequest.Approved.IsActive())
	assert.False(t, donaterequest.Rejected.IsActive())

	require.NoError(t, donaterequest.Pending.ValidateCancel())
	require.ErrorIs(t, donaterequest.Approved.ValidateCancel(), errs.ErrInvalidState)
	require.ErrorIs(t, donaterequest.Rejected.ValidateCancel(), errs.ErrInvalidState)

	for _, status := range donaterequest.Statuses() {
		parsed, err := donaterequest.ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}
