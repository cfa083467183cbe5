package services_test

import (
	"testing"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionValidator_ValidateProduct(t *testing.T) {
	validator := services.NewTransitionValidator()
	admin := newActor(t, workflow.Admin)

	t.Run("admin may approve and reject pending listing", func(t *testing.T) {
		p := productIn(t, kernel.NewUUID(), product.Pending)

		require.NoError(t, validator.ValidateProduct(p, admin, workflow.Approve))
		require.NoError(t, validator.ValidateProduct(p, admin, workflow.Reject))
		assert.Equal(t, product.Pending, p.Status(), "validator must not mutate")
	})

	t.Run("owner is forbidden before state is checked", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		p := productIn(t, ownerID, product.Sold)

		err := validator.ValidateProduct(p, actorWithID(t, ownerID, workflow.User), workflow.Approve)

		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NotErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("approving a decided listing is invalid", func(t *testing.T) {
		for _, status := range []product.Status{product.Approved, product.Rejected, product.Sold} {
			err := validator.ValidateProduct(productIn(t, kernel.NewUUID(), status), admin, workflow.Approve)
			require.ErrorIs(t, err, errs.ErrInvalidState, status.String())
		}
	})

	t.Run("unsupported action is invalid", func(t *testing.T) {
		err := validator.ValidateProduct(productIn(t, kernel.NewUUID(), product.Approved), admin, workflow.Ship)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unconstructed product", func(t *testing.T) {
		err := validator.ValidateProduct(&product.Product{}, admin, workflow.Approve)
		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestTransitionValidator_ValidateDonateItem(t *testing.T) {
	validator := services.NewTransitionValidator()
	admin := newActor(t, workflow.Admin)
	donorID := kernel.NewUUID()
	donor := actorWithID(t, donorID, workflow.User)

	t.Run("review by admin only", func(t *testing.T) {
		item := donateItemIn(t, donorID, donateitem.Pending)

		require.NoError(t, validator.ValidateDonateItem(item, admin, workflow.Approve))
		require.ErrorIs(t, validator.ValidateDonateItem(item, donor, workflow.Reject), errs.ErrForbidden)
	})

	t.Run("donor may delete pending or rejected items", func(t *testing.T) {
		for _, status := range []donateitem.Status{donateitem.Pending, donateitem.Rejected} {
			require.NoError(t, validator.ValidateDonateItem(donateItemIn(t, donorID, status), donor, workflow.Delete))
		}
		for _, status := range []donateitem.Status{donateitem.Approved, donateitem.Claimed} {
			err := validator.ValidateDonateItem(donateItemIn(t, donorID, status), donor, workflow.Delete)
			require.ErrorIs(t, err, errs.ErrInvalidState, status.String())
		}
	})

	t.Run("another user may not delete", func(t *testing.T) {
		item := donateItemIn(t, donorID, donateitem.Pending)

		err := validator.ValidateDonateItem(item, newActor(t, workflow.User), workflow.Delete)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestTransitionValidator_ValidateDonateRequest(t *testing.T) {
	validator := services.NewTransitionValidator()
	admin := newActor(t, workflow.Admin)
	requesterID := kernel.NewUUID()
	requester := actorWithID(t, requesterID, workflow.User)

	t.Run("admin decides pending request", func(t *testing.T) {
		r := donateRequestIn(t, kernel.NewUUID(), requesterID, donaterequest.Pending)

		require.NoError(t, validator.ValidateDonateRequest(r, admin, workflow.Approve))
		require.NoError(t, validator.ValidateDonateRequest(r, admin, workflow.Reject))
	})

	t.Run("requester cannot approve own request", func(t *testing.T) {
		r := donateRequestIn(t, kernel.NewUUID(), requesterID, donaterequest.Pending)

		err := validator.ValidateDonateRequest(r, requester, workflow.Approve)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("requester may cancel only while pending", func(t *testing.T) {
		pending := donateRequestIn(t, kernel.NewUUID(), requesterID, donaterequest.Pending)
		approved := donateRequestIn(t, kernel.NewUUID(), requesterID, donaterequest.Approved)

		require.NoError(t, validator.ValidateDonateRequest(pending, requester, workflow.Cancel))
		require.ErrorIs(t, validator.ValidateDonateRequest(approved, requester, workflow.Cancel), errs.ErrInvalidState)
		require.ErrorIs(t, validator.ValidateDonateRequest(pending, admin, workflow.Cancel), errs.ErrForbidden)
	})
}

func TestTransitionValidator_ValidateExchangeRequest(t *testing.T) {
	validator := services.NewTransitionValidator()
	ownerID := kernel.NewUUID()
	owner := actorWithID(t, ownerID, workflow.User)
	requesterID := kernel.NewUUID()
	requester := actorWithID(t, requesterID, workflow.User)
	admin := newActor(t, workflow.Admin)

	target := productIn(t, ownerID, product.Approved)

	t.Run("owner or admin decides", func(t *testing.T) {
		r := exchangeRequestIn(t, target.ID(), requesterID, exchangerequest.Pending)

		require.NoError(t, validator.ValidateExchangeRequest(r, target, owner, workflow.Approve))
		require.NoError(t, validator.ValidateExchangeRequest(r, target, admin, workflow.Reject))
	})

	t.Run("stranger and requester are forbidden to decide", func(t *testing.T) {
		r := exchangeRequestIn(t, target.ID(), requesterID, exchangerequest.Approved)

		err := validator.ValidateExchangeRequest(r, target, newActor(t, workflow.User), workflow.Approve)
		require.ErrorIs(t, err, errs.ErrForbidden)

		err = validator.ValidateExchangeRequest(r, target, requester, workflow.Reject)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("decided request cannot be decided again", func(t *testing.T) {
		r := exchangeRequestIn(t, target.ID(), requesterID, exchangerequest.Rejected)

		err := validator.ValidateExchangeRequest(r, target, owner, workflow.Approve)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("requester cancels pending", func(t *testing.T) {
		r := exchangeRequestIn(t, target.ID(), requesterID, exchangerequest.Pending)

		require.NoError(t, validator.ValidateExchangeRequest(r, target, requester, workflow.Cancel))
		require.ErrorIs(t, validator.ValidateExchangeRequest(r, target, owner, workflow.Cancel), errs.ErrForbidden)
	})

	t.Run("admin deletes in any status", func(t *testing.T) {
		for _, status := range exchangerequest.Statuses() {
			r := exchangeRequestIn(t, target.ID(), requesterID, status)
			require.NoError(t, validator.ValidateExchangeRequest(r, target, admin, workflow.Delete))
			require.ErrorIs(t, validator.ValidateExchangeRequest(r, target, owner, workflow.Delete), errs.ErrForbidden)
		}
	})
}

func TestTransitionValidator_ValidatePurchaseRequest(t *testing.T) {
	validator := services.NewTransitionValidator()
	sellerID := kernel.NewUUID()
	seller := actorWithID(t, sellerID, workflow.User)
	buyerID := kernel.NewUUID()
	buyer := actorWithID(t, buyerID, workflow.User)
	target := productIn(t, sellerID, product.Approved)

	t.Run("buyer and seller may step forward", func(t *testing.T) {
		r := purchaseRequestIn(t, target.ID(), buyerID, purchaserequest.Pending)

		require.NoError(t, validator.ValidatePurchaseRequest(r, target, seller, workflow.Confirm))
		require.NoError(t, validator.ValidatePurchaseRequest(r, target, buyer, workflow.Confirm))
	})

	t.Run("skipping ahead is invalid", func(t *testing.T) {
		r := purchaseRequestIn(t, target.ID(), buyerID, purchaserequest.Pending)

		err := validator.ValidatePurchaseRequest(r, target, seller, workflow.Deliver)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("terminal purchase is frozen", func(t *testing.T) {
		for _, status := range []purchaserequest.Status{purchaserequest.Delivered, purchaserequest.Cancelled} {
			r := purchaseRequestIn(t, target.ID(), buyerID, status)
			require.ErrorIs(t, validator.ValidatePurchaseRequest(r, target, buyer, workflow.Cancel), errs.ErrInvalidState)
		}
	})

	t.Run("third party is forbidden even for admin", func(t *testing.T) {
		r := purchaseRequestIn(t, target.ID(), buyerID, purchaserequest.Shipped)

		err := validator.ValidatePurchaseRequest(r, target, newActor(t, workflow.Admin), workflow.Deliver)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("approve is not a purchase action", func(t *testing.T) {
		r := purchaseRequestIn(t, target.ID(), buyerID, purchaserequest.Pending)

		err := validator.ValidatePurchaseRequest(r, target, buyer, workflow.Approve)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestTransitionValidator_CreationChecks(t *testing.T) {
	validator := services.NewTransitionValidator()
	ownerID := kernel.NewUUID()
	owner := actorWithID(t, ownerID, workflow.User)
	user := newActor(t, workflow.User)

	t.Run("donate request needs approved item", func(t *testing.T) {
		require.NoError(t, validator.ValidateNewDonateRequest(donateItemIn(t, ownerID, donateitem.Approved), user, false))

		err := validator.ValidateNewDonateRequest(donateItemIn(t, ownerID, donateitem.Claimed), user, false)
		require.ErrorIs(t, err, errs.ErrTargetUnavailable)
	})

	t.Run("second active donate request is a duplicate", func(t *testing.T) {
		err := validator.ValidateNewDonateRequest(donateItemIn(t, ownerID, donateitem.Approved), user, true)

		require.ErrorIs(t, err, errs.ErrDuplicateRequest)
	})

	t.Run("exchange and purchase need approved product from someone else", func(t *testing.T) {
		approved := productIn(t, ownerID, product.Approved)
		sold := productIn(t, ownerID, product.Sold)

		require.NoError(t, validator.ValidateNewExchangeRequest(approved, user))
		require.NoError(t, validator.ValidateNewPurchaseRequest(approved, user))

		require.ErrorIs(t, validator.ValidateNewExchangeRequest(sold, user), errs.ErrTargetUnavailable)
		require.ErrorIs(t, validator.ValidateNewPurchaseRequest(sold, user), errs.ErrTargetUnavailable)

		require.ErrorIs(t, validator.ValidateNewExchangeRequest(approved, owner), errs.ErrForbidden)
		require.ErrorIs(t, validator.ValidateNewPurchaseRequest(approved, owner), errs.ErrForbidden)
	})
}
