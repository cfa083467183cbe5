package services_test

import (
	"testing"
	"time"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var restoredAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newActor(t *testing.T, role workflow.Role) workflow.Actor {
	t.Helper()
	actor, err := workflow.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role workflow.Role) workflow.Actor {
	t.Helper()
	actor, err := workflow.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func productIn(t *testing.T, ownerID kernel.UUID, status product.Status) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), ownerID, product.Details{
		Name:      "Winter coat",
		Category:  "Clothes",
		Type:      "SALE",
		Condition: "GOOD",
	}, decimal.NewFromInt(25), status, product.Review{}, restoredAt)
	require.NoError(t, err)
	return p
}

func donateItemIn(t *testing.T, donorID kernel.UUID, status donateitem.Status) *donateitem.DonateItem {
	t.Helper()
	item, err := donateitem.RestoreDonateItem(kernel.NewUUID(), donorID, donateitem.Details{
		Type:          "Furniture",
		Name:          "Chair",
		Quantity:      2,
		Condition:     "USED",
		PickupAddress: "5 Elm Road",
	}, status, "", restoredAt, restoredAt)
	require.NoError(t, err)
	return item
}

func donateRequestIn(t *testing.T, itemID, requesterID kernel.UUID, status donaterequest.Status) *donaterequest.DonateRequest {
	t.Helper()
	r, err := donaterequest.RestoreDonateRequest(kernel.NewUUID(), itemID, requesterID, "for my kids",
		status, "", restoredAt, nil)
	require.NoError(t, err)
	return r
}

func exchangeRequestIn(t *testing.T, productID, requesterID kernel.UUID, status exchangerequest.Status) *exchangerequest.ExchangeRequest {
	t.Helper()
	r, err := exchangerequest.RestoreExchangeRequest(kernel.NewUUID(), productID, requesterID, exchangerequest.Offer{
		ItemName:   "Bike",
		Category:   "Sport",
		ImageCount: 1,
	}, status, "", restoredAt, nil)
	require.NoError(t, err)
	return r
}

func purchaseRequestIn(t *testing.T, productID, buyerID kernel.UUID, status purchaserequest.Status) *purchaserequest.PurchaseRequest {
	t.Helper()
	r, err := purchaserequest.RestorePurchaseRequest(kernel.NewUUID(), productID, buyerID, purchaserequest.Contact{
		FullName:        "Grace Buyer",
		Email:           "grace@example.com",
		Phone:           "+1 555 0100",
		ShippingAddress: "9 Oak Lane",
		PaymentMethod:   "CASH_ON_DELIVERY",
	}, decimal.NewFromInt(25), status, restoredAt, restoredAt)
	require.NoError(t, err)
	return r
}
