package services_test

import (
	"testing"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeResolver_Resolve(t *testing.T) {
	resolver := services.NewCascadeResolver()

	testCases := []struct {
		name       string
		transition workflow.Transition
		expected   []services.Cascade
	}{
		{
			name:       "approved donate request claims item",
			transition: workflow.Transition{Kind: workflow.DonateRequest, From: "PENDING", To: "APPROVED"},
			expected:   []services.Cascade{{Target: workflow.DonateItem, Effect: services.ClaimDonateItem}},
		},
		{
			name:       "rejected donate request has no cascade",
			transition: workflow.Transition{Kind: workflow.DonateRequest, From: "PENDING", To: "REJECTED"},
		},
		{
			name:       "delivered purchase sells product",
			transition: workflow.Transition{Kind: workflow.PurchaseRequest, From: "SHIPPED", To: "DELIVERED"},
			expected:   []services.Cascade{{Target: workflow.Product, Effect: services.SellProduct}},
		},
		{
			name:       "shipped purchase has no cascade",
			transition: workflow.Transition{Kind: workflow.PurchaseRequest, From: "CONFIRMED", To: "SHIPPED"},
		},
		{
			name:       "accepted exchange has no cascade",
			transition: workflow.Transition{Kind: workflow.ExchangeRequest, From: "PENDING", To: "APPROVED"},
		},
		{
			name:       "approved product has no cascade",
			transition: workflow.Transition{Kind: workflow.Product, From: "PENDING", To: "APPROVED"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.Resolve(tc.transition)
			if tc.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCascadeResolver_ApplyToDonateItem(t *testing.T) {
	resolver := services.NewCascadeResolver()
	claim := services.Cascade{Target: workflow.DonateItem, Effect: services.ClaimDonateItem}

	t.Run("claims approved item", func(t *testing.T) {
		item := donateItemIn(t, kernel.NewUUID(), donateitem.Approved)

		transition, err := resolver.ApplyToDonateItem(item, claim)

		require.NoError(t, err)
		assert.Equal(t, donateitem.Claimed, item.Status())
		assert.Equal(t, workflow.DonateItem, transition.Kind)
		assert.Equal(t, "APPROVED", transition.From)
		assert.Equal(t, "CLAIMED", transition.To)
		assert.True(t, item.ID().IsEqual(transition.EntityID))
	})

	t.Run("already claimed item is unavailable", func(t *testing.T) {
		item := donateItemIn(t, kernel.NewUUID(), donateitem.Claimed)

		_, err := resolver.ApplyToDonateItem(item, claim)

		require.ErrorIs(t, err, errs.ErrTargetUnavailable)
		assert.Equal(t, donateitem.Claimed, item.Status())
	})

	t.Run("wrong effect", func(t *testing.T) {
		item := donateItemIn(t, kernel.NewUUID(), donateitem.Approved)

		_, err := resolver.ApplyToDonateItem(item, services.Cascade{Target: workflow.Product, Effect: services.SellProduct})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, donateitem.Approved, item.Status())
	})
}

func TestCascadeResolver_ApplyToProduct(t *testing.T) {
	resolver := services.NewCascadeResolver()
	sell := services.Cascade{Target: workflow.Product, Effect: services.SellProduct}

	t.Run("sells approved product", func(t *testing.T) {
		p := productIn(t, kernel.NewUUID(), product.Approved)

		transition, err := resolver.ApplyToProduct(p, sell)

		require.NoError(t, err)
		assert.Equal(t, product.Sold, p.Status())
		assert.Equal(t, "SOLD", transition.To)
	})

	t.Run("sold product fails the delivery", func(t *testing.T) {
		for _, status := range []product.Status{product.Sold, product.Pending, product.Rejected} {
			_, err := resolver.ApplyToProduct(productIn(t, kernel.NewUUID(), status), sell)
			require.ErrorIs(t, err, errs.ErrTargetUnavailable, status.String())
		}
	})
}
