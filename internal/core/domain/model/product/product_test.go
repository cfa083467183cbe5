package product_test

import (
	"testing"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() product.Details {
	return product.Details{
		Name:        "Road bike",
		Category:    "Sports",
		Type:        "SALE",
		Condition:   "USED",
		Description: "Two seasons old",
	}
}

func TestNewProduct(t *testing.T) {
	ownerID := kernel.NewUUID()
	price := decimal.RequireFromString("120.50")

	t.Run("should create pending product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, ownerID, validDetails(), price)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(p.ID()))
		assert.True(t, p.IsOwnedBy(ownerID))
		assert.Equal(t, product.Pending, p.Status())
		assert.True(t, price.Equal(p.Price()))
		assert.False(t, p.CreatedAt().IsZero())
		assert.Nil(t, p.Review().ApprovedAt)
		require.NoError(t, p.Validate())
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, kernel.UUID{}, validDetails(), price)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "owner")
	})

	t.Run("should fail with missing details", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), ownerID, product.Details{Name: " "}, price)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"name", "category", "type", "condition"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should fail with non-positive price", func(t *testing.T) {
		for _, p := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
			_, err := product.NewProduct(kernel.NewUUID(), ownerID, validDetails(), p)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "price is invalid")
		}
	})
}

func TestRestoreProduct(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should restore persisted state", func(t *testing.T) {
		approvedAt := createdAt.Add(time.Hour)

		p, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), validDetails(),
			decimal.NewFromInt(10), product.Sold, product.Review{ApprovedAt: &approvedAt}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, product.Sold, p.Status())
		assert.Equal(t, createdAt, p.CreatedAt())
		assert.Equal(t, approvedAt, *p.Review().ApprovedAt)
	})

	t.Run("should refuse unknown persisted status", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), validDetails(),
			decimal.NewFromInt(10), product.Status(42), product.Review{}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Validate(t *testing.T) {
	var nilProduct *product.Product
	assert.Equal(t, product.ErrProductIsNotConstructed, nilProduct.Validate())
	assert.Equal(t, product.ErrProductIsNotConstructed, (&product.Product{}).Validate())
}

func TestProduct_Review(t *testing.T) {
	newProduct := func(t *testing.T) *product.Product {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), validDetails(), decimal.NewFromInt(5))
		require.NoError(t, err)
		return p
	}

	t.Run("should approve pending product", func(t *testing.T) {
		p := newProduct(t)

		require.NoError(t, p.Approve())

		assert.Equal(t, product.Approved, p.Status())
		require.NotNil(t, p.Review().ApprovedAt)
		assert.Nil(t, p.Review().RejectedAt)
	})

	t.Run("should reject pending product with reason", func(t *testing.T) {
		p := newProduct(t)

		require.NoError(t, p.Reject("  blurry photos "))

		assert.Equal(t, product.Rejected, p.Status())
		require.NotNil(t, p.Review().RejectedAt)
		assert.Equal(t, "blurry photos", p.Review().RejectionReason)
	})

	t.Run("should leave state untouched when transition is refused", func(t *testing.T) {
		p := newProduct(t)
		require.NoError(t, p.Reject(""))

		err := p.Approve()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, product.Rejected, p.Status())
	})

	t.Run("should sell approved product once", func(t *testing.T) {
		p := newProduct(t)
		require.NoError(t, p.Approve())

		require.NoError(t, p.Sell())
		assert.Equal(t, product.Sold, p.Status())

		require.ErrorIs(t, p.Sell(), errs.ErrInvalidState)
	})
}
