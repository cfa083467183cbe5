package product_test

import (
	"fmt"
	"testing"

	"careshare/internal/core/domain/model/product"
	"careshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(product.Unknown))
	assert.Equal(t, 1, int(product.Pending))
	assert.Equal(t, 2, int(product.Approved))
	assert.Equal(t, 3, int(product.Rejected))
	assert.Equal(t, 4, int(product.Sold))
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range product.Statuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []product.Status{product.Unknown, product.Status(-1), product.Status(5)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse names case-insensitively", func(t *testing.T) {
		status, err := product.ParseStatus(" approved ")

		require.NoError(t, err)
		assert.Equal(t, product.Approved, status)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := product.ParseStatus("ARCHIVED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should round trip every status", func(t *testing.T) {
		for _, status := range product.Statuses() {
			parsed, err := product.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(product.Status) (product.Status, error)

	approve := func(s product.Status) (product.Status, error) { return s.Approve() }
	reject := func(s product.Status) (product.Status, error) { return s.Reject() }
	sell := func(s product.Status) (product.Status, error) { return s.Sell() }

	testCases := []struct {
		name     string
		from     product.Status
		apply    transition
		expected product.Status
		allowed  bool
	}{
		{"approve pending", product.Pending, approve, product.Approved, true},
		{"approve approved", product.Approved, approve, 0, false},
		{"approve rejected", product.Rejected, approve, 0, false},
		{"approve sold", product.Sold, approve, 0, false},
		{"reject pending", product.Pending, reject, product.Rejected, true},
		{"reject approved", product.Approved, reject, 0, false},
		{"reject sold", product.Sold, reject, 0, false},
		{"sell approved", product.Approved, sell, product.Sold, true},
		{"sell pending", product.Pending, sell, 0, false},
		{"sell sold", product.Sold, sell, 0, false},
		{"sell rejected", product.Rejected, sell, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.apply(tc.from)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Equal(t, product.Unknown, got)
		})
	}
}

func TestStatus_ValidateAcceptsRequests(t *testing.T) {
	require.NoError(t, product.Approved.ValidateAcceptsRequests())

	for _, status := range []product.Status{product.Pending, product.Rejected, product.Sold} {
		require.ErrorIs(t, status.ValidateAcceptsRequests(), errs.ErrInvalidState, status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, product.Pending.IsTerminal())
	assert.False(t, product.Approved.IsTerminal())
	assert.True(t, product.Rejected.IsTerminal())
	assert.True(t, product.Sold.IsTerminal())
}
