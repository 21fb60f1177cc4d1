package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item without validating price or quantity", func(t *testing.T) {
		p := product.NewProduct(1, "pen")

		item, err := order.NewItem(p, -3, 0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Same(t, p, item.Product())
		assert.InDelta(t, -3.0, item.Price(), 0)
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should fail without product", func(t *testing.T) {
		item, err := order.NewItem(nil, 10, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
		assert.Nil(t, item)
	})
}

func TestItem_SetQuantity(t *testing.T) {
	item, err := order.NewItem(product.NewProduct(1, "pen"), 10, 1)
	require.NoError(t, err)

	item.SetQuantity(7)

	assert.Equal(t, 7, item.Quantity())
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for nil item", func(t *testing.T) {
		var item *order.Item

		assert.Equal(t, order.ErrItemIsNotConstructed, item.Validate())
	})

	t.Run("should fail for zero value item", func(t *testing.T) {
		assert.Equal(t, order.ErrItemIsNotConstructed, (&order.Item{}).Validate())
	})
}
