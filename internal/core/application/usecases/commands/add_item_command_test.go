package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(id, 42, "notebook", 3.5, 2)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, product.ID(42), cmd.ProductID())
	assert.Equal(t, "notebook", cmd.ProductName())
	assert.InDelta(t, 3.5, cmd.Price(), 0)
	assert.Equal(t, 2, cmd.Quantity())
}

func TestNewAddItemCommand_KeepsInvalidPriceAndQuantity(t *testing.T) {
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), 1, "", -1, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, cmd.Price(), 0)
	assert.Equal(t, 0, cmd.Quantity())
}

func TestNewAddItemCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAddItemCommand(kernel.UUID{}, 1, "pen", 1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAddItemCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddItemCommand
	assert.Equal(t, commands.ErrAddItemCommandIsNotConstructed, cmd.Validate())
}
