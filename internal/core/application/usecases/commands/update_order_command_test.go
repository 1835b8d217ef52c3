package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_AllFields(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	itemName := "Gadget"
	quantity := 5
	price := 19.99
	status := order.Cancelled

	cmd, err := commands.NewUpdateOrderCommand(orderID, userID, &itemName, &quantity, &price, &status)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.UserID().IsEqual(userID))
	require.NotNil(t, cmd.ItemName())
	assert.Equal(t, "Gadget", *cmd.ItemName())
	require.NotNil(t, cmd.Quantity())
	assert.Equal(t, 5, *cmd.Quantity())
	require.NotNil(t, cmd.Price())
	assert.InDelta(t, 19.99, *cmd.Price(), 0.0001)
	require.NotNil(t, cmd.Status())
	assert.Equal(t, order.Cancelled, *cmd.Status())
}

func TestNewUpdateOrderCommand_NoFieldsIsValid(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.ItemName())
	assert.Nil(t, cmd.Quantity())
	assert.Nil(t, cmd.Price())
	assert.Nil(t, cmd.Status())
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	var orderID kernel.UUID

	_, err := commands.NewUpdateOrderCommand(orderID, kernel.NewUUID(), nil, nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_InvalidUserID(t *testing.T) {
	var userID kernel.UUID

	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), userID, nil, nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_UnknownStatus(t *testing.T) {
	status := order.Unknown

	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, &status)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
