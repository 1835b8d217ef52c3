package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvancePendingOrdersCommand_Validate(t *testing.T) {
	cmd := commands.NewAdvancePendingOrdersCommand()
	assert.NoError(t, cmd.Validate())

	var zero commands.AdvancePendingOrdersCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrAdvancePendingOrdersCommandIsNotConstructed)
}

func TestAdvancePendingOrdersCommandHandler_Handle_PromotesEligibleOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAdvancePendingOrdersCommand()
	cutoff := handlerNow.Add(-commands.PendingDwell)

	first := makeOrder(t, kernel.NewUUID())
	second := makeOrder(t, kernel.NewUUID())
	eligible := []*order.Order{first, second}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetEligiblePending", mock.Anything, cutoff).Return(eligible, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePendingOrdersCommandHandler(factory, fixedClock)
	promoted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, promoted)
	assert.Equal(t, order.Processing, first.Status())
	assert.Equal(t, order.Processing, second.Status())
	assert.Equal(t, handlerNow, first.UpdatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvancePendingOrdersCommandHandler_Handle_EmptyRunDoesNotCommit(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAdvancePendingOrdersCommand()
	cutoff := handlerNow.Add(-commands.PendingDwell)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetEligiblePending", mock.Anything, cutoff).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePendingOrdersCommandHandler(factory, fixedClock)
	promoted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, promoted)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvancePendingOrdersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAdvancePendingOrdersCommand()
	cutoff := handlerNow.Add(-commands.PendingDwell)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetEligiblePending", mock.Anything, cutoff).
			Return(nil, errors.New("query error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePendingOrdersCommandHandler(factory, fixedClock)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvancePendingOrdersCommandHandler_Handle_UpdateErrorAbortsRun(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAdvancePendingOrdersCommand()
	cutoff := handlerNow.Add(-commands.PendingDwell)

	first := makeOrder(t, kernel.NewUUID())
	second := makeOrder(t, kernel.NewUUID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetEligiblePending", mock.Anything, cutoff).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePendingOrdersCommandHandler(factory, fixedClock)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
