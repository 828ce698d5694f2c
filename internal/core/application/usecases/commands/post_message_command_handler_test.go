package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/message"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostMessageCommandHandler_Handle_CustomerPostsToOwnOrder(t *testing.T) {
	ctx := t.Context()
	customer := newTestUser(t, user.Customer)
	own := newPlacedOrder(t, customer.ID())
	cmd, _ := commands.NewPostMessageCommand(kernel.NewUUID(), own.ID(), customer, "Quando chega?")

	orderRepo := new(MockOrderRepository)
	messageRepo := new(MockMessageRepository)
	uow := new(MockMessageUoW)

	var posted *message.Message
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, own.ID()).Return(own, nil).Once(),
		uow.On("MessageRepository").Return(messageRepo).Once(),
		messageRepo.On("Add", mock.Anything, mock.AnythingOfType("*message.Message")).
			Run(func(args mock.Arguments) {
				posted = args.Get(1).(*message.Message)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	policy := services.NewAccessPolicy(false)
	h := commands.NewPostMessageCommandHandler(factory, policy)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, posted)
	assert.Equal(t, user.Customer, posted.AuthorRole())
	assert.Equal(t, "Quando chega?", posted.Body())

	orderRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPostMessageCommandHandler_Handle_StaffPostsToAnyOrder(t *testing.T) {
	ctx := t.Context()
	operator := newTestUser(t, user.Operator)
	aggregate := newPlacedOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewPostMessageCommand(kernel.NewUUID(), aggregate.ID(), operator, "Tecido chegou hoje.")

	orderRepo := new(MockOrderRepository)
	messageRepo := new(MockMessageRepository)
	uow := new(MockMessageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MessageRepository").Return(messageRepo).Once(),
		messageRepo.On("Add", mock.Anything, mock.AnythingOfType("*message.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	policy := services.NewAccessPolicy(false)
	h := commands.NewPostMessageCommandHandler(factory, policy)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestPostMessageCommandHandler_Handle_CustomerProbingForeignOrder(t *testing.T) {
	ctx := t.Context()
	customer := newTestUser(t, user.Customer)
	foreign := newPlacedOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewPostMessageCommand(kernel.NewUUID(), foreign.ID(), customer, "ola")

	orderRepo := new(MockOrderRepository)
	uow := new(MockMessageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, foreign.ID()).Return(foreign, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	policy := services.NewAccessPolicy(false)
	h := commands.NewPostMessageCommandHandler(factory, policy)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPostMessageCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	customer := newTestUser(t, user.Customer)
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewPostMessageCommand(kernel.NewUUID(), orderID, customer, "ola")

	orderRepo := new(MockOrderRepository)
	uow := new(MockMessageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	policy := services.NewAccessPolicy(false)
	h := commands.NewPostMessageCommandHandler(factory, policy)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
