package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttachOrderMediaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	ord := testOrder(t, clientID)

	cmd, err := commands.NewAttachOrderMediaCommand(ord.ID(), clientID, []commands.MediaInput{
		{Name: "before.jpg", URL: "https://cdn.example.com/before.jpg", MimeType: "image/jpeg"},
		{Name: "leak.mp4", URL: "https://cdn.example.com/leak.mp4", MimeType: "video/mp4"},
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachOrderMediaCommandHandler(factory)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, updated.Media(), 2)
	assert.Equal(t, "before.jpg", updated.Media()[0].Name())
	assert.True(t, updated.Media()[1].IsVideo())
	uow.AssertExpectations(t)
}

func TestAttachOrderMediaCommandHandler_Handle_TooManyVideosRejectsWholeBatch(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	ord := testOrder(t, clientID)

	cmd, err := commands.NewAttachOrderMediaCommand(ord.ID(), clientID, []commands.MediaInput{
		{Name: "a.mp4", URL: "https://cdn.example.com/a.mp4", MimeType: "video/mp4"},
		{Name: "b.mp4", URL: "https://cdn.example.com/b.mp4", MimeType: "video/mp4"},
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachOrderMediaCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Empty(t, ord.Media())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestAttachOrderMediaCommandHandler_Handle_WrongClient(t *testing.T) {
	ctx := t.Context()
	ord := testOrder(t, kernel.NewUUID())

	cmd, err := commands.NewAttachOrderMediaCommand(ord.ID(), kernel.NewUUID(), []commands.MediaInput{
		{Name: "x.jpg", URL: "https://cdn.example.com/x.jpg", MimeType: "image/jpeg"},
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachOrderMediaCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrActionNotAllowed)
	assert.Empty(t, ord.Media())
}
