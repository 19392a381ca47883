package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// AttachOrderMediaCommandHandler appends an upload batch to an order's
// attachment list. The batch is accepted or rejected as a whole.
type AttachOrderMediaCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachOrderMediaCommandHandler creates a handler for media attachment.
func NewAttachOrderMediaCommandHandler(uowFactory OrderUoWFactory) AttachOrderMediaCommandHandler {
	return AttachOrderMediaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment command and returns the updated order.
func (h AttachOrderMediaCommandHandler) Handle(ctx context.Context, cmd AttachOrderMediaCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	files := make([]order.MediaFile, 0, len(cmd.Files()))
	for _, in := range cmd.Files() {
		f, err := order.NewMediaFile(in.Name, in.URL, in.MimeType)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !ord.ClientID().IsEqual(cmd.ClientID()) {
		return nil, errs.NewActionNotAllowedError("attach media to another client's order")
	}

	if err = ord.AttachMedia(files); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
