package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAttachOrderMediaCommandIsNotConstructed = errors.New(
	"AttachOrderMediaCommand must be created via NewAttachOrderMediaCommand constructor",
)

// MediaInput describes one uploaded file in an attachment batch.
type MediaInput struct {
	Name     string
	URL      string
	MimeType string
}

// AttachOrderMediaCommand represents a client uploading a batch of media
// files onto their order.
type AttachOrderMediaCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	files    []MediaInput

	guard guard.ConstructorGuard
}

// NewAttachOrderMediaCommand creates a command to attach an upload batch.
// The per-batch video limit is enforced by the aggregate.
func NewAttachOrderMediaCommand(orderID, clientID kernel.UUID, files []MediaInput) (AttachOrderMediaCommand, error) {
	cmd := AttachOrderMediaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setFiles(files),
	); err != nil {
		return AttachOrderMediaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachOrderMediaCommand) Validate() error {
	return c.guard.Validate(ErrAttachOrderMediaCommandIsNotConstructed)
}

// OrderID returns the order to attach to.
func (c AttachOrderMediaCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the acting client's identifier.
func (c AttachOrderMediaCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Files returns the upload batch.
func (c AttachOrderMediaCommand) Files() []MediaInput {
	return c.files
}

func (c *AttachOrderMediaCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachOrderMediaCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}

	c.clientID = clientID
	return nil
}

func (c *AttachOrderMediaCommand) setFiles(files []MediaInput) error {
	if len(files) == 0 {
		return errs.NewValueIsRequiredError("files")
	}

	c.files = files
	return nil
}
