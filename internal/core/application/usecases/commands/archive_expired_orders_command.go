package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrArchiveExpiredOrdersCommandIsNotConstructed = errors.New(
	"ArchiveExpiredOrdersCommand must be created via NewArchiveExpiredOrdersCommand constructor",
)

// ArchiveExpiredOrdersCommand triggers the background sweep that archives
// Placed orders whose bidding window lapsed. It carries no data; the handler
// works off the clock.
type ArchiveExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveExpiredOrdersCommand creates a command to run the sweep.
func NewArchiveExpiredOrdersCommand() ArchiveExpiredOrdersCommand {
	return ArchiveExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ArchiveExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveExpiredOrdersCommandIsNotConstructed)
}
