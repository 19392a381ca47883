package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/refrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types, so each Create* call builds a fresh one.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.ReferenceCatalog
	publisher  ports.EventPublisher
	limits     bid.Limits
}

// NewCompositionRoot assembles the root over the shared connection and the
// event publisher.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	limits := bid.DefaultLimits()
	if config.BidMaxCommentLength > 0 {
		limits.MaxCommentLength = config.BidMaxCommentLength
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    refrepo.NewGormReferenceCatalog(gormDB),
		publisher:  publisher,
		limits:     limits,
	}
}

// ReferenceCatalog exposes the catalog for the HTTP layer.
func (c *CompositionRoot) ReferenceCatalog() ports.ReferenceCatalog {
	return c.catalog
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bidUoWFactory() commands.BidUoWFactory {
	return FuncBidUoWFactory(func() commands.BidUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForBoth() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateProlongOrderCommandHandler() commands.ProlongOrderCommandHandler {
	return commands.NewProlongOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachOrderMediaCommandHandler() commands.AttachOrderMediaCommandHandler {
	return commands.NewAttachOrderMediaCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.uowFactoryForBoth(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uowFactoryForBoth(), c.publisher)
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() commands.PlaceBidCommandHandler {
	return commands.NewPlaceBidCommandHandler(c.uowFactoryForBoth(), c.limits, c.publisher)
}

func (c *CompositionRoot) CreateReviseBidCommandHandler() commands.ReviseBidCommandHandler {
	return commands.NewReviseBidCommandHandler(c.bidUoWFactory(), c.limits)
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	return commands.NewAcceptBidCommandHandler(c.uowFactoryForBoth(), c.publisher)
}

func (c *CompositionRoot) CreateRejectBidCommandHandler() commands.RejectBidCommandHandler {
	return commands.NewRejectBidCommandHandler(c.uowFactoryForBoth(), c.publisher)
}

func (c *CompositionRoot) CreateWithdrawBidCommandHandler() commands.WithdrawBidCommandHandler {
	return commands.NewWithdrawBidCommandHandler(c.uowFactoryForBoth(), c.publisher)
}

func (c *CompositionRoot) CreateArchiveExpiredOrdersCommandHandler() commands.ArchiveExpiredOrdersCommandHandler {
	return commands.NewArchiveExpiredOrdersCommandHandler(c.uowFactoryForBoth())
}

func (c *CompositionRoot) CreateListClientOrdersQueryHandler() queries.ListClientOrdersQueryHandler {
	return queries.NewListClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOpenOrdersQueryHandler() queries.SearchOpenOrdersQueryHandler {
	return queries.NewSearchOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderBidsQueryHandler() queries.ListOrderBidsQueryHandler {
	return queries.NewListOrderBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProviderBidsQueryHandler() queries.ListProviderBidsQueryHandler {
	return queries.NewListProviderBidsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBidUoWFactory func() commands.BidUoW

func (f FuncBidUoWFactory) Create() commands.BidUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
