package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/in/ws"
	"marketplace/internal/adapters/out/fanout"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres/bidrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/refrepo"
	"marketplace/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := cmd.LoadConfig()

	db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderCategoryDTO{},
		&orderrepo.OrderMediaDTO{},
		&bidrepo.BidDTO{},
		&refrepo.CategoryDTO{},
		&refrepo.AreaDTO{},
	); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	broker := kafka.NewPublisher(config.KafkaBrokers, config.KafkaEventsTopic, logger)
	defer broker.Close()

	hub := ws.NewHub(logger)
	publisher := fanout.NewPublisher(broker, hub)

	root := cmd.NewCompositionRoot(config, db, publisher)

	jobManager := jobs.NewJobManager(root.CreateArchiveExpiredOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:   root.CreateCreateOrderCommandHandler(),
		ProlongOrder:  root.CreateProlongOrderCommandHandler(),
		AttachMedia:   root.CreateAttachOrderMediaCommandHandler(),
		RemoveOrder:   root.CreateRemoveOrderCommandHandler(),
		CompleteOrder: root.CreateCompleteOrderCommandHandler(),
		PlaceBid:      root.CreatePlaceBidCommandHandler(),
		ReviseBid:     root.CreateReviseBidCommandHandler(),
		AcceptBid:     root.CreateAcceptBidCommandHandler(),
		RejectBid:     root.CreateRejectBidCommandHandler(),
		WithdrawBid:   root.CreateWithdrawBidCommandHandler(),

		ListClientOrders: root.CreateListClientOrdersQueryHandler(),
		SearchOpenOrders: root.CreateSearchOpenOrdersQueryHandler(),
		ListOrderBids:    root.CreateListOrderBidsQueryHandler(),
		ListProviderBids: root.CreateListProviderBidsQueryHandler(),
	}, root.ReferenceCatalog())

	e := echo.New()
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/ws/events", hub.Handle)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
