// Package http exposes the marketplace over a REST API. Handlers translate
// requests into commands and queries and domain errors into status codes;
// all business rules stay in the core.
package http

import (
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated caller's ID. Authentication itself
// happens upstream at the gateway; the service trusts the header.
const actorHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	catalog  ports.ReferenceCatalog
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder   commands.CreateOrderCommandHandler
	ProlongOrder  commands.ProlongOrderCommandHandler
	AttachMedia   commands.AttachOrderMediaCommandHandler
	RemoveOrder   commands.RemoveOrderCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler
	PlaceBid      commands.PlaceBidCommandHandler
	ReviseBid     commands.ReviseBidCommandHandler
	AcceptBid     commands.AcceptBidCommandHandler
	RejectBid     commands.RejectBidCommandHandler
	WithdrawBid   commands.WithdrawBidCommandHandler

	ListClientOrders queries.ListClientOrdersQueryHandler
	SearchOpenOrders queries.SearchOpenOrdersQueryHandler
	ListOrderBids    queries.ListOrderBidsQueryHandler
	ListProviderBids queries.ListProviderBidsQueryHandler
}

// NewServer creates an HTTP server over the given handlers and catalog.
func NewServer(handlers Handlers, catalog ports.ReferenceCatalog) *Server {
	return &Server{handlers: handlers, catalog: catalog}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListClientOrders)
	api.GET("/orders/search", s.SearchOpenOrders)
	api.POST("/orders/:orderID/prolong", s.ProlongOrder)
	api.POST("/orders/:orderID/media", s.AttachOrderMedia)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.DELETE("/orders/:orderID", s.RemoveOrder)
	api.GET("/orders/:orderID/bids", s.ListOrderBids)
	api.POST("/orders/:orderID/bids", s.PlaceBid)

	api.GET("/bids", s.ListProviderBids)
	api.PATCH("/bids/:bidID", s.ReviseBid)
	api.POST("/bids/:bidID/accept", s.AcceptBid)
	api.POST("/bids/:bidID/reject", s.RejectBid)
	api.POST("/bids/:bidID/withdraw", s.WithdrawBid)

	api.GET("/categories", s.ListCategories)
	api.GET("/areas", s.ListAreas)
}

// actor extracts the authenticated caller from the request headers.
func actor(c echo.Context) (kernel.UUID, error) {
	raw := c.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, actorHeader+" header is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, actorHeader+" header is not a valid UUID")
	}
	return id, nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, name+" is not a valid UUID")
	}
	return id, nil
}

// page reads the requested page, defaulting to the first. Any negative value
// disables pagination.
func page(c echo.Context) int {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

func queryUUIDs(c echo.Context, name string) ([]kernel.UUID, error) {
	values := c.QueryParams()[name]
	ids := make([]kernel.UUID, 0, len(values))
	for _, raw := range values {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, name+" contains an invalid UUID")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOrderStatuses(values []string) ([]order.Status, error) {
	statuses := make([]order.Status, 0, len(values))
	for _, raw := range values {
		var found bool
		for st := order.Placed; st <= order.TerminatedByClient; st++ {
			if strings.EqualFold(raw, st.String()) {
				statuses = append(statuses, st)
				found = true
				break
			}
		}
		if !found {
			return nil, errs.NewValueIsInvalidError("status")
		}
	}
	return statuses, nil
}

func parseBidStatuses(values []string) ([]bid.Status, error) {
	statuses := make([]bid.Status, 0, len(values))
	for _, raw := range values {
		var found bool
		for st := bid.Placed; st <= bid.TerminatedByProvider; st++ {
			if strings.EqualFold(raw, st.String()) {
				statuses = append(statuses, st)
				found = true
				break
			}
		}
		if !found {
			return nil, errs.NewValueIsInvalidError("status")
		}
	}
	return statuses, nil
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.catalog.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]refResponse, 0, len(categories))
	for _, ref := range categories {
		response = append(response, refResponse{ID: ref.ID.String(), Name: ref.Name})
	}
	return c.JSON(http.StatusOK, response)
}

// ListAreas handles GET /api/v1/areas.
func (s *Server) ListAreas(c echo.Context) error {
	areas, err := s.catalog.Areas(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]refResponse, 0, len(areas))
	for _, ref := range areas {
		response = append(response, refResponse{ID: ref.ID.String(), Name: ref.Name})
	}
	return c.JSON(http.StatusOK, response)
}
