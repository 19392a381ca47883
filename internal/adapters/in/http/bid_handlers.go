package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type placeBidRequest struct {
	Amount  int64  `json:"amount"`
	Comment string `json:"comment,omitempty"`
}

type reviseBidRequest struct {
	Amount  int64   `json:"amount"`
	Comment *string `json:"comment,omitempty"`
}

// PlaceBid handles POST /api/v1/orders/:orderID/bids.
func (s *Server) PlaceBid(c echo.Context) error {
	providerID, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	var request placeBidRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewPlaceBidCommand(
		kernel.NewUUID(), orderID, providerID, request.Amount, request.Comment)
	if err != nil {
		return writeError(c, err)
	}

	placed, err := s.handlers.PlaceBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, bidFromAggregate(placed))
}

// ReviseBid handles PATCH /api/v1/bids/:bidID.
func (s *Server) ReviseBid(c echo.Context) error {
	providerID, err := actor(c)
	if err != nil {
		return err
	}
	bidID, err := pathUUID(c, "bidID")
	if err != nil {
		return err
	}

	var request reviseBidRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewReviseBidCommand(bidID, providerID, request.Amount, request.Comment)
	if err != nil {
		return writeError(c, err)
	}

	revised, err := s.handlers.ReviseBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bidFromAggregate(revised))
}

// AcceptBid handles POST /api/v1/bids/:bidID/accept.
func (s *Server) AcceptBid(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}
	bidID, err := pathUUID(c, "bidID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptBidCommand(bidID, clientID)
	if err != nil {
		return writeError(c, err)
	}

	accepted, err := s.handlers.AcceptBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bidFromAggregate(accepted))
}

// RejectBid handles POST /api/v1/bids/:bidID/reject.
func (s *Server) RejectBid(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}
	bidID, err := pathUUID(c, "bidID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectBidCommand(bidID, clientID)
	if err != nil {
		return writeError(c, err)
	}

	rejected, err := s.handlers.RejectBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bidFromAggregate(rejected))
}

// WithdrawBid handles POST /api/v1/bids/:bidID/withdraw.
func (s *Server) WithdrawBid(c echo.Context) error {
	providerID, err := actor(c)
	if err != nil {
		return err
	}
	bidID, err := pathUUID(c, "bidID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewWithdrawBidCommand(bidID, providerID)
	if err != nil {
		return writeError(c, err)
	}

	withdrawn, err := s.handlers.WithdrawBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bidFromAggregate(withdrawn))
}

// ListOrderBids handles GET /api/v1/orders/:orderID/bids.
func (s *Server) ListOrderBids(c echo.Context) error {
	if _, err := actor(c); err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrderBidsQuery(orderID, page(c))
	if err != nil {
		return writeError(c, err)
	}

	views, pagination, err := s.handlers.ListOrderBids.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]bidResponse, 0, len(views))
	for _, view := range views {
		items = append(items, bidFromView(view))
	}
	return c.JSON(http.StatusOK, listResponse[bidResponse]{Items: items, Pagination: pagination})
}

// ListProviderBids handles GET /api/v1/bids, the caller's own bids.
func (s *Server) ListProviderBids(c echo.Context) error {
	providerID, err := actor(c)
	if err != nil {
		return err
	}

	archived := false
	if raw := c.QueryParam("archived"); raw != "" {
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "archived must be a boolean")
		}
		archived = parsed
	}

	statuses, err := parseBidStatuses(c.QueryParams()["status"])
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListProviderBidsQuery(providerID, archived, statuses, page(c))
	if err != nil {
		return writeError(c, err)
	}

	views, pagination, err := s.handlers.ListProviderBids.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]bidResponse, 0, len(views))
	for _, view := range views {
		items = append(items, bidFromView(view))
	}
	return c.JSON(http.StatusOK, listResponse[bidResponse]{Items: items, Pagination: pagination})
}
