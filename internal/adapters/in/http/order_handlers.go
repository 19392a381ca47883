package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	AddressText string   `json:"addressText"`
	AreaID      string   `json:"areaId"`
	Budget      *int64   `json:"budget,omitempty"`
	Urgent      bool     `json:"urgent"`
}

type prolongOrderRequest struct {
	ExpiresAt time.Time `json:"expiresAt"`
}

type attachMediaRequest struct {
	Files []mediaResponse `json:"files"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}

	var request createOrderRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	categoryIDs := make([]kernel.UUID, 0, len(request.Categories))
	for _, raw := range request.Categories {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "categories contains an invalid UUID")
		}
		categoryIDs = append(categoryIDs, id)
	}

	areaID, err := kernel.UUIDFromString(request.AreaID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "areaId is not a valid UUID")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, request.Description, categoryIDs,
		request.AddressText, areaID, request.Budget, request.Urgent)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromAggregate(created))
}

// ProlongOrder handles POST /api/v1/orders/:orderID/prolong.
func (s *Server) ProlongOrder(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	var request prolongOrderRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewProlongOrderCommand(orderID, clientID, request.ExpiresAt)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.ProlongOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// AttachOrderMedia handles POST /api/v1/orders/:orderID/media.
func (s *Server) AttachOrderMedia(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	var request attachMediaRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	files := make([]commands.MediaInput, 0, len(request.Files))
	for _, file := range request.Files {
		files = append(files, commands.MediaInput{
			Name:     file.Name,
			URL:      file.URL,
			MimeType: file.MimeType,
		})
	}

	cmd, err := commands.NewAttachOrderMediaCommand(orderID, clientID, files)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.AttachMedia.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// RemoveOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) RemoveOrder(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, clientID)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.RemoveOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, clientID)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// ListClientOrders handles GET /api/v1/orders, the caller's own orders.
func (s *Server) ListClientOrders(c echo.Context) error {
	clientID, err := actor(c)
	if err != nil {
		return err
	}

	statuses, err := parseOrderStatuses(c.QueryParams()["status"])
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListClientOrdersQuery(clientID, statuses, page(c))
	if err != nil {
		return writeError(c, err)
	}

	views, pagination, err := s.handlers.ListClientOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]orderResponse, 0, len(views))
	for _, view := range views {
		items = append(items, orderFromView(view, false))
	}
	return c.JSON(http.StatusOK, listResponse[orderResponse]{Items: items, Pagination: pagination})
}

// SearchOpenOrders handles GET /api/v1/orders/search, the provider-facing
// feed of open orders with bid statistics.
func (s *Server) SearchOpenOrders(c echo.Context) error {
	providerID, err := actor(c)
	if err != nil {
		return err
	}

	categoryIDs, err := queryUUIDs(c, "category")
	if err != nil {
		return err
	}
	areaIDs, err := queryUUIDs(c, "area")
	if err != nil {
		return err
	}

	query, err := queries.NewSearchOpenOrdersQuery(providerID, categoryIDs, areaIDs, page(c))
	if err != nil {
		return writeError(c, err)
	}

	views, pagination, err := s.handlers.SearchOpenOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]orderResponse, 0, len(views))
	for _, view := range views {
		items = append(items, orderFromView(view, true))
	}
	return c.JSON(http.StatusOK, listResponse[orderResponse]{Items: items, Pagination: pagination})
}
