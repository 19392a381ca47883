package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/order"
)

type refResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type mediaResponse struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
}

type orderResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Description string          `json:"description"`
	Categories  []string        `json:"categories,omitempty"`
	AddressText string          `json:"addressText"`
	AreaID      string          `json:"areaId"`
	Budget      *int64          `json:"budget,omitempty"`
	Urgent      bool            `json:"urgent"`
	Media       []mediaResponse `json:"media,omitempty"`
	Status      string          `json:"status"`
	Archived    bool            `json:"archived"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	BidCount    *int            `json:"bidCount,omitempty"`
	LowestBid   *int64          `json:"lowestBid,omitempty"`
}

type bidResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	ProviderID  string    `json:"providerId"`
	Amount      int64     `json:"amount"`
	Comment     string    `json:"comment,omitempty"`
	PrevAmounts []int64   `json:"prevAmounts,omitempty"`
	Status      string    `json:"status"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"createdAt"`
}

type listResponse[T any] struct {
	Items      []T                 `json:"items"`
	Pagination *queries.Pagination `json:"pagination,omitempty"`
}

// orderFromAggregate renders a full aggregate, as returned by commands.
func orderFromAggregate(o *order.Order) orderResponse {
	categories := make([]string, 0, len(o.CategoryIDs()))
	for _, id := range o.CategoryIDs() {
		categories = append(categories, id.String())
	}

	media := make([]mediaResponse, 0, len(o.Media()))
	for _, file := range o.Media() {
		media = append(media, mediaResponse{Name: file.Name(), URL: file.URL(), MimeType: file.MimeType()})
	}

	return orderResponse{
		ID:          o.ID().String(),
		ClientID:    o.ClientID().String(),
		Description: o.Description(),
		Categories:  categories,
		AddressText: o.Address().Text(),
		AreaID:      o.Address().AreaID().String(),
		Budget:      o.Budget(),
		Urgent:      o.Urgent(),
		Media:       media,
		Status:      o.Status().String(),
		Archived:    o.Archived(),
		ExpiresAt:   o.ExpiresAt(),
		CreatedAt:   o.CreatedAt(),
	}
}

// orderFromView renders a read-side projection. Bid statistics appear only
// when the view came from an aggregated search.
func orderFromView(view queries.OrderView, aggregated bool) orderResponse {
	response := orderResponse{
		ID:          view.ID.String(),
		ClientID:    view.ClientID.String(),
		Description: view.Description,
		AddressText: view.AddressText,
		AreaID:      view.AreaID.String(),
		Budget:      view.Budget,
		Urgent:      view.Urgent,
		Status:      view.Status.String(),
		Archived:    view.Archived,
		ExpiresAt:   view.ExpiresAt,
		CreatedAt:   view.CreatedAt,
	}
	if aggregated {
		count := view.BidCount
		response.BidCount = &count
		response.LowestBid = view.LowestBid
	}
	return response
}

func bidFromAggregate(b *bid.Bid) bidResponse {
	return bidResponse{
		ID:          b.ID().String(),
		OrderID:     b.OrderID().String(),
		ProviderID:  b.ProviderID().String(),
		Amount:      b.Amount(),
		Comment:     b.Comment(),
		PrevAmounts: b.PrevAmounts(),
		Status:      b.Status().String(),
		Archived:    b.Archived(),
		CreatedAt:   b.CreatedAt(),
	}
}

func bidFromView(view queries.BidView) bidResponse {
	return bidResponse{
		ID:          view.ID.String(),
		OrderID:     view.OrderID.String(),
		ProviderID:  view.ProviderID.String(),
		Amount:      view.Amount,
		Comment:     view.Comment,
		PrevAmounts: view.PrevAmounts,
		Status:      view.Status.String(),
		Archived:    view.Archived,
		CreatedAt:   view.CreatedAt,
	}
}
