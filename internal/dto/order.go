package dto

import "gtshop/internal/domain"

type PlaceOrderRequest struct {
	ServiceType   string `json:"serviceType"`
	ItemType      string `json:"itemType"`
	ItemName      string `json:"itemName"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
	GTUsername    string `json:"gtUsername"`
	WorldName     string `json:"worldName"`
	Notes         string `json:"notes"`
}

type OrderFilter struct {
	Status      string `query:"status"`
	ServiceType string `query:"service"`
	Lang        string `query:"lang"`
}

// OrderView decorates an order with the display strings the listing pages
// render: the localized status name and a relative placement time.
type OrderView struct {
	domain.Order
	StatusLabel string `json:"statusLabel"`
	PlacedAgo   string `json:"placedAgo"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
