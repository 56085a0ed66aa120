package domain

import "time"

const (
	ServiceRGT = "rgt"
	ServiceRPS = "rps"

	ItemTypeDL  = "dl"
	ItemTypeBGL = "bgl"

	PaymentBGL   = "bgl"
	PaymentClock = "clock"

	CurrencyIDR   = "IDR"
	CurrencyBGL   = "BGL"
	CurrencyClock = "Clock"

	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusRejected  = "rejected"
)

// Order is a placed storefront order. TotalPrice and Currency are fixed at
// creation and never recomputed; Status is the only field mutated afterwards
// (pending -> processed or pending -> rejected, stamping UpdatedAt).
type Order struct {
	OrderID       string     `json:"orderId"`
	UserID        string     `json:"userId"`
	UserEmail     string     `json:"userEmail"`
	ServiceType   string     `json:"serviceType"`
	ItemType      string     `json:"itemType,omitempty"` // RGT: dl or bgl
	ItemName      string     `json:"itemName,omitempty"` // RPS: catalog item name
	Quantity      int        `json:"quantity"`
	PaymentMethod string     `json:"paymentMethod,omitempty"` // RPS only
	GTUsername    string     `json:"gtUsername"`
	WorldName     string     `json:"worldName"`
	TotalPrice    int64      `json:"totalPrice"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// RPSItem is a purchasable custom item, priced in BGL.
type RPSItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
