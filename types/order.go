package types

import "time"

type OrderItemInput struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int64 `json:"quantity" binding:"required,gt=0"`
	// SpecificationValues maps specification name to the chosen value,
	// e.g. {"Size": "XL", "Color": "Black"}.
	SpecificationValues map[string]string `json:"specification_values"`
}

type CreateOrderRequest struct {
	Items            []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	FirstName        string           `json:"first_name" binding:"required,max=64"`
	LastName         string           `json:"last_name" binding:"required,max=64"`
	Phone            string           `json:"phone" binding:"required,min=9,max=20"`
	Address          string           `json:"address" binding:"required,max=255"`
	WilayaID         int64            `json:"wilaya_id" binding:"required,gt=0"`
	CommuneID        int64            `json:"commune_id" binding:"required,gt=0"`
	DeliveryType     string           `json:"delivery_type" binding:"required,oneof=DOMICILE STOPDESK"`
	PromoCode        string           `json:"promo_code"`
	UseLoyaltyPoints bool             `json:"use_loyalty_points"`
}

// Requester is what the transport layer knows about the caller.
type Requester struct {
	ClientID    *int64 // nil for guests
	IP          string
	CartSession string // guest cart cookie, empty when authenticated
}

type OrderItemView struct {
	ProductID   int64             `json:"product_id"`
	ProductName string            `json:"product_name"`
	UnitPrice   int64             `json:"unit_price"`
	Quantity    int64             `json:"quantity"`
	Subtotal    int64             `json:"subtotal"`
	Specs       map[string]string `json:"specs,omitempty"`
}

type OrderView struct {
	OrderSn       string          `json:"order_sn"`
	Status        string          `json:"status"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	WilayaName    string          `json:"wilaya_name"`
	CommuneName   string          `json:"commune_name"`
	DeliveryType  string          `json:"delivery_type"`
	DeliveryPrice int64           `json:"delivery_price"`
	ProductsTotal int64           `json:"products_total"`
	DiscountTotal int64           `json:"discount_total"`
	TotalPrice    int64           `json:"total_price"`
	UsedPoints    int64           `json:"used_points"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItemView `json:"items,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderList struct {
	Orders     []OrderView `json:"orders"`
	NextCursor int64       `json:"next_cursor"`
	HasMore    bool        `json:"has_more"`
}
