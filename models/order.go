package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// orderTransitions is the full reachability table. DELIVERED and CANCELLED
// are terminal; cancellation is impossible once the parcel has shipped.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

type DeliveryType string

const (
	DeliveryDomicile DeliveryType = "DOMICILE"
	DeliveryStopdesk DeliveryType = "STOPDESK"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryDomicile || d == DeliveryStopdesk
}

// Order 订单主表. Monetary fields and snapshots are written once at
// checkout; only Status changes afterwards. Rows are never hard-deleted.
type Order struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderSn  string `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	ClientID *int64 `gorm:"column:client_id;index:idx_client_id" json:"client_id"` // nil for guest orders

	// customer snapshot
	FirstName string `gorm:"column:first_name;size:64;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:64;not null" json:"last_name"`
	Phone     string `gorm:"column:phone;size:20;not null;index:idx_phone" json:"phone"`
	Address   string `gorm:"column:address;size:255;not null" json:"address"`
	ClientIP  string `gorm:"column:client_ip;size:45" json:"-"`

	// location snapshot, survives deletion of the reference rows
	WilayaID    int64  `gorm:"column:wilaya_id;not null" json:"wilaya_id"`
	CommuneID   int64  `gorm:"column:commune_id;not null" json:"commune_id"`
	WilayaName  string `gorm:"column:wilaya_name;size:64;not null" json:"wilaya_name"`
	CommuneName string `gorm:"column:commune_name;size:64;not null" json:"commune_name"`

	DeliveryType  DeliveryType `gorm:"column:delivery_type;type:varchar(16);not null" json:"delivery_type"`
	DeliveryPrice int64        `gorm:"column:delivery_price;not null" json:"delivery_price"` // tariff snapshot, DA
	ProductsTotal int64        `gorm:"column:products_total;not null" json:"products_total"`
	DiscountTotal int64        `gorm:"column:discount_total;not null;default:0" json:"discount_total"`
	TotalPrice    int64        `gorm:"column:total_price;not null" json:"total_price"`

	Status OrderStatus `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index:idx_status" json:"status"`

	PromoCodeID  *int64 `gorm:"column:promo_code_id" json:"-"`
	ReferrerID   *int64 `gorm:"column:referrer_id;index:idx_referrer_id" json:"-"`
	ReferralCode string `gorm:"column:referral_code;size:20" json:"-"`
	UsedPoints   int64  `gorm:"column:used_points;not null;default:0" json:"used_points"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem freezes the purchased line: unit price and metadata are copied
// from the product at checkout and never re-read.
type OrderItem struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64          `gorm:"column:order_id;not null;index:idx_order_id" json:"order_id"`
	ProductID        int64          `gorm:"column:product_id;not null;index:idx_product_id" json:"product_id"`
	ProductName      string         `gorm:"column:product_name;size:255;not null" json:"product_name"`
	UnitPrice        int64          `gorm:"column:unit_price;not null" json:"unit_price"` // DA at purchase time
	Quantity         int64          `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Subtotal         int64          `gorm:"column:subtotal;not null" json:"subtotal"`
	MetadataSnapshot datatypes.JSON `gorm:"column:metadata_snapshot" json:"metadata_snapshot"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ItemSnapshot is the JSON payload stored in OrderItem.MetadataSnapshot.
type ItemSnapshot struct {
	Name           string         `json:"name"`
	Specifications []SpecSnapshot `json:"specifications,omitempty"`
}

type SpecSnapshot struct {
	SpecificationID int64  `json:"specification_id"`
	Name            string `json:"name"`
	Value           string `json:"value"`
}
