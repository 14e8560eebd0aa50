package models

import (
	"time"

	"gorm.io/datatypes"
)

// Cart belongs to a client or, for guests, to a browser session token.
// The checkout transaction clears it on success and leaves it untouched on
// any failure.
type Cart struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID     *int64    `gorm:"column:client_id;index:idx_cart_client" json:"client_id"`
	SessionToken string    `gorm:"column:session_token;size:64;index:idx_cart_session" json:"session_token"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     int64          `gorm:"column:cart_id;not null;index:idx_cart_item_cart" json:"cart_id"`
	ProductID  int64          `gorm:"column:product_id;not null" json:"product_id"`
	Quantity   int64          `gorm:"column:quantity;not null;default:1" json:"quantity"`
	SpecValues datatypes.JSON `gorm:"column:spec_values" json:"spec_values"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
