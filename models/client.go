package models

import (
	"time"

	"gorm.io/gorm"
)

// Client owns at most one user account. ReferralCode is the public code
// other shoppers type at checkout; ReferrerID points back at the client
// whose code was used when this one signed up or first ordered.
type Client struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *int64         `gorm:"column:user_id;uniqueIndex:idx_user_id" json:"user_id"`
	FirstName    string         `gorm:"column:first_name;size:64" json:"first_name"`
	LastName     string         `gorm:"column:last_name;size:64" json:"last_name"`
	Phone        string         `gorm:"column:phone;size:20;index:idx_client_phone" json:"phone"`
	ReferralCode string         `gorm:"column:referral_code;size:20;uniqueIndex:idx_referral_code" json:"referral_code"`
	ReferrerID   *int64         `gorm:"column:referrer_id" json:"referrer_id"`
	OrdersCount  int64          `gorm:"column:orders_count;not null;default:0" json:"orders_count"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

// ReferralEligible reports whether an order by this client may still carry
// a referral discount. First order only.
func (c *Client) ReferralEligible() bool {
	return c.OrdersCount == 0
}
