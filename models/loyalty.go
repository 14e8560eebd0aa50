package models

import "time"

// LoyaltyPoint is one row of the append-only ledger. Points are signed;
// the balance of a client is the sum of their rows. Rows are never updated
// or deleted.
type LoyaltyPoint struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID    int64     `gorm:"column:client_id;not null;index:idx_lp_client_id" json:"client_id"`
	Points      int64     `gorm:"column:points;not null" json:"points"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	SourceID    string    `gorm:"column:source_id;size:64;index:idx_lp_source_id" json:"source_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LoyaltyPoint) TableName() string {
	return "loyalty_points"
}

// ledger source kinds, used for idempotency checks
const (
	LoyaltySourceOrderEarn = "earn"
	LoyaltySourceReferral  = "referral"
	LoyaltySourceRedeem    = "redeem"
)

// LoyaltySetting is the admin-managed singleton row.
type LoyaltySetting struct {
	ID                     int64     `gorm:"primaryKey" json:"id"`
	ReferralRewardPoints   int64     `gorm:"column:referral_reward_points;not null;default:0" json:"referral_reward_points"`
	ReferralDiscountAmount int64     `gorm:"column:referral_discount_amount;not null;default:0" json:"referral_discount_amount"` // DA
	PointsConversionRate   int64     `gorm:"column:points_conversion_rate;not null;default:1" json:"points_conversion_rate"`     // DA per redeemed point
	EarnPointsPer100DA     int64     `gorm:"column:earn_points_per_100da;not null;default:0" json:"earn_points_per_100da"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoyaltySetting) TableName() string {
	return "loyalty_settings"
}

// DefaultLoyaltySetting applies when the admin has never saved the row.
func DefaultLoyaltySetting() *LoyaltySetting {
	return &LoyaltySetting{
		ID:                     1,
		ReferralRewardPoints:   0,
		ReferralDiscountAmount: 0,
		PointsConversionRate:   1,
		EarnPointsPer100DA:     0,
	}
}
