package models

import (
	"time"
)

type PromoType string

const (
	PromoPercent      PromoType = "PERCENT"
	PromoFixed        PromoType = "FIXED"
	PromoFreeShipping PromoType = "FREE_SHIPPING"
)

type PromoCode struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string     `gorm:"column:code;size:32;not null;uniqueIndex:idx_code" json:"code"`
	Type          PromoType  `gorm:"column:type;type:varchar(16);not null" json:"type"`
	DiscountValue int64      `gorm:"column:discount_value;not null;default:0" json:"discount_value"` // percent or DA; always 0 for FREE_SHIPPING
	MaxUse        int64      `gorm:"column:max_use;not null;default:0" json:"max_use"`               // 0 = unlimited
	UsedCount     int64      `gorm:"column:used_count;not null;default:0" json:"used_count"`
	ExpiresAt     *time.Time `gorm:"column:expires_at" json:"expires_at"` // nil = never expires
	IsActive      bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

// Usable is the read-side check; the authoritative max_use guard is the
// conditional increment in dao.Promo.ConsumeUse.
func (p *PromoCode) Usable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return false
	}
	if p.MaxUse > 0 && p.UsedCount >= p.MaxUse {
		return false
	}
	return true
}
