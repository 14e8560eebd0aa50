package models

import "time"

// DeliveryTariff prices delivery for one (wilaya, type) pair. Disabling a
// row hard-blocks checkout for that pair, there is no fallback price.
type DeliveryTariff struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	WilayaID     int64        `gorm:"column:wilaya_id;not null;uniqueIndex:idx_wilaya_type" json:"wilaya_id"`
	DeliveryType DeliveryType `gorm:"column:delivery_type;type:varchar(16);not null;uniqueIndex:idx_wilaya_type" json:"delivery_type"`
	Price        int64        `gorm:"column:price;not null" json:"price"` // DA
	IsActive     bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DeliveryTariff) TableName() string {
	return "delivery_tariffs"
}

type Wilaya struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Code string `gorm:"column:code;size:8;uniqueIndex:idx_wilaya_code" json:"code"`
	Name string `gorm:"column:name;size:64;not null" json:"name"`
}

func (Wilaya) TableName() string {
	return "wilayas"
}

type Commune struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	WilayaID int64  `gorm:"column:wilaya_id;not null;index:idx_commune_wilaya" json:"wilaya_id"`
	Name     string `gorm:"column:name;size:64;not null" json:"name"`
}

func (Commune) TableName() string {
	return "communes"
}
