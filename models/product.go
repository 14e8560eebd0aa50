package models

import (
	"time"

	"gorm.io/gorm"
)

// Product carries the aggregate stock counter reserved at checkout.
// Variant-level quantities live in ProductSpecValue and are settled at
// delivery.
type Product struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"column:name;size:255;not null;uniqueIndex:idx_product_name" json:"name"`
	Price     int64          `gorm:"column:price;not null" json:"price"` // DA
	Stock     int64          `gorm:"column:stock;not null;default:0" json:"stock"`
	Status    int8           `gorm:"column:status;not null;default:1;index:idx_product_status" json:"status"` // 0 off-shelf, 1 on-shelf
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_products_deleted_at" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

const (
	ProductOffShelf int8 = 0
	ProductOnShelf  int8 = 1
)

type Specification struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:64;not null;uniqueIndex:idx_spec_name" json:"name"`
}

func (Specification) TableName() string {
	return "specifications"
}

// ProductSpecValue is one sellable variant value of a product, e.g.
// (tshirt, Size, XL), with its own quantity.
type ProductSpecValue struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       int64  `gorm:"column:product_id;not null;uniqueIndex:idx_product_spec_value" json:"product_id"`
	SpecificationID int64  `gorm:"column:specification_id;not null;uniqueIndex:idx_product_spec_value" json:"specification_id"`
	Value           string `gorm:"column:value;size:64;not null;uniqueIndex:idx_product_spec_value" json:"value"`
	Quantity        int64  `gorm:"column:quantity;not null;default:0" json:"quantity"`
}

func (ProductSpecValue) TableName() string {
	return "product_spec_values"
}
