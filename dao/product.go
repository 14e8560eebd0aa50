package dao

import (
	"Souq/models"
	"context"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) WithTx(tx *gorm.DB) *Product {
	return &Product{Repo: Repo[models.Product]{Db: tx}}
}

func (p *Product) FindOnShelf(ctx context.Context, productID int64) (*models.Product, error) {
	return p.FindByWhere(ctx, "id = ? AND status = ?", productID, models.ProductOnShelf)
}

// ReserveStock takes quantity units off the aggregate counter. The
// stock >= quantity guard in the WHERE clause makes the check-and-decrement
// atomic: of two concurrent orders racing for the last unit, exactly one
// gets a row update. 0 rows affected means insufficient stock.
func (p *Product) ReserveStock(ctx context.Context, productID, quantity int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

func (p *Product) FindSpecValue(ctx context.Context, productID, specificationID int64, value string) (*models.ProductSpecValue, error) {
	var sv models.ProductSpecValue
	err := p.Db.WithContext(ctx).
		Where("product_id = ? AND specification_id = ? AND value = ?", productID, specificationID, value).
		First(&sv).Error
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

func (p *Product) FindSpecification(ctx context.Context, name string) (*models.Specification, error) {
	var s models.Specification
	err := p.Db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DecrementSpecValue settles variant stock at delivery. Guarded the same
// way as ReserveStock so the quantity can never go negative.
func (p *Product) DecrementSpecValue(ctx context.Context, productID, specificationID int64, value string, quantity int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.ProductSpecValue{}).
		Where("product_id = ? AND specification_id = ? AND value = ? AND quantity >= ?",
			productID, specificationID, value, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	return result.RowsAffected, result.Error
}
