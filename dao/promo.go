package dao

import (
	"Souq/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type Promo struct {
	Repo[models.PromoCode]
}

func NewPromo(db *gorm.DB) *Promo {
	return &Promo{
		Repo: NewRepo[models.PromoCode](db),
	}
}

func (p *Promo) WithTx(tx *gorm.DB) *Promo {
	return &Promo{Repo: Repo[models.PromoCode]{Db: tx}}
}

// FindByCode returns (nil, nil) for an unknown code; the caller owns the
// generic-rejection wording.
func (p *Promo) FindByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	promo, err := p.FindByWhere(ctx, "code = ?", code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return promo, err
}

// ConsumeUse atomically takes one use. The used_count < max_use guard in
// the WHERE clause is what keeps max_use from being exceeded under
// concurrent redemption; 0 rows affected means the code just ran out.
func (p *Promo) ConsumeUse(ctx context.Context, promoID int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.PromoCode{}).
		Where("id = ? AND is_active = ? AND (max_use = 0 OR used_count < max_use)", promoID, true).
		Update("used_count", gorm.Expr("used_count + ?", 1))
	return result.RowsAffected, result.Error
}
