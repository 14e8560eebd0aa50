package dao

import (
	"Souq/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type Tariff struct {
	Repo[models.DeliveryTariff]
}

func NewTariff(db *gorm.DB) *Tariff {
	return &Tariff{
		Repo: NewRepo[models.DeliveryTariff](db),
	}
}

func (t *Tariff) WithTx(tx *gorm.DB) *Tariff {
	return &Tariff{Repo: Repo[models.DeliveryTariff]{Db: tx}}
}

// FindActive returns (nil, nil) when no active tariff covers the pair.
func (t *Tariff) FindActive(ctx context.Context, wilayaID int64, deliveryType models.DeliveryType) (*models.DeliveryTariff, error) {
	tariff, err := t.FindByWhere(ctx, "wilaya_id = ? AND delivery_type = ? AND is_active = ?",
		wilayaID, deliveryType, true)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return tariff, err
}

func (t *Tariff) FindWilaya(ctx context.Context, id int64) (*models.Wilaya, error) {
	var w models.Wilaya
	err := t.Db.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (t *Tariff) FindCommune(ctx context.Context, id int64, wilayaID int64) (*models.Commune, error) {
	var c models.Commune
	err := t.Db.WithContext(ctx).Where("id = ? AND wilaya_id = ?", id, wilayaID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (t *Tariff) ListWilayas(ctx context.Context) ([]*models.Wilaya, error) {
	var ws []*models.Wilaya
	err := t.Db.WithContext(ctx).Order("id").Find(&ws).Error
	return ws, err
}
