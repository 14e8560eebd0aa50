package dao

import (
	"Souq/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Loyalty struct {
	Repo[models.LoyaltyPoint]
}

func NewLoyalty(db *gorm.DB) *Loyalty {
	return &Loyalty{
		Repo: NewRepo[models.LoyaltyPoint](db),
	}
}

func (l *Loyalty) WithTx(tx *gorm.DB) *Loyalty {
	return &Loyalty{Repo: Repo[models.LoyaltyPoint]{Db: tx}}
}

// Balance is always computed from the ledger, never cached in a column.
func (l *Loyalty) Balance(ctx context.Context, clientID int64) (int64, error) {
	var balance int64
	err := l.Db.WithContext(ctx).Model(&models.LoyaltyPoint{}).
		Select("COALESCE(SUM(points), 0)").
		Where("client_id = ?", clientID).
		Scan(&balance).Error
	return balance, err
}

// ExistsBySource reports whether a ledger row for this (client, source)
// was already written. Guards settlement against double credit.
func (l *Loyalty) ExistsBySource(ctx context.Context, clientID int64, sourceID string) (bool, error) {
	return l.IsExist(ctx, "client_id = ? AND source_id = ?", clientID, sourceID)
}

func (l *Loyalty) ListRecent(ctx context.Context, clientID int64, limit int) ([]*models.LoyaltyPoint, error) {
	var entries []*models.LoyaltyPoint
	err := l.Db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id desc").Limit(limit).
		Find(&entries).Error
	return entries, err
}

// SourceID builds the ledger idempotency key, e.g. "order:123:earn".
func SourceID(orderSn, kind string) string {
	return fmt.Sprintf("order:%s:%s", orderSn, kind)
}

// Settings returns the singleton row, falling back to defaults when the
// admin never saved one.
func (l *Loyalty) Settings(ctx context.Context) (*models.LoyaltySetting, error) {
	var s models.LoyaltySetting
	err := l.Db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultLoyaltySetting(), nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (l *Loyalty) SaveSettings(ctx context.Context, s *models.LoyaltySetting) error {
	s.ID = 1
	return l.Db.WithContext(ctx).Save(s).Error
}
