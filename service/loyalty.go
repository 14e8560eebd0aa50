package service

import (
	"Souq/dao"
	"Souq/models"
	"Souq/types"
	"context"

	"gorm.io/gorm"
)

type LoyaltyService struct {
	DB         *gorm.DB
	LoyaltyDAO *dao.Loyalty
}

var _ ILoyaltyService = (*LoyaltyService)(nil)

type ILoyaltyService interface {
	Redeem(ctx context.Context, tx *gorm.DB, clientID int64, payable int64, orderSn string) (discount int64, points int64, err error)
	Credit(ctx context.Context, tx *gorm.DB, clientID int64, points int64, sourceID string, description string) (bool, error)
	Dashboard(ctx context.Context, clientID int64) (*types.LoyaltyBalance, error)
}

// Redeem converts as much of the client's balance as the remaining payable
// amount allows into a discount, and writes the matching negative ledger
// row. Returns (0, 0, nil) when there is nothing to redeem.
func (s *LoyaltyService) Redeem(ctx context.Context, tx *gorm.DB, clientID int64, payable int64, orderSn string) (int64, int64, error) {
	loyaltyDAO := s.LoyaltyDAO.WithTx(tx)

	settings, err := loyaltyDAO.Settings(ctx)
	if err != nil {
		return 0, 0, err
	}
	rate := settings.PointsConversionRate
	if rate <= 0 || payable <= 0 {
		return 0, 0, nil
	}

	balance, err := loyaltyDAO.Balance(ctx, clientID)
	if err != nil {
		return 0, 0, err
	}

	points := payable / rate // floor, so points*rate never exceeds payable
	if points > balance {
		points = balance
	}
	if points <= 0 {
		return 0, 0, nil
	}

	entry := &models.LoyaltyPoint{
		ClientID:    clientID,
		Points:      -points,
		Description: "points redeemed on order " + orderSn,
		SourceID:    dao.SourceID(orderSn, models.LoyaltySourceRedeem),
	}
	if err := loyaltyDAO.Create(ctx, entry); err != nil {
		return 0, 0, err
	}
	return points * rate, points, nil
}

// Credit appends a positive ledger row unless one with the same source was
// already written. The (client, source) existence check is what makes
// settlement idempotent.
func (s *LoyaltyService) Credit(ctx context.Context, tx *gorm.DB, clientID int64, points int64, sourceID string, description string) (bool, error) {
	if points <= 0 {
		return false, nil
	}
	loyaltyDAO := s.LoyaltyDAO.WithTx(tx)

	exists, err := loyaltyDAO.ExistsBySource(ctx, clientID, sourceID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	entry := &models.LoyaltyPoint{
		ClientID:    clientID,
		Points:      points,
		Description: description,
		SourceID:    sourceID,
	}
	if err := loyaltyDAO.Create(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}

func (s *LoyaltyService) Dashboard(ctx context.Context, clientID int64) (*types.LoyaltyBalance, error) {
	balance, err := s.LoyaltyDAO.Balance(ctx, clientID)
	if err != nil {
		return nil, err
	}
	entries, err := s.LoyaltyDAO.ListRecent(ctx, clientID, 20)
	if err != nil {
		return nil, err
	}
	resp := &types.LoyaltyBalance{
		Balance: balance,
		Records: make([]types.PointRecord, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Records = append(resp.Records, types.PointRecord{
			ID:          e.ID,
			Points:      e.Points,
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
