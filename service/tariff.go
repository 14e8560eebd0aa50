package service

import (
	"Souq/dao"
	"Souq/dao/cache"
	"Souq/models"
	"Souq/types"
	"context"

	"gorm.io/gorm"
)

type TariffService struct {
	DB        *gorm.DB
	TariffDAO *dao.Tariff
	Cache     *cache.Tariff
}

var _ ITariffService = (*TariffService)(nil)

type ITariffService interface {
	ResolveTx(ctx context.Context, tx *gorm.DB, wilayaID int64, deliveryType models.DeliveryType) (*models.DeliveryTariff, error)
	Quote(ctx context.Context, wilayaID int64, deliveryType models.DeliveryType) (*types.DeliveryQuote, error)
	ListWilayas(ctx context.Context) ([]*models.Wilaya, error)
}

// ResolveTx is the checkout-time lookup. It runs on the caller's
// transaction and never consults the cache: an admin disabling a pair must
// block orders immediately.
func (s *TariffService) ResolveTx(ctx context.Context, tx *gorm.DB, wilayaID int64, deliveryType models.DeliveryType) (*models.DeliveryTariff, error) {
	tariff, err := s.TariffDAO.WithTx(tx).FindActive(ctx, wilayaID, deliveryType)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, ErrUnsupportedDelivery
	}
	return tariff, nil
}

// Quote serves the pre-checkout UI. Cache first, MySQL on miss.
func (s *TariffService) Quote(ctx context.Context, wilayaID int64, deliveryType models.DeliveryType) (*types.DeliveryQuote, error) {
	if s.Cache != nil {
		if price, ok := s.Cache.GetPrice(ctx, wilayaID, deliveryType); ok {
			return &types.DeliveryQuote{WilayaID: wilayaID, DeliveryType: string(deliveryType), Price: price}, nil
		}
	}
	tariff, err := s.TariffDAO.FindActive(ctx, wilayaID, deliveryType)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, ErrUnsupportedDelivery
	}
	if s.Cache != nil {
		s.Cache.SetPrice(ctx, wilayaID, deliveryType, tariff.Price)
	}
	return &types.DeliveryQuote{WilayaID: wilayaID, DeliveryType: string(deliveryType), Price: tariff.Price}, nil
}

func (s *TariffService) ListWilayas(ctx context.Context) ([]*models.Wilaya, error) {
	if s.Cache != nil {
		if ws, ok := s.Cache.GetWilayas(ctx); ok {
			return ws, nil
		}
	}
	ws, err := s.TariffDAO.ListWilayas(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.SetWilayas(ctx, ws)
	}
	return ws, nil
}
