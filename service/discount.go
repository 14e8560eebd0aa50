package service

import (
	"Souq/dao"
	"Souq/models"
	"Souq/types"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type DiscountService struct {
	DB         *gorm.DB
	PromoDAO   *dao.Promo
	ClientDAO  *dao.Client
	OrderDAO   *dao.Order
	LoyaltyDAO *dao.Loyalty
}

var _ IDiscountService = (*DiscountService)(nil)

type IDiscountService interface {
	Resolve(ctx context.Context, tx *gorm.DB, code string, subtotal int64, buyer *types.Requester, phone string) (*Discount, error)
	Probe(ctx context.Context, req *types.CheckPromoRequest, buyer *types.Requester) (*types.CheckPromoResponse, error)
}

type DiscountSource string

const (
	DiscountNone     DiscountSource = ""
	DiscountPromo    DiscountSource = "PROMO"
	DiscountReferral DiscountSource = "REFERRAL"
)

// Discount is the resolved outcome of one code. At most one source per
// order: a code that turns out to be a referral code takes the referral
// path and never produces a promo discount.
type Discount struct {
	Source       DiscountSource
	Amount       int64 // DA, already capped at subtotal
	FreeShipping bool
	PromoCodeID  *int64
	ReferrerID   *int64
	ReferralCode string
}

// Resolve validates the supplied code against the given subtotal inside
// the caller's transaction. Referral resolution is attempted first; a code
// that does not belong to any client falls through to the promo table.
func (s *DiscountService) Resolve(ctx context.Context, tx *gorm.DB, code string, subtotal int64, buyer *types.Requester, phone string) (*Discount, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return &Discount{}, nil
	}

	referrer, err := s.ClientDAO.WithTx(tx).FindByReferralCode(ctx, code)
	switch {
	case err == nil:
		return s.resolveReferral(ctx, tx, referrer, subtotal, buyer, phone)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.resolvePromo(ctx, tx, code, subtotal)
	default:
		return nil, err
	}
}

// resolveReferral runs the fraud checks. Each failure returns the same
// generic rejection so a prober learns nothing about why.
func (s *DiscountService) resolveReferral(ctx context.Context, tx *gorm.DB, referrer *models.Client, subtotal int64, buyer *types.Requester, phone string) (*Discount, error) {
	orderDAO := s.OrderDAO.WithTx(tx)

	// no self-referral, by account or by phone
	if buyer.ClientID != nil && *buyer.ClientID == referrer.ID {
		return nil, ErrReferralRejected
	}
	if referrer.Phone != "" && referrer.Phone == phone {
		return nil, ErrReferralRejected
	}

	// first order only
	if buyer.ClientID != nil || phone != "" {
		prior, err := orderDAO.CountByPurchaser(ctx, buyer.ClientID, phone)
		if err != nil {
			return nil, err
		}
		if prior > 0 {
			return nil, ErrReferralRejected
		}
	}

	// anti-farming: the referrer must never have ordered from the same
	// IP or phone as this purchaser
	shared, err := orderDAO.CountByClientSharing(ctx, referrer.ID, buyer.IP, phone)
	if err != nil {
		return nil, err
	}
	if shared > 0 {
		return nil, ErrReferralRejected
	}

	settings, err := s.LoyaltyDAO.WithTx(tx).Settings(ctx)
	if err != nil {
		return nil, err
	}
	amount := settings.ReferralDiscountAmount
	if amount > subtotal {
		amount = subtotal
	}
	return &Discount{
		Source:       DiscountReferral,
		Amount:       amount,
		ReferrerID:   &referrer.ID,
		ReferralCode: referrer.ReferralCode,
	}, nil
}

func (s *DiscountService) resolvePromo(ctx context.Context, tx *gorm.DB, code string, subtotal int64) (*Discount, error) {
	promo, err := s.PromoDAO.WithTx(tx).FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if promo == nil || !promo.Usable(time.Now()) {
		return nil, ErrInvalidCode
	}

	d := &Discount{Source: DiscountPromo, PromoCodeID: &promo.ID}
	switch promo.Type {
	case models.PromoPercent:
		d.Amount = subtotal * promo.DiscountValue / 100
		if d.Amount > subtotal {
			d.Amount = subtotal
		}
	case models.PromoFixed:
		d.Amount = promo.DiscountValue
		if d.Amount > subtotal {
			d.Amount = subtotal
		}
	case models.PromoFreeShipping:
		d.FreeShipping = true
	default:
		return nil, ErrInvalidCode
	}
	return d, nil
}

// Probe answers the pre-checkout UI without consuming a use. Runs outside
// any checkout transaction, against the live tables.
func (s *DiscountService) Probe(ctx context.Context, req *types.CheckPromoRequest, buyer *types.Requester) (*types.CheckPromoResponse, error) {
	d, err := s.Resolve(ctx, s.DB, req.Code, req.Amount, buyer, "")
	if err != nil {
		return nil, err
	}
	return &types.CheckPromoResponse{
		Discount:       d.Amount,
		IsFreeShipping: d.FreeShipping,
		Code:           strings.TrimSpace(req.Code),
	}, nil
}
