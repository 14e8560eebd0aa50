package service

import (
	"Souq/models"
	"Souq/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(t *testing.T, env *testEnv, code string, amount int64, who *types.Requester) (*types.CheckPromoResponse, error) {
	t.Helper()
	if who == nil {
		who = &types.Requester{}
	}
	return env.discount.Probe(context.Background(), &types.CheckPromoRequest{Code: code, Amount: amount}, who)
}

func TestPromo_Percent(t *testing.T) {
	env := newTestEnv(t)
	env.seedPromo(t, &models.PromoCode{Code: "WELCOME10", Type: models.PromoPercent, DiscountValue: 10, IsActive: true})

	resp, err := probe(t, env, "WELCOME10", 5000, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.Discount)
	assert.False(t, resp.IsFreeShipping)
	assert.Equal(t, "WELCOME10", resp.Code)
}

func TestPromo_PercentOver100CappedAtSubtotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedPromo(t, &models.PromoCode{Code: "BIG", Type: models.PromoPercent, DiscountValue: 150, IsActive: true})

	resp, err := probe(t, env, "BIG", 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.Discount)
}

func TestPromo_FixedCappedAtSubtotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedPromo(t, &models.PromoCode{Code: "MINUS2000", Type: models.PromoFixed, DiscountValue: 2000, IsActive: true})

	resp, err := probe(t, env, "MINUS2000", 1500, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), resp.Discount)
}

func TestPromo_FreeShipping(t *testing.T) {
	env := newTestEnv(t)
	env.seedPromo(t, &models.PromoCode{Code: "SHIPFREE", Type: models.PromoFreeShipping, IsActive: true})

	resp, err := probe(t, env, "SHIPFREE", 5000, nil)
	require.NoError(t, err)
	assert.True(t, resp.IsFreeShipping)
	assert.Zero(t, resp.Discount)
}

func TestPromo_RejectionsShareOneMessage(t *testing.T) {
	env := newTestEnv(t)
	expired := time.Now().Add(-time.Hour)
	env.seedPromo(t, &models.PromoCode{Code: "OFF", Type: models.PromoFixed, DiscountValue: 100, IsActive: false})
	env.seedPromo(t, &models.PromoCode{Code: "OLD", Type: models.PromoFixed, DiscountValue: 100, IsActive: true, ExpiresAt: &expired})
	env.seedPromo(t, &models.PromoCode{Code: "USEDUP", Type: models.PromoFixed, DiscountValue: 100, IsActive: true, MaxUse: 1, UsedCount: 1})

	for _, code := range []string{"NOSUCH", "OFF", "OLD", "USEDUP"} {
		_, err := probe(t, env, code, 5000, nil)
		assert.ErrorIs(t, err, ErrInvalidCode, "code %s", code)
	}
}

func TestReferral_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{ReferralDiscountAmount: 400, PointsConversionRate: 1})
	referrer := env.seedClient(t, "0550000001")
	require.NotEmpty(t, referrer.ReferralCode)

	d, err := env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{IP: "41.0.0.9"}, "0661112233")
	require.NoError(t, err)
	assert.Equal(t, DiscountReferral, d.Source)
	assert.Equal(t, int64(400), d.Amount)
	require.NotNil(t, d.ReferrerID)
	assert.Equal(t, referrer.ID, *d.ReferrerID)
	assert.Equal(t, referrer.ReferralCode, d.ReferralCode)
}

func TestReferral_SelfReferralRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{ReferralDiscountAmount: 400, PointsConversionRate: 1})
	referrer := env.seedClient(t, "0550000001")

	_, err := env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{ClientID: ptr(referrer.ID), IP: "41.0.0.9"}, "0661112233")
	assert.ErrorIs(t, err, ErrReferralRejected)
	// same wording as every other code rejection
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestReferral_SamePhoneAsReferrerRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{ReferralDiscountAmount: 400, PointsConversionRate: 1})
	referrer := env.seedClient(t, "0550000001")

	_, err := env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{IP: "41.0.0.9"}, "0550000001")
	assert.ErrorIs(t, err, ErrReferralRejected)
}

func TestReferral_RepeatCustomerRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{ReferralDiscountAmount: 400, PointsConversionRate: 1})
	referrer := env.seedClient(t, "0550000001")

	require.NoError(t, env.db.Create(&models.Order{
		OrderSn: "SN-PRIOR", Phone: "0661112233", FirstName: "a", LastName: "b", Address: "c",
		WilayaID: 16, CommuneID: 1, WilayaName: "Alger", CommuneName: "x",
		DeliveryType: models.DeliveryDomicile, Status: models.OrderPending,
	}).Error)

	_, err := env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{IP: "41.0.0.9"}, "0661112233")
	assert.ErrorIs(t, err, ErrReferralRejected)
}

func TestReferral_IPAndPhoneCollisionRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{ReferralDiscountAmount: 400, PointsConversionRate: 1})
	referrer := env.seedClient(t, "0550000001")

	// the referrer once ordered from ip 41.0.0.9 with phone 0770000000
	require.NoError(t, env.db.Create(&models.Order{
		OrderSn: "SN-REF", ClientID: &referrer.ID, Phone: "0770000000", ClientIP: "41.0.0.9",
		FirstName: "a", LastName: "b", Address: "c",
		WilayaID: 16, CommuneID: 1, WilayaName: "Alger", CommuneName: "x",
		DeliveryType: models.DeliveryDomicile, Status: models.OrderDelivered,
	}).Error)

	_, err := env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{IP: "41.0.0.9"}, "0661112233")
	assert.ErrorIs(t, err, ErrReferralRejected, "shared ip")

	_, err = env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{IP: "197.0.0.1"}, "0770000000")
	assert.ErrorIs(t, err, ErrReferralRejected, "shared phone")
}

func TestReferral_TakesPrecedenceOverPromo(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{ReferralDiscountAmount: 400, PointsConversionRate: 1})
	referrer := env.seedClient(t, "0550000001")
	// a promo row that happens to carry the same code string must lose
	env.seedPromo(t, &models.PromoCode{Code: referrer.ReferralCode, Type: models.PromoPercent, DiscountValue: 50, IsActive: true})

	d, err := env.discount.Resolve(context.Background(), env.db, referrer.ReferralCode, 5000,
		&types.Requester{IP: "41.0.0.9"}, "0661112233")
	require.NoError(t, err)
	assert.Equal(t, DiscountReferral, d.Source)
	assert.Equal(t, int64(400), d.Amount)
}

func TestDiscount_EmptyCodeIsNoDiscount(t *testing.T) {
	env := newTestEnv(t)

	d, err := env.discount.Resolve(context.Background(), env.db, "  ", 5000, &types.Requester{}, "")
	require.NoError(t, err)
	assert.Equal(t, DiscountNone, d.Source)
	assert.Zero(t, d.Amount)
}
