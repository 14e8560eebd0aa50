package service

import (
	"Souq/dao"
	"Souq/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeem_CappedByPayable(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{PointsConversionRate: 1})
	client := env.seedClient(t, "0550000001")
	env.seedPoints(t, client.ID, 300)

	discount, points, err := env.loyalty.Redeem(context.Background(), env.db, client.ID, 200, "SN-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), discount)
	assert.Equal(t, int64(200), points)

	balance, err := env.loyaltyDAO.Balance(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestRedeem_CappedByBalance(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{PointsConversionRate: 1})
	client := env.seedClient(t, "0550000001")
	env.seedPoints(t, client.ID, 300)

	discount, points, err := env.loyalty.Redeem(context.Background(), env.db, client.ID, 1000, "SN-1")
	require.NoError(t, err)
	assert.Equal(t, int64(300), discount)
	assert.Equal(t, int64(300), points)
}

func TestRedeem_ConversionRateFloors(t *testing.T) {
	env := newTestEnv(t)
	// 5 DA per point: 102 DA payable buys at most 20 points
	env.seedSettings(t, &models.LoyaltySetting{PointsConversionRate: 5})
	client := env.seedClient(t, "0550000001")
	env.seedPoints(t, client.ID, 1000)

	discount, points, err := env.loyalty.Redeem(context.Background(), env.db, client.ID, 102, "SN-1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), points)
	assert.Equal(t, int64(100), discount)
	assert.LessOrEqual(t, discount, int64(102))
}

func TestRedeem_NothingToRedeem(t *testing.T) {
	env := newTestEnv(t)
	env.seedSettings(t, &models.LoyaltySetting{PointsConversionRate: 1})
	client := env.seedClient(t, "0550000001")

	discount, points, err := env.loyalty.Redeem(context.Background(), env.db, client.ID, 500, "SN-1")
	require.NoError(t, err)
	assert.Zero(t, discount)
	assert.Zero(t, points)

	var count int64
	require.NoError(t, env.db.Model(&models.LoyaltyPoint{}).Count(&count).Error)
	assert.Zero(t, count, "no ledger row for a zero redemption")
}

func TestCredit_IdempotentPerSource(t *testing.T) {
	env := newTestEnv(t)
	client := env.seedClient(t, "0550000001")
	source := dao.SourceID("SN-1", models.LoyaltySourceOrderEarn)

	credited, err := env.loyalty.Credit(context.Background(), env.db, client.ID, 50, source, "points earned on order SN-1")
	require.NoError(t, err)
	assert.True(t, credited)

	credited, err = env.loyalty.Credit(context.Background(), env.db, client.ID, 50, source, "points earned on order SN-1")
	require.NoError(t, err)
	assert.False(t, credited)

	balance, err := env.loyaltyDAO.Balance(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	client := env.seedClient(t, "0550000001")
	env.seedPoints(t, client.ID, 120)
	env.seedPoints(t, client.ID, -20)

	resp, err := env.loyalty.Dashboard(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Balance)
	require.Len(t, resp.Records, 2)
	// newest first
	assert.Equal(t, int64(-20), resp.Records[0].Points)
}
