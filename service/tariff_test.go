package service

import (
	"Souq/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTariff_Resolve(t *testing.T) {
	env := newTestEnv(t)
	env.seedAlgiers(t)

	tariff, err := env.tariff.ResolveTx(context.Background(), env.db, 16, models.DeliveryDomicile)
	require.NoError(t, err)
	assert.Equal(t, int64(600), tariff.Price)
}

func TestTariff_MissingPairRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedAlgiers(t)

	_, err := env.tariff.ResolveTx(context.Background(), env.db, 16, models.DeliveryStopdesk)
	assert.ErrorIs(t, err, ErrUnsupportedDelivery)
}

func TestTariff_DisabledPairHardBlocks(t *testing.T) {
	env := newTestEnv(t)
	env.seedAlgiers(t)
	require.NoError(t, env.db.Model(&models.DeliveryTariff{}).
		Where("wilaya_id = ?", 16).
		Update("is_active", false).Error)

	_, err := env.tariff.ResolveTx(context.Background(), env.db, 16, models.DeliveryDomicile)
	assert.ErrorIs(t, err, ErrUnsupportedDelivery)
}

func TestTariff_QuoteWithoutCache(t *testing.T) {
	env := newTestEnv(t)
	env.seedAlgiers(t)

	quote, err := env.tariff.Quote(context.Background(), 16, models.DeliveryDomicile)
	require.NoError(t, err)
	assert.Equal(t, int64(600), quote.Price)
	assert.Equal(t, "DOMICILE", quote.DeliveryType)
}
