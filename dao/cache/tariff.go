package cache

import (
	"Souq/models"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tariff caches delivery prices and the wilaya list. Reference data only:
// the checkout transaction always reads MySQL, this cache feeds the public
// quote and listing endpoints.
type Tariff struct {
	Redis *redis.Client
}

func NewTariff(rdb *redis.Client) *Tariff {
	return &Tariff{Redis: rdb}
}

const tariffTTL = 10 * time.Minute

func tariffKey(wilayaID int64, deliveryType models.DeliveryType) string {
	return fmt.Sprintf("souq:tariff:%d:%s", wilayaID, deliveryType)
}

// GetPrice returns (price, true) on a hit. Any redis error counts as a
// miss, the caller falls through to MySQL.
func (t *Tariff) GetPrice(ctx context.Context, wilayaID int64, deliveryType models.DeliveryType) (int64, bool) {
	val, err := t.Redis.Get(ctx, tariffKey(wilayaID, deliveryType)).Int64()
	if err != nil {
		return 0, false
	}
	return val, true
}

func (t *Tariff) SetPrice(ctx context.Context, wilayaID int64, deliveryType models.DeliveryType, price int64) {
	t.Redis.Set(ctx, tariffKey(wilayaID, deliveryType), price, tariffTTL)
}

func (t *Tariff) InvalidatePrice(ctx context.Context, wilayaID int64, deliveryType models.DeliveryType) {
	t.Redis.Del(ctx, tariffKey(wilayaID, deliveryType))
}

const wilayasKey = "souq:wilayas"

func (t *Tariff) GetWilayas(ctx context.Context) ([]*models.Wilaya, bool) {
	raw, err := t.Redis.Get(ctx, wilayasKey).Bytes()
	if err != nil {
		return nil, false
	}
	var ws []*models.Wilaya
	if json.Unmarshal(raw, &ws) != nil {
		return nil, false
	}
	return ws, true
}

func (t *Tariff) SetWilayas(ctx context.Context, ws []*models.Wilaya) {
	raw, err := json.Marshal(ws)
	if err != nil {
		return
	}
	t.Redis.Set(ctx, wilayasKey, raw, time.Hour)
}
