package service

import (
	"Souq/config"
	"Souq/dao"
	"Souq/models"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database. A named DSN with
// cache=shared plus a single connection keeps gorm's pool from landing on
// an empty second database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Order{}, &models.OrderItem{},
		&models.Client{},
		&models.PromoCode{},
		&models.LoyaltyPoint{}, &models.LoyaltySetting{},
		&models.DeliveryTariff{}, &models.Wilaya{}, &models.Commune{},
		&models.Product{}, &models.Specification{}, &models.ProductSpecValue{},
		&models.Cart{}, &models.CartItem{},
	))
	return db
}

type testEnv struct {
	db *gorm.DB

	orderDAO   *dao.Order
	clientDAO  *dao.Client
	promoDAO   *dao.Promo
	loyaltyDAO *dao.Loyalty
	tariffDAO  *dao.Tariff
	productDAO *dao.Product
	cartDAO    *dao.Cart

	tariff   *TariffService
	discount *DiscountService
	loyalty  *LoyaltyService
	orders   *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	env := &testEnv{
		db:         db,
		orderDAO:   dao.NewOrder(db),
		clientDAO:  dao.NewClient(db, config.ReferralSalt("souq-test")),
		promoDAO:   dao.NewPromo(db),
		loyaltyDAO: dao.NewLoyalty(db),
		tariffDAO:  dao.NewTariff(db),
		productDAO: dao.NewProduct(db),
		cartDAO:    dao.NewCart(db),
	}
	env.tariff = &TariffService{DB: db, TariffDAO: env.tariffDAO}
	env.discount = &DiscountService{
		DB:         db,
		PromoDAO:   env.promoDAO,
		ClientDAO:  env.clientDAO,
		OrderDAO:   env.orderDAO,
		LoyaltyDAO: env.loyaltyDAO,
	}
	env.loyalty = &LoyaltyService{DB: db, LoyaltyDAO: env.loyaltyDAO}
	env.orders = &OrderService{
		DB:         db,
		OrderDAO:   env.orderDAO,
		ProductDAO: env.productDAO,
		ClientDAO:  env.clientDAO,
		PromoDAO:   env.promoDAO,
		LoyaltyDAO: env.loyaltyDAO,
		CartDAO:    env.cartDAO,
		TariffDAO:  env.tariffDAO,
		Tariff:     env.tariff,
		Discount:   env.discount,
		Loyalty:    env.loyalty,
	}
	return env
}

// seedAlgiers creates wilaya 16 with one commune and an active DOMICILE
// tariff at 600 DA. Returns the commune id.
func (e *testEnv) seedAlgiers(t *testing.T) int64 {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Wilaya{ID: 16, Code: "16", Name: "Alger"}).Error)
	commune := &models.Commune{WilayaID: 16, Name: "Bab El Oued"}
	require.NoError(t, e.db.Create(commune).Error)
	require.NoError(t, e.db.Create(&models.DeliveryTariff{
		WilayaID: 16, DeliveryType: models.DeliveryDomicile, Price: 600, IsActive: true,
	}).Error)
	return commune.ID
}

func (e *testEnv) seedProduct(t *testing.T, name string, price, stock int64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price, Stock: stock, Status: models.ProductOnShelf}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) seedClient(t *testing.T, phone string) *models.Client {
	t.Helper()
	c := &models.Client{Phone: phone}
	require.NoError(t, e.clientDAO.Create(context.Background(), c))
	return c
}

func (e *testEnv) seedPromo(t *testing.T, promo *models.PromoCode) *models.PromoCode {
	t.Helper()
	require.NoError(t, e.db.Create(promo).Error)
	return promo
}

func (e *testEnv) seedSettings(t *testing.T, s *models.LoyaltySetting) {
	t.Helper()
	s.ID = 1
	require.NoError(t, e.db.Create(s).Error)
}

func (e *testEnv) seedPoints(t *testing.T, clientID, points int64) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.LoyaltyPoint{
		ClientID: clientID, Points: points, Description: "seed", SourceID: fmt.Sprintf("seed:%d:%d", clientID, points),
	}).Error)
}

func ptr(v int64) *int64 { return &v }
