package dao

import (
	"Souq/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	Repo[models.Cart]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{
		Repo: NewRepo[models.Cart](db),
	}
}

func (c *Cart) WithTx(tx *gorm.DB) *Cart {
	return &Cart{Repo: Repo[models.Cart]{Db: tx}}
}

// GetOrCreate finds the cart for a client or guest session, creating it on
// first touch. Guests with no token yet get a fresh uuid the frontend
// stores in a cookie.
func (c *Cart) GetOrCreate(ctx context.Context, clientID *int64, sessionToken string) (*models.Cart, error) {
	var cart models.Cart
	query := c.Db.WithContext(ctx)
	switch {
	case clientID != nil:
		err := query.Where("client_id = ?", *clientID).First(&cart).Error
		if err == nil {
			return &cart, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cart = models.Cart{ClientID: clientID, SessionToken: uuid.NewString()}
	case sessionToken != "":
		err := query.Where("session_token = ? AND client_id IS NULL", sessionToken).First(&cart).Error
		if err == nil {
			return &cart, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cart = models.Cart{SessionToken: sessionToken}
	default:
		cart = models.Cart{SessionToken: uuid.NewString()}
	}
	if err := c.Db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Cart) AddItem(ctx context.Context, item *models.CartItem) error {
	return c.Db.WithContext(ctx).Create(item).Error
}

func (c *Cart) Items(ctx context.Context, cartID int64) ([]*models.CartItem, error) {
	var items []*models.CartItem
	err := c.Db.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error
	return items, err
}

// Clear drops the items of every cart matching the buyer identity. Called
// only inside a successful checkout transaction.
func (c *Cart) Clear(ctx context.Context, clientID *int64, sessionToken string) error {
	var cartIDs []int64
	query := c.Db.WithContext(ctx).Model(&models.Cart{})
	switch {
	case clientID != nil:
		query = query.Where("client_id = ?", *clientID)
	case sessionToken != "":
		query = query.Where("session_token = ?", sessionToken)
	default:
		return nil
	}
	if err := query.Pluck("id", &cartIDs).Error; err != nil {
		return err
	}
	if len(cartIDs) == 0 {
		return nil
	}
	return c.Db.WithContext(ctx).
		Where("cart_id IN ?", cartIDs).
		Delete(&models.CartItem{}).Error
}
