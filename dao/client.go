package dao

import (
	"Souq/config"
	"Souq/models"
	"Souq/pkg/referral"
	"context"

	"gorm.io/gorm"
)

type Client struct {
	Repo[models.Client]
	referralSalt string
}

func NewClient(db *gorm.DB, salt config.ReferralSalt) *Client {
	return &Client{
		Repo:         NewRepo[models.Client](db),
		referralSalt: string(salt),
	}
}

func (c *Client) WithTx(tx *gorm.DB) *Client {
	return &Client{Repo: Repo[models.Client]{Db: tx}, referralSalt: c.referralSalt}
}

// Create inserts the client and derives their referral code from the new
// id. Two steps because the code needs the auto-increment value.
func (c *Client) Create(ctx context.Context, client *models.Client) error {
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		code, err := referral.Encode(c.referralSalt, client.ID)
		if err != nil {
			return err
		}
		client.ReferralCode = code
		return tx.Model(client).Update("referral_code", code).Error
	})
}

func (c *Client) FindByReferralCode(ctx context.Context, code string) (*models.Client, error) {
	return c.FindByWhere(ctx, "referral_code = ?", code)
}

func (c *Client) IncrementOrders(ctx context.Context, clientID int64) error {
	return c.Db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", clientID).
		Update("orders_count", gorm.Expr("orders_count + ?", 1)).Error
}
