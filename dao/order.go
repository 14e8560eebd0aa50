package dao

import (
	"Souq/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// WithTx returns a clone bound to tx so every write lands in the caller's
// transaction.
func (o *Order) WithTx(tx *gorm.DB) *Order {
	return &Order{Repo: Repo[models.Order]{Db: tx}}
}

func (o *Order) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	if err := o.Db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	for _, item := range items {
		item.OrderID = order.ID
	}
	return o.Db.WithContext(ctx).Create(&items).Error
}

func (o *Order) FindBySn(ctx context.Context, sn string) (*models.Order, error) {
	return o.FindByWhere(ctx, "order_sn = ?", sn)
}

func (o *Order) FindItems(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	err := o.Db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// UpdateStatusFrom flips status only when the row still holds the expected
// current status. Returns the number of rows changed; 0 means a concurrent
// update won or the transition was stale.
func (o *Order) UpdateStatusFrom(ctx context.Context, orderID int64, from, to models.OrderStatus) (int64, error) {
	result := o.Db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// CountByPurchaser counts prior orders by the same buyer, identified by
// client id when known, otherwise by phone. Cancelled orders still count:
// a shopper who already went through checkout is no longer a fresh referral.
func (o *Order) CountByPurchaser(ctx context.Context, clientID *int64, phone string) (int64, error) {
	var count int64
	query := o.Db.WithContext(ctx).Model(&models.Order{})
	if clientID != nil {
		query = query.Where("client_id = ? OR phone = ?", *clientID, phone)
	} else {
		query = query.Where("phone = ?", phone)
	}
	err := query.Count(&count).Error
	return count, err
}

// CountByClientSharing counts orders placed by clientID that share the
// given ip or phone. Used by the referral fraud check. Empty values are
// skipped so a missing header never matches anything.
func (o *Order) CountByClientSharing(ctx context.Context, clientID int64, ip, phone string) (int64, error) {
	query := o.Db.WithContext(ctx).Model(&models.Order{}).Where("client_id = ?", clientID)
	switch {
	case ip != "" && phone != "":
		query = query.Where("client_ip = ? OR phone = ?", ip, phone)
	case ip != "":
		query = query.Where("client_ip = ?", ip)
	case phone != "":
		query = query.Where("phone = ?", phone)
	default:
		return 0, nil
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// ListByClient pages newest-first with an id cursor; fetches one extra row
// to detect whether more pages exist.
func (o *Order) ListByClient(ctx context.Context, clientID int64, cursor int64, pageSize int) ([]*models.Order, error) {
	query := o.Db.WithContext(ctx).Where("client_id = ?", clientID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	var orders []*models.Order
	err := query.Order("id desc").Limit(pageSize + 1).Find(&orders).Error
	return orders, err
}
