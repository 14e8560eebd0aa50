package service

import (
	"Souq/dao"
	"Souq/models"
	"Souq/pkg/log"
	"Souq/pkg/snowflake"
	"Souq/types"
	"context"
	"encoding/json"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	OrderDAO   *dao.Order
	ProductDAO *dao.Product
	ClientDAO  *dao.Client
	PromoDAO   *dao.Promo
	LoyaltyDAO *dao.Loyalty
	CartDAO    *dao.Cart
	TariffDAO  *dao.Tariff
	Tariff     ITariffService
	Discount   IDiscountService
	Loyalty    ILoyaltyService
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	CreateOrder(ctx context.Context, req *types.CreateOrderRequest, who *types.Requester) (*types.OrderView, error)
	UpdateStatus(ctx context.Context, orderSn string, status string) (*types.OrderView, error)
	GetOrder(ctx context.Context, orderSn string, who *types.Requester) (*types.OrderView, error)
	GetOrderList(ctx context.Context, clientID int64, cursor int64, pageSize int) (*types.OrderList, error)
}

// CreateOrder runs the whole checkout in one transaction: tariff lookup,
// item snapshots, discount/referral resolution, loyalty redemption, promo
// use consumption, aggregate stock reservation, order + item insert and
// cart clearing. Any rejection rolls everything back.
func (s *OrderService) CreateOrder(ctx context.Context, req *types.CreateOrderRequest, who *types.Requester) (*types.OrderView, error) {
	deliveryType := models.DeliveryType(req.DeliveryType)

	var (
		created *models.Order
		lines   []*models.OrderItem
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tariffDAO := s.TariffDAO.WithTx(tx)

		wilaya, err := tariffDAO.FindWilaya(ctx, req.WilayaID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownLocation
		}
		if err != nil {
			return err
		}
		commune, err := tariffDAO.FindCommune(ctx, req.CommuneID, req.WilayaID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownLocation
		}
		if err != nil {
			return err
		}

		tariff, err := s.Tariff.ResolveTx(ctx, tx, req.WilayaID, deliveryType)
		if err != nil {
			return err
		}

		items, productsTotal, err := s.buildLines(ctx, tx, req.Items)
		if err != nil {
			return err
		}

		orderSn := snowflake.GenOrderSn()

		disc := &Discount{}
		if req.PromoCode != "" {
			disc, err = s.Discount.Resolve(ctx, tx, req.PromoCode, productsTotal, who, req.Phone)
			if err != nil {
				return err
			}
		}

		deliveryPrice := tariff.Price
		if disc.FreeShipping {
			deliveryPrice = 0
		}
		discountTotal := disc.Amount

		var usedPoints int64
		if req.UseLoyaltyPoints && who.ClientID != nil {
			payable := productsTotal + deliveryPrice - discountTotal
			redeemed, points, err := s.Loyalty.Redeem(ctx, tx, *who.ClientID, payable, orderSn)
			if err != nil {
				return err
			}
			discountTotal += redeemed
			usedPoints = points
		}

		totalPrice := productsTotal + deliveryPrice - discountTotal
		if totalPrice < 0 {
			totalPrice = 0
		}

		// consuming a use and reserving stock are both guarded updates;
		// 0 rows means someone else got there first and we roll back
		if disc.Source == DiscountPromo {
			rows, err := s.PromoDAO.WithTx(tx).ConsumeUse(ctx, *disc.PromoCodeID)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrInvalidCode
			}
		}

		productDAO := s.ProductDAO.WithTx(tx)
		for _, item := range items {
			rows, err := productDAO.ReserveStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrInsufficientStock
			}
		}

		order := &models.Order{
			OrderSn:       orderSn,
			ClientID:      who.ClientID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Phone:         req.Phone,
			Address:       req.Address,
			ClientIP:      who.IP,
			WilayaID:      wilaya.ID,
			CommuneID:     commune.ID,
			WilayaName:    wilaya.Name,
			CommuneName:   commune.Name,
			DeliveryType:  deliveryType,
			DeliveryPrice: deliveryPrice,
			ProductsTotal: productsTotal,
			DiscountTotal: discountTotal,
			TotalPrice:    totalPrice,
			Status:        models.OrderPending,
			PromoCodeID:   disc.PromoCodeID,
			ReferrerID:    disc.ReferrerID,
			ReferralCode:  disc.ReferralCode,
			UsedPoints:    usedPoints,
		}
		if err := s.OrderDAO.WithTx(tx).CreateWithItems(ctx, order, items); err != nil {
			return err
		}

		if who.ClientID != nil {
			if err := s.ClientDAO.WithTx(tx).IncrementOrders(ctx, *who.ClientID); err != nil {
				return err
			}
		}
		if err := s.CartDAO.WithTx(tx).Clear(ctx, who.ClientID, who.CartSession); err != nil {
			return err
		}

		created = order
		lines = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("order created",
		zap.String("order_sn", created.OrderSn),
		zap.Int64("total_price", created.TotalPrice),
		zap.Int64("discount_total", created.DiscountTotal),
	)
	return orderView(created, lines), nil
}

// buildLines loads each product, validates the chosen specification values
// and freezes name, unit price and metadata into order items.
func (s *OrderService) buildLines(ctx context.Context, tx *gorm.DB, inputs []types.OrderItemInput) ([]*models.OrderItem, int64, error) {
	productDAO := s.ProductDAO.WithTx(tx)

	var (
		items         []*models.OrderItem
		productsTotal int64
	)
	for _, in := range inputs {
		product, err := productDAO.FindOnShelf(ctx, in.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrProductUnavailable
		}
		if err != nil {
			return nil, 0, err
		}

		snapshot := models.ItemSnapshot{Name: product.Name}
		names := make([]string, 0, len(in.SpecificationValues))
		for name := range in.SpecificationValues {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			value := in.SpecificationValues[name]
			spec, err := productDAO.FindSpecification(ctx, name)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, ErrUnknownSpecValue
			}
			if err != nil {
				return nil, 0, err
			}
			if _, err := productDAO.FindSpecValue(ctx, product.ID, spec.ID, value); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, 0, ErrUnknownSpecValue
				}
				return nil, 0, err
			}
			snapshot.Specifications = append(snapshot.Specifications, models.SpecSnapshot{
				SpecificationID: spec.ID,
				Name:            name,
				Value:           value,
			})
		}

		raw, err := json.Marshal(snapshot)
		if err != nil {
			return nil, 0, err
		}
		item := &models.OrderItem{
			ProductID:        product.ID,
			ProductName:      product.Name,
			UnitPrice:        product.Price,
			Quantity:         in.Quantity,
			Subtotal:         product.Price * in.Quantity,
			MetadataSnapshot: raw,
		}
		productsTotal += item.Subtotal
		items = append(items, item)
	}
	return items, productsTotal, nil
}

// UpdateStatus drives the state machine. Re-submitting the current status
// is an idempotent no-op; an unreachable target is rejected. The guarded
// status write means that of two concurrent identical transitions only one
// runs the DELIVERED side effects.
func (s *OrderService) UpdateStatus(ctx context.Context, orderSn string, status string) (*types.OrderView, error) {
	to := models.OrderStatus(status)
	if !to.Valid() {
		return nil, ErrInvalidTransition
	}

	var updated *models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderDAO := s.OrderDAO.WithTx(tx)

		order, err := orderDAO.FindBySn(ctx, orderSn)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		if order.Status == to {
			updated = order
			return nil
		}
		if !order.Status.CanTransitionTo(to) {
			return ErrInvalidTransition
		}

		rows, err := orderDAO.UpdateStatusFrom(ctx, order.ID, order.Status, to)
		if err != nil {
			return err
		}
		if rows == 0 {
			// a concurrent update moved the order first
			return ErrInvalidTransition
		}
		order.Status = to

		if to == models.OrderDelivered {
			if err := s.settle(ctx, tx, order); err != nil {
				return err
			}
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orderView(updated, nil), nil
}

// settle runs the deferred side effects of delivery: loyalty accrual for
// the buyer, the referral bonus, and the variant-level stock decrement.
// Credits are keyed by (client, source) so a replay cannot double-pay.
func (s *OrderService) settle(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	settings, err := s.LoyaltyDAO.WithTx(tx).Settings(ctx)
	if err != nil {
		return err
	}

	if order.ClientID != nil && settings.EarnPointsPer100DA > 0 {
		earned := order.TotalPrice / 100 * settings.EarnPointsPer100DA
		if earned > 0 {
			_, err := s.Loyalty.Credit(ctx, tx, *order.ClientID, earned,
				dao.SourceID(order.OrderSn, models.LoyaltySourceOrderEarn),
				"points earned on order "+order.OrderSn)
			if err != nil {
				return err
			}
		}
	}

	if order.ReferrerID != nil && settings.ReferralRewardPoints > 0 {
		_, err := s.Loyalty.Credit(ctx, tx, *order.ReferrerID, settings.ReferralRewardPoints,
			dao.SourceID(order.OrderSn, models.LoyaltySourceReferral),
			"referral bonus for order "+order.OrderSn)
		if err != nil {
			return err
		}
	}

	items, err := s.OrderDAO.WithTx(tx).FindItems(ctx, order.ID)
	if err != nil {
		return err
	}
	productDAO := s.ProductDAO.WithTx(tx)
	for _, item := range items {
		if len(item.MetadataSnapshot) == 0 {
			continue
		}
		var snapshot models.ItemSnapshot
		if err := json.Unmarshal(item.MetadataSnapshot, &snapshot); err != nil {
			log.L.Warn("unreadable item snapshot at settlement",
				zap.String("order_sn", order.OrderSn), zap.Int64("item_id", item.ID))
			continue
		}
		for _, spec := range snapshot.Specifications {
			rows, err := productDAO.DecrementSpecValue(ctx, item.ProductID, spec.SpecificationID, spec.Value, item.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				// variant counter is short or gone; the aggregate was
				// already reserved at checkout, delivery still stands
				log.L.Warn("variant stock short at settlement",
					zap.String("order_sn", order.OrderSn),
					zap.Int64("product_id", item.ProductID),
					zap.String("value", spec.Value))
			}
		}
	}
	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderSn string, who *types.Requester) (*types.OrderView, error) {
	order, err := s.OrderDAO.FindBySn(ctx, orderSn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	// a client's order is visible to that client only; guest orders are
	// addressed by sn alone
	if order.ClientID != nil && (who.ClientID == nil || *who.ClientID != *order.ClientID) {
		return nil, ErrOrderNotFound
	}
	items, err := s.OrderDAO.FindItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return orderView(order, items), nil
}

func (s *OrderService) GetOrderList(ctx context.Context, clientID int64, cursor int64, pageSize int) (*types.OrderList, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	orders, err := s.OrderDAO.ListByClient(ctx, clientID, cursor, pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(orders) > pageSize {
		hasMore = true
		orders = orders[:pageSize]
	}

	resp := &types.OrderList{Orders: make([]types.OrderView, 0, len(orders)), HasMore: hasMore}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, *orderView(order, nil))
	}
	if len(orders) > 0 {
		resp.NextCursor = orders[len(orders)-1].ID
	}
	return resp, nil
}

func orderView(order *models.Order, items []*models.OrderItem) *types.OrderView {
	view := &types.OrderView{
		OrderSn:       order.OrderSn,
		Status:        string(order.Status),
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		Phone:         order.Phone,
		Address:       order.Address,
		WilayaName:    order.WilayaName,
		CommuneName:   order.CommuneName,
		DeliveryType:  string(order.DeliveryType),
		DeliveryPrice: order.DeliveryPrice,
		ProductsTotal: order.ProductsTotal,
		DiscountTotal: order.DiscountTotal,
		TotalPrice:    order.TotalPrice,
		UsedPoints:    order.UsedPoints,
		CreatedAt:     order.CreatedAt,
	}
	for _, item := range items {
		itemView := types.OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		}
		if len(item.MetadataSnapshot) > 0 {
			var snapshot models.ItemSnapshot
			if json.Unmarshal(item.MetadataSnapshot, &snapshot) == nil && len(snapshot.Specifications) > 0 {
				itemView.Specs = make(map[string]string, len(snapshot.Specifications))
				for _, sp := range snapshot.Specifications {
					itemView.Specs[sp.Name] = sp.Value
				}
			}
		}
		view.Items = append(view.Items, itemView)
	}
	return view
}
