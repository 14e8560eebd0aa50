package types

type DeliveryQuote struct {
	WilayaID     int64  `json:"wilaya_id"`
	DeliveryType string `json:"delivery_type"`
	Price        int64  `json:"price"`
}
