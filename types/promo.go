package types

type CheckPromoRequest struct {
	Code   string `json:"code" binding:"required,max=32"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type CheckPromoResponse struct {
	Discount       int64  `json:"discount"`
	IsFreeShipping bool   `json:"is_free_shipping"`
	Code           string `json:"code"`
}
