package types

type PointRecord struct {
	ID          int64  `json:"id"`
	Points      int64  `json:"points"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type LoyaltyBalance struct {
	Balance int64         `json:"balance"`
	Records []PointRecord `json:"records"`
}
