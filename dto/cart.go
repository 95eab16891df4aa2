package dto

import (
	"time"

	"github.com/pup-picks/pawmatch_api/model"
)

type AddCartItemRequest struct {
	ToyID uint `json:"toy_id" validate:"required"`
}

func (r AddCartItemRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CartItemResponse struct {
	ID      string      `json:"id"`
	Toy     ToyResponse `json:"toy"`
	AddedAt time.Time   `json:"added_at"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
}

type OrderResponse struct {
	ID          string            `json:"id"`
	Items       []model.OrderItem `json:"items"`
	Total       float64           `json:"total"`
	PurchasedAt time.Time         `json:"purchased_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
