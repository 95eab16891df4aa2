package model

import (
	"encoding/json"
	"time"
)

// CartItem is one toy in a user's cart. Duplicates are allowed; removing a
// toy removes a single row.
type CartItem struct {
	ID      string    `json:"id" gorm:"primaryKey"`
	UserID  string    `json:"user_id" gorm:"index;not null"`
	ToyID   uint      `json:"toy_id" gorm:"not null"`
	AddedAt time.Time `json:"added_at" gorm:"not null"`
}

// OrderItem is a price snapshot taken at checkout time.
type OrderItem struct {
	ToyID uint    `json:"toy_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order is one entry in the purchase history.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	UserID      string          `json:"user_id" gorm:"index;not null"`
	Items       json.RawMessage `json:"items" gorm:"not null"`
	Total       float64         `json:"total" gorm:"not null"`
	PurchasedAt time.Time       `json:"purchased_at" gorm:"not null"`
}

func (o *Order) ItemList() []OrderItem {
	var items []OrderItem
	if len(o.Items) == 0 {
		return items
	}
	_ = json.Unmarshal(o.Items, &items)
	return items
}

func (o *Order) SetItemList(items []OrderItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = data
	return nil
}
