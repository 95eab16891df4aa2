package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/model"
	"gorm.io/gorm"
)

// OrderRepository handles cart rows and the purchase history.
type OrderRepository struct {
	BaseRepository
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *OrderRepository) GetCartItems(userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := ds.db.Where("user_id = ?", userID).Order("added_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ds *OrderRepository) AddCartItem(item *model.CartItem) (*model.CartItem, error) {
	if item.ID == "" {
		id, _ := uuid.NewV7()
		item.ID = id.String()
	}
	item.AddedAt = time.Now()
	if err := ds.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveCartItem deletes a single row for the toy, oldest first.
func (ds *OrderRepository) RemoveCartItem(userID string, toyID uint) error {
	var item model.CartItem
	err := ds.db.Where("user_id = ? AND toy_id = ?", userID, toyID).Order("added_at").First(&item).Error
	if err != nil {
		return err
	}
	return ds.db.Delete(&item).Error
}

func (ds *OrderRepository) ClearCart(userID string) error {
	return ds.db.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

func (ds *OrderRepository) CreateOrder(order *model.Order) (*model.Order, error) {
	if order.ID == "" {
		id, _ := uuid.NewV7()
		order.ID = id.String()
	}
	order.PurchasedAt = time.Now()
	if err := ds.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (ds *OrderRepository) GetOrders(userID string) ([]model.Order, error) {
	var orders []model.Order
	if err := ds.db.Where("user_id = ?", userID).Order("purchased_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
