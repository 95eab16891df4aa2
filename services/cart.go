package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/services/repositories"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CartService manages the per-user cart and turns checkouts into purchase
// history. Cart mutations feed the challenge tracker and stats so the
// gamification layer sees every shopping action.
type CartService struct {
	context.DefaultService

	sqlSvc       *SqliteService
	challengeSvc *ChallengeService
	statsSvc     *StatsService

	orderRepo *repositories.OrderRepository
	toyRepo   *repositories.ToyRepository
}

const CART_SVC = "cart_svc"

func (svc CartService) Id() string {
	return CART_SVC
}

func (svc *CartService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *CartService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.challengeSvc = svc.Service(CHALLENGE_SVC).(*ChallengeService)
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	svc.orderRepo = repositories.NewOrderRepository(svc.sqlSvc.Db())
	svc.toyRepo = repositories.NewToyRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *CartService) GetCart(userID string) (*dto.CartResponse, error) {
	items, err := svc.orderRepo.GetCartItems(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		toy, err := svc.toyRepo.GetToy(item.ToyID)
		if err != nil {
			log.WithError(err).WithField("toy_id", item.ToyID).Warn("Cart references unknown toy")
			continue
		}

		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:      item.ID,
			Toy:     dto.NewToyResponse(toy),
			AddedAt: item.AddedAt,
		})
		resp.Total += toy.Price
	}
	resp.ItemCount = len(resp.Items)

	return resp, nil
}

// AddItem puts a toy in the cart, tracks the addToCart (+implied like)
// challenge events and pays the stats point bonus.
func (svc *CartService) AddItem(userID string, req dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed")
	}

	if _, err := svc.toyRepo.GetToy(req.ToyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "Toy not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if _, err := svc.orderRepo.AddCartItem(&model.CartItem{UserID: userID, ToyID: req.ToyID}); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if _, err := svc.challengeSvc.TrackAddToCart(userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Failed to track add-to-cart challenge event")
	}
	if err := svc.statsSvc.RecordAddToCart(userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Failed to record add-to-cart stats")
	}

	return svc.GetCart(userID)
}

func (svc *CartService) RemoveItem(userID string, toyID uint) (*dto.CartResponse, error) {
	if err := svc.orderRepo.RemoveCartItem(userID, toyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "Toy not in cart")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}
	return svc.GetCart(userID)
}

// Checkout snapshots the cart into an order, clears the cart and records
// the purchase in stats.
func (svc *CartService) Checkout(userID string) (*dto.OrderResponse, error) {
	items, err := svc.orderRepo.GetCartItems(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if len(items) == 0 {
		return nil, shared.NewBadRequestError(nil, "Cart is empty")
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	total := 0.0
	for _, item := range items {
		toy, err := svc.toyRepo.GetToy(item.ToyID)
		if err != nil {
			log.WithError(err).WithField("toy_id", item.ToyID).Warn("Skipping unknown toy at checkout")
			continue
		}
		orderItems = append(orderItems, model.OrderItem{
			ToyID: toy.ID,
			Name:  toy.Name,
			Price: toy.Price,
		})
		total += toy.Price
	}

	order := &model.Order{UserID: userID, Total: total}
	if err := order.SetItemList(orderItems); err != nil {
		return nil, err
	}

	order, err = svc.orderRepo.CreateOrder(order)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := svc.orderRepo.ClearCart(userID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if _, err := svc.statsSvc.RecordPurchase(userID, total); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Failed to record purchase stats")
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"order":   order.ID,
		"total":   total,
	}).Info("Checkout completed")

	return &dto.OrderResponse{
		ID:          order.ID,
		Items:       orderItems,
		Total:       order.Total,
		PurchasedAt: order.PurchasedAt,
	}, nil
}

func (svc *CartService) GetOrders(userID string) (*dto.OrderListResponse, error) {
	orders, err := svc.orderRepo.GetOrders(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.OrderResponse{
			ID:          orders[i].ID,
			Items:       orders[i].ItemList(),
			Total:       orders[i].Total,
			PurchasedAt: orders[i].PurchasedAt,
		})
	}

	return &dto.OrderListResponse{Orders: responses, Total: len(responses)}, nil
}
