package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/shared"
)

type CartHandler struct {
	cartSvc CartServiceInterface
}

func NewCartHandler(cartSvc CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartSvc: cartSvc,
	}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.CartResponse}
// @Router /api/v1/cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.cartSvc.GetCart(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Add toy to cart
// @Tags cart
// @Accept json
// @Produce json
// @Security Bearer
// @Param addCartItem body dto.AddCartItemRequest true "Toy to add"
// @Success 200 {object} shared.Response{data=dto.CartResponse}
// @Router /api/v1/cart [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.cartSvc.AddItem(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Toy added to cart", resp)
}

// @Summary Remove toy from cart
// @Tags cart
// @Produce json
// @Security Bearer
// @Param toyId path int true "Toy ID"
// @Success 200 {object} shared.Response{data=dto.CartResponse}
// @Router /api/v1/cart/{toyId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	toyID, err := parseToyID(c)
	if err != nil {
		return err
	}

	resp, err := h.cartSvc.RemoveItem(userID, toyID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Toy removed from cart", resp)
}

// @Summary Checkout
// @Description Turn the cart into an order
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 201 {object} shared.Response{data=dto.OrderResponse}
// @Router /api/v1/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.cartSvc.Checkout(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Order placed", resp)
}

// @Summary List orders
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.OrderListResponse}
// @Router /api/v1/orders [get]
func (h *CartHandler) GetOrders(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.cartSvc.GetOrders(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
