package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// CartHandler handles the authenticated user's shopping cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"omitempty,gte=1"`
}

type cartEntryResponse struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type cartResponse struct {
	Cart []cartEntryResponse `json:"cart"`
}

// Add puts a product in the caller's cart. Adding a product that is already
// in the cart accumulates quantity rather than creating a second line.
//
// @Summary      Add item to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      201   {object}  domain.CartItem
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/products/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

// List returns the caller's cart with each item joined to its current
// product snapshot.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Security     BearerAuth
// @Router       /api/products/cart [get]
func (h *CartHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListItems(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := cartResponse{Cart: make([]cartEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Cart = append(resp.Cart, cartEntryResponse{Product: e.Product, Quantity: e.Quantity})
	}

	return c.JSON(http.StatusOK, resp)
}

// Remove deletes exactly one (user, product) pair from the cart; other
// items in the same cart are untouched.
//
// @Summary      Remove item from cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  ackResponse
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/products/cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ackResponse{Message: "Item removed from cart"})
}
