package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

type stubCartService struct {
	addFn    func(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	listFn   func(ctx context.Context, userID string) ([]ports.CartEntry, error)
	removeFn func(ctx context.Context, userID, productID string) error
}

func (s *stubCartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	return s.addFn(ctx, userID, productID, quantity)
}

func (s *stubCartService) ListItems(ctx context.Context, userID string) ([]ports.CartEntry, error) {
	return s.listFn(ctx, userID)
}

func (s *stubCartService) RemoveItem(ctx context.Context, userID, productID string) error {
	return s.removeFn(ctx, userID, productID)
}

func TestCartHandler_Add_Success(t *testing.T) {
	stub := &stubCartService{
		addFn: func(_ context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
			if userID != "u1" || productID != "p1" || quantity != 2 {
				t.Fatalf("unexpected args: %s %s %d", userID, productID, quantity)
			}
			return &domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/products/cart", `{"product_id":"p1","quantity":2}`)
	c.Set("user_id", "u1")

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCartHandler_Add_RequiresAuth(t *testing.T) {
	stub := &stubCartService{
		addFn: func(context.Context, string, string, int) (*domain.CartItem, error) {
			t.Fatalf("service must not be called without auth claims")
			return nil, nil
		},
	}
	h := NewCartHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/products/cart", `{"product_id":"p1"}`)

	err := h.Add(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCartHandler_Add_UnknownProduct(t *testing.T) {
	stub := &stubCartService{
		addFn: func(context.Context, string, string, int) (*domain.CartItem, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewCartHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/products/cart", `{"product_id":"missing"}`)
	c.Set("user_id", "u1")

	if err := h.Add(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestCartHandler_List_WrapsEntriesInCartKey(t *testing.T) {
	stub := &stubCartService{
		listFn: func(_ context.Context, userID string) ([]ports.CartEntry, error) {
			return []ports.CartEntry{
				{Product: domain.Product{ID: "p1", Name: "Top Coat"}, Quantity: 3},
			}, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/products/cart", "")
	c.Set("user_id", "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	cart, ok := resp["cart"]
	if !ok || len(cart) != 1 {
		t.Fatalf("expected cart with one entry, got %v", resp)
	}
	if cart[0]["quantity"] != float64(3) {
		t.Fatalf("unexpected quantity: %v", cart[0]["quantity"])
	}
}

func TestCartHandler_List_EmptyCartIsArray(t *testing.T) {
	stub := &stubCartService{
		listFn: func(context.Context, string) ([]ports.CartEntry, error) {
			return nil, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/products/cart", "")
	c.Set("user_id", "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(resp["cart"]) != "[]" {
		t.Fatalf("expected empty array, got %s", resp["cart"])
	}
}

func TestCartHandler_Remove_PassesPathParam(t *testing.T) {
	removed := ""
	stub := &stubCartService{
		removeFn: func(_ context.Context, userID, productID string) error {
			removed = userID + "/" + productID
			return nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/products/cart/p1", "")
	c.Set("user_id", "u1")
	c.SetParamNames("productId")
	c.SetParamValues("p1")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if removed != "u1/p1" {
		t.Fatalf("unexpected removal target: %s", removed)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_Remove_NotFound(t *testing.T) {
	stub := &stubCartService{
		removeFn: func(context.Context, string, string) error {
			return domain.ErrCartItemNotFound
		},
	}
	h := NewCartHandler(stub)

	c, _ := newTestContext(http.MethodDelete, "/api/products/cart/p1", "")
	c.Set("user_id", "u1")
	c.SetParamNames("productId")
	c.SetParamValues("p1")

	if err := h.Remove(c); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound to propagate, got %v", err)
	}
}
