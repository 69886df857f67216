package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context, filter ports.ProductFilter) (*ports.ProductListing, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) ListProducts(ctx context.Context, filter ports.ProductFilter) (*ports.ProductListing, error) {
	return s.listFn(ctx, filter)
}

func (s *stubProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_List_PassesQueryFilters(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, filter ports.ProductFilter) (*ports.ProductListing, error) {
			if filter.Category != "polish" || filter.Brand != "Selva" || filter.Search != "gel" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return &ports.ProductListing{
				Products:   []domain.Product{{ID: "p1", Name: "Gel Polish"}},
				Categories: domain.ProductCategories,
				Brands:     domain.ProductBrands,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/products?category=polish&brand=Selva&search=gel", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"products", "categories", "brands"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("expected %q in listing response", key)
		}
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Name != "Top Coat" || in.Price != 11.5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Product{ID: "p1", Name: in.Name, Price: in.Price}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/products",
		`{"name":"Top Coat","description":"Glossy finish","price":11.5,"category":"polish","brand":"Selva"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	stub := &stubProductService{
		createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/products", `{"name":"Top Coat"}`)

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProductHandler_Update_OmittedFieldsStayNil(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.Price == nil || *in.Price != 9.99 {
				t.Fatalf("expected price patch, got %+v", in.Price)
			}
			if in.Name != nil || in.Brand != nil || in.Tags != nil {
				t.Fatalf("omitted fields must stay nil: %+v", in)
			}
			return &domain.Product{ID: id, Price: *in.Price}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/api/products/p1", `{"price":9.99}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_Acknowledges(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
