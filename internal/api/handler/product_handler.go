package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns products filtered by category, brand and free-text search,
// together with the facet lists the storefront renders.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category filter ('all' disables)"
// @Param        brand     query     string  false  "Brand filter ('all' disables)"
// @Param        search    query     string  false  "Case-insensitive substring search"
// @Success      200       {object}  listProductsResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	listing, err := h.service.ListProducts(c.Request().Context(), ports.ProductFilter{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Products:   listing.Products,
		Categories: listing.Categories,
		Brands:     listing.Brands,
	})
}

// Get returns a single product by id.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Images:        req.Images,
		Category:      req.Category,
		Brand:         req.Brand,
		StockQuantity: req.StockQuantity,
		Tags:          req.Tags,
		IsNew:         req.IsNew,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update applies a partial patch to a product.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Images:        req.Images,
		Category:      req.Category,
		Brand:         req.Brand,
		InStock:       req.InStock,
		StockQuantity: req.StockQuantity,
		Tags:          req.Tags,
		IsNew:         req.IsNew,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete removes a product from the catalog.
//
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Message: "Product deleted successfully"})
}
