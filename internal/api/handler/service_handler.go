package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// ServiceHandler handles HTTP requests for salon treatment listings.
type ServiceHandler struct {
	catalog ports.ServiceCatalog
}

func NewServiceHandler(catalog ports.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type createServiceRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Duration    int      `json:"duration"    validate:"required,gt=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category"    validate:"required"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"is_popular"`
}

type updateServiceRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Duration    *int     `json:"duration"    validate:"omitempty,gt=0"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Features    []string `json:"features"`
	IsPopular   *bool    `json:"is_popular"`
}

type listServicesResponse struct {
	Services   []domain.Service `json:"services"`
	Categories []string         `json:"categories"`
}

// List returns services filtered by category plus the facet categories.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Param        category  query     string  false  "Category filter ('all' disables)"
// @Success      200       {object}  listServicesResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	listing, err := h.catalog.ListServices(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listServicesResponse{
		Services:   listing.Services,
		Categories: listing.Categories,
	})
}

// Get returns a single service by id.
//
// @Summary      Get service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /api/services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	svc, err := h.catalog.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Create adds a service to the catalog.
//
// @Summary      Create service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.catalog.CreateService(c.Request().Context(), ports.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
		Category:    req.Category,
		Features:    req.Features,
		IsPopular:   req.IsPopular,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, svc)
}

// Update applies a partial patch to a service.
//
// @Summary      Update service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.catalog.UpdateService(c.Request().Context(), c.Param("id"), ports.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
		Category:    req.Category,
		Features:    req.Features,
		IsPopular:   req.IsPopular,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, svc)
}

// Delete removes a service.
//
// @Summary      Delete service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Message: "Service deleted successfully"})
}
