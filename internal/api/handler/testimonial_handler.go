package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// TestimonialHandler handles HTTP requests for customer testimonials.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

type createTestimonialRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required"`
	CustomerImage string `json:"customer_image"`
	Rating        int    `json:"rating"         validate:"required,gte=1,lte=5"`
	Review        string `json:"review"         validate:"required"`
	ServiceUsed   string `json:"service_used"   validate:"required"`
	BeforeImage   string `json:"before_image"`
	AfterImage    string `json:"after_image"`
}

type updateTestimonialRequest struct {
	CustomerName  *string `json:"customer_name"  validate:"omitempty,min=1"`
	CustomerImage *string `json:"customer_image"`
	Rating        *int    `json:"rating"         validate:"omitempty,gte=1,lte=5"`
	Review        *string `json:"review"`
	ServiceUsed   *string `json:"service_used"`
	BeforeImage   *string `json:"before_image"`
	AfterImage    *string `json:"after_image"`
	IsFeatured    *bool   `json:"is_featured"`
}

type listTestimonialsResponse struct {
	Testimonials []domain.Testimonial `json:"testimonials"`
	Featured     []domain.Testimonial `json:"featured"`
}

// boolFilter parses an optional true/false query parameter; absent or
// malformed values mean "no filter".
func boolFilter(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// List returns testimonials filtered by approval and featured flags, plus
// the derived featured set.
//
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Param        approved  query     bool  false  "Filter on approval flag"
// @Param        featured  query     bool  false  "Filter on featured flag"
// @Success      200       {object}  listTestimonialsResponse
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	listing, err := h.service.ListTestimonials(c.Request().Context(), ports.TestimonialFilter{
		Approved: boolFilter(c.QueryParam("approved")),
		Featured: boolFilter(c.QueryParam("featured")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listTestimonialsResponse{
		Testimonials: listing.Testimonials,
		Featured:     listing.Featured,
	})
}

// Get returns a single testimonial by id.
//
// @Summary      Get testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial id"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  map[string]string
// @Router       /api/testimonials/{id} [get]
func (h *TestimonialHandler) Get(c echo.Context) error {
	t, err := h.service.GetTestimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Create submits a testimonial. New testimonials always start unapproved
// and unfeatured regardless of payload.
//
// @Summary      Create testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        body  body      createTestimonialRequest  true  "Testimonial details"
// @Success      201   {object}  domain.Testimonial
// @Failure      400   {object}  map[string]string
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req createTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	t, err := h.service.CreateTestimonial(c.Request().Context(), ports.CreateTestimonialInput{
		CustomerName:  req.CustomerName,
		CustomerImage: req.CustomerImage,
		Rating:        req.Rating,
		Review:        req.Review,
		ServiceUsed:   req.ServiceUsed,
		BeforeImage:   req.BeforeImage,
		AfterImage:    req.AfterImage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, t)
}

// Update applies a partial patch to a testimonial.
//
// @Summary      Update testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Testimonial id"
// @Param        body  body      updateTestimonialRequest  true  "Fields to change"
// @Success      200   {object}  domain.Testimonial
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	var req updateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	t, err := h.service.UpdateTestimonial(c.Request().Context(), c.Param("id"), ports.UpdateTestimonialInput{
		CustomerName:  req.CustomerName,
		CustomerImage: req.CustomerImage,
		Rating:        req.Rating,
		Review:        req.Review,
		ServiceUsed:   req.ServiceUsed,
		BeforeImage:   req.BeforeImage,
		AfterImage:    req.AfterImage,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, t)
}

// Delete removes a testimonial.
//
// @Summary      Delete testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial id"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Message: "Testimonial deleted successfully"})
}

// Approve marks a testimonial as approved so it becomes publicly visible.
//
// @Summary      Approve testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial id"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/testimonials/{id}/approve [put]
func (h *TestimonialHandler) Approve(c echo.Context) error {
	t, err := h.service.ApproveTestimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}
