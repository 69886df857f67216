package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type createPostRequest struct {
	Title         string   `json:"title"          validate:"required"`
	Content       string   `json:"content"        validate:"required"`
	Excerpt       string   `json:"excerpt"        validate:"required"`
	FeaturedImage string   `json:"featured_image"`
	Author        string   `json:"author"         validate:"required"`
	Category      string   `json:"category"       validate:"required"`
	Tags          []string `json:"tags"`
	IsPublished   *bool    `json:"is_published"`
}

type updatePostRequest struct {
	Title         *string  `json:"title"          validate:"omitempty,min=1"`
	Content       *string  `json:"content"`
	Excerpt       *string  `json:"excerpt"`
	FeaturedImage *string  `json:"featured_image"`
	Author        *string  `json:"author"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	IsPublished   *bool    `json:"is_published"`
}

type listPostsResponse struct {
	Posts      []domain.BlogPost `json:"posts"`
	Categories []string          `json:"categories"`
	Featured   []domain.BlogPost `json:"featured"`
}

// List returns published posts filtered by category and search, the facet
// categories, and the derived featured list.
//
// @Summary      List blog posts
// @Tags         blog
// @Produce      json
// @Param        category  query     string  false  "Category filter ('all' disables)"
// @Param        search    query     string  false  "Case-insensitive substring search"
// @Param        limit     query     int     false  "Maximum number of posts"
// @Success      200       {object}  listPostsResponse
// @Router       /api/blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	listing, err := h.service.ListPosts(c.Request().Context(), ports.BlogFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Posts:      listing.Posts,
		Categories: listing.Categories,
		Featured:   listing.Featured,
	})
}

// Get returns a published post and counts the view.
//
// @Summary      Get blog post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /api/blog/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create adds a blog post. Posts default to draft unless is_published is set.
//
// @Summary      Create blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.BlogPost
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// Update applies a partial patch to a post.
//
// @Summary      Update blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  domain.BlogPost
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/blog/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.UpdatePost(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Delete removes a post.
//
// @Summary      Delete blog post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/blog/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Message: "Post deleted successfully"})
}
