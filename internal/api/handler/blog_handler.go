package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/api/dto"
	"github.com/martijn/inkwell/internal/api/middleware"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/service"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListBlogs handles GET /api/blogs
//
//	@Summary	List the current user's blogs, newest first
//	@Tags		blogs
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.BlogResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/api/blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	blogs, err := h.blogService.List(c.Request.Context(), user)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponses(blogs, user))
}

// ListRecentBlogs handles GET /api/blogs/recent
//
//	@Summary	List the current user's five newest blogs
//	@Tags		blogs
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.BlogResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/api/blogs/recent [get]
func (h *BlogHandler) ListRecentBlogs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	blogs, err := h.blogService.ListRecent(c.Request.Context(), user)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponses(blogs, user))
}

// GetBlogStats handles GET /api/blogs/stats
//
//	@Summary	Post counts for the current user
//	@Tags		blogs
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BlogStatsResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/api/blogs/stats [get]
func (h *BlogHandler) GetBlogStats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	stats, err := h.blogService.Stats(c.Request.Context(), user)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogStatsResponse{
		Total:     stats.Total,
		Published: stats.Published,
		Draft:     stats.Drafts,
	})
}

// GetBlog handles GET /api/blogs/:id
//
//	@Summary	Fetch one of the current user's blogs
//	@Tags		blogs
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"blog id"
//	@Success	200	{object}	dto.BlogResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	id, err := parseBlogID(c)
	if err != nil {
		return
	}

	blog, err := h.blogService.GetByID(c.Request.Context(), user, id)
	if err != nil {
		respondBlogError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog, user))
}

// CreateBlog handles POST /api/blogs
//
//	@Summary	Create a blog owned by the current user
//	@Tags		blogs
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.BlogRequest	true	"blog fields"
//	@Success	201		{object}	dto.BlogResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/api/blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	var req dto.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), user, req.Title, req.Content, req.Published)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBlogResponse(blog, user))
}

// UpdateBlog handles PUT /api/blogs/:id
//
//	@Summary	Overwrite one of the current user's blogs
//	@Tags		blogs
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int				true	"blog id"
//	@Param		request	body		dto.BlogRequest	true	"blog fields"
//	@Success	200		{object}	dto.BlogResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/api/blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	id, err := parseBlogID(c)
	if err != nil {
		return
	}

	var req dto.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), user, id, req.Title, req.Content, req.Published)
	if err != nil {
		respondBlogError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog, user))
}

// DeleteBlog handles DELETE /api/blogs/:id
//
//	@Summary	Delete one of the current user's blogs
//	@Tags		blogs
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"blog id"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondNoUser(c)
		return
	}

	id, err := parseBlogID(c)
	if err != nil {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), user, id); err != nil {
		respondBlogError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Blog deleted successfully",
	})
}

// parseBlogID parses the :id param and writes the 400 itself, so
// callers only need to bail out.
func parseBlogID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid blog ID",
			Code:    http.StatusBadRequest,
		})
		return 0, err
	}
	return id, nil
}

// respondBlogError maps the blog service's typed errors onto status
// codes. NotFound and Forbidden stay distinct.
func respondBlogError(c *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Blog not found: %d", id),
			Code:    http.StatusNotFound,
		})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   "Forbidden",
			Message: "You don't have permission to access this blog",
			Code:    http.StatusForbidden,
		})
	default:
		respondInternal(c, err)
	}
}

func respondNoUser(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   "Unauthorized",
		Message: "No authenticated user",
		Code:    http.StatusUnauthorized,
	})
}

func respondInternal(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

// toBlogResponse nests the owner projection. Every success path has
// already established owner == requester, so the current user is the
// owner here.
func toBlogResponse(blog *domain.Blog, owner *domain.User) dto.BlogResponse {
	return dto.BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Published: blog.Published,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
		User:      toUserResponse(owner),
	}
}

func toBlogResponses(blogs []*domain.Blog, owner *domain.User) []dto.BlogResponse {
	responses := make([]dto.BlogResponse, len(blogs))
	for i, blog := range blogs {
		responses[i] = toBlogResponse(blog, owner)
	}
	return responses
}
