package handlers

import (
	"errors"
	"net/http"

	"github.com/RithigaS/BACKEND/internal/dto"
	"github.com/RithigaS/BACKEND/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogHandler handles blog CRUD and comment routes.
type BlogHandler struct {
	svc *service.BlogService
}

// NewBlogHandler returns a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// Create godoc
// @Summary      Create a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBlogRequest  true  "Blog fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /blogs/create [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the required fields"})
		return
	}
	blog, err := h.svc.Create(c.Request.Context(), req.Title, req.Content, req.Author, req.Category, req.ExternalLink)
	if err != nil {
		if errors.Is(err, service.ErrMissingBlogFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the required fields"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("create blog failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating blog, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog created successfully", "blog": dto.BlogToResponse(blog)})
}

// List godoc
// @Summary      List all blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  dto.ListBlogsResponse
// @Failure      500  {object}  map[string]string
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.svc.List(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list blogs failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching blogs"})
		return
	}
	c.JSON(http.StatusOK, dto.ListBlogsResponse{Blogs: dto.BlogsToResponses(blogs)})
}

// Update godoc
// @Summary      Update a blog (legacy field set)
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Blog ID"
// @Param        body  body  dto.UpdateBlogRequest  true  "Fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /update-blog/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update blog"})
		return
	}
	blog, err := h.svc.Update(c.Request.Context(), id, req.BlogName, req.Theme, req.Information, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("update blog failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update blog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully", "blog": dto.BlogToResponse(blog)})
}

// Delete godoc
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Blog ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /delete-blog/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("delete blog failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete blog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

// AddComment godoc
// @Summary      Append a comment to a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Blog ID"
// @Param        body  body  dto.AddCommentRequest  true  "Comment"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /blogs/comment/{id} [post]
func (h *BlogHandler) AddComment(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required for the comment"})
		return
	}
	blog, err := h.svc.AddComment(c.Request.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required for the comment"})
		case errors.Is(err, service.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("add comment failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding comment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully", "blog": dto.BlogToResponse(blog)})
}

// parseObjectID reads the :id path param. An id that is not a valid hex
// ObjectID cannot resolve to any document, so it is reported as not found.
func parseObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		return primitive.NilObjectID, false
	}
	return id, true
}
