package post

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/pkg"
)

// PostHandler handles REST API requests for posts.
type PostHandler struct {
	svc Service
}

// NewHandler creates a new PostHandler with the given service.
func NewHandler(svc Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create handles POST /api/v1/posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreatePost(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, p)
}

// List handles GET /api/v1/posts.
func (h *PostHandler) List(c *gin.Context) {
	var req ListPostsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	page, err := h.svc.ListPosts(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}

// Get handles GET /api/v1/posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		pkg.BadRequest(c, "invalid post id")
		return
	}

	p, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// Delete handles DELETE /api/v1/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		pkg.BadRequest(c, "invalid post id")
		return
	}

	if err := h.svc.DeletePost(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, gin.H{"deleted": id})
}
