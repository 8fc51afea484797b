package user

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simp-lee/storefront/internal/pkg"
)

// UserHandler handles REST API requests for user accounts.
type UserHandler struct {
	svc Service
}

// NewHandler creates a new UserHandler with the given service.
func NewHandler(svc Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	u, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, u)
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	var req ListUsersRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	page, err := h.svc.ListUsers(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		pkg.BadRequest(c, "invalid user id")
		return
	}

	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, u)
}
