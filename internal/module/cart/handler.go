package cart

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simp-lee/storefront/internal/pkg"
)

// sessionHeader carries the anonymous session identifier. Every cart route
// requires it.
const sessionHeader = "X-Session-Id"

// CartHandler handles REST API requests for session carts.
type CartHandler struct {
	svc Service
}

// NewHandler creates a new CartHandler with the given service.
func NewHandler(svc Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// sessionID extracts the session header, rejecting the request when it is
// missing or blank.
func (h *CartHandler) sessionID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		pkg.BadRequest(c, "missing "+sessionHeader+" header")
		return "", false
	}
	return id, true
}

// Get handles GET /api/v1/carts.
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, view)
}

// AddItem handles POST /api/v1/carts.
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, item)
}

// UpdateItem handles PATCH /api/v1/carts/:id.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		pkg.BadRequest(c, "invalid cart item id")
		return
	}

	var req UpdateCartItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.UpdateItemQuantity(c.Request.Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, ErrItemNotInCart) {
			pkg.BadRequest(c, err.Error())
			return
		}
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, item)
}

// DeleteItem handles DELETE /api/v1/carts/:id.
func (h *CartHandler) DeleteItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		pkg.BadRequest(c, "invalid cart item id")
		return
	}

	if err := h.svc.DeleteItem(c.Request.Context(), sessionID, itemID); err != nil {
		if errors.Is(err, ErrItemNotInCart) {
			pkg.BadRequest(c, err.Error())
			return
		}
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, gin.H{"deleted": itemID})
}
