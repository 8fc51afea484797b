package cart

import "github.com/gin-gonic/gin"

// CartModule implements the app.Module interface for session carts.
type CartModule struct {
	handler *CartHandler
}

// NewModule creates a new CartModule with the given handler.
// Panics if h is nil.
func NewModule(h *CartHandler) *CartModule {
	if h == nil {
		panic("cart.NewModule: handler must not be nil")
	}
	return &CartModule{handler: h}
}

// RegisterRoutes registers cart API routes.
func (m *CartModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/carts", m.handler.Get)
	api.POST("/carts", m.handler.AddItem)
	api.PATCH("/carts/:id", m.handler.UpdateItem)
	api.DELETE("/carts/:id", m.handler.DeleteItem)
}
