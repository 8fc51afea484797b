package post

import "github.com/gin-gonic/gin"

// PostModule implements the app.Module interface for posts.
type PostModule struct {
	handler *PostHandler
}

// NewModule creates a new PostModule with the given handler.
// Panics if h is nil.
func NewModule(h *PostHandler) *PostModule {
	if h == nil {
		panic("post.NewModule: handler must not be nil")
	}
	return &PostModule{handler: h}
}

// RegisterRoutes registers post API routes.
func (m *PostModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/posts", m.handler.Create)
	api.GET("/posts", m.handler.List)
	api.GET("/posts/:id", m.handler.Get)
	api.DELETE("/posts/:id", m.handler.Delete)
}
