package post

import "github.com/google/uuid"

// CreatePostRequest represents the input for publishing a post.
type CreatePostRequest struct {
	Name   string    `json:"name" binding:"required,min=1,max=50"`
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// ListPostsRequest represents the paging parameters for listing posts.
type ListPostsRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=100"`
}
