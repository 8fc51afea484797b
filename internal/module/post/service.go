package post

import (
	"context"
	"strings"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
	"github.com/simp-lee/storefront/internal/repository"
	"github.com/simp-lee/storefront/internal/service"
)

// Service defines the post operations.
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*domain.Post, error)
	GetPost(ctx context.Context, id int) (*domain.Post, error)
	ListPosts(ctx context.Context, page, pageSize int) (*pkg.Page[domain.Post], error)
	DeletePost(ctx context.Context, id int) error
}

// postService implements Service.
type postService struct {
	service.Base[domain.Post]
}

// NewService creates a post Service over the given repository.
func NewService(repo *repository.Repository[domain.Post]) Service {
	return &postService{Base: service.NewBase(repo)}
}

// CreatePost persists a post. The author reference is checked by the
// database; a dangling user id surfaces as a foreign-key error.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*domain.Post, error) {
	p := &domain.Post{
		Name:   strings.TrimSpace(req.Name),
		UserID: req.UserID,
	}
	if err := s.Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPost retrieves a post by id.
func (s *postService) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	return s.Repo.GetOne(ctx, repository.FilterBy("id", id))
}

// ListPosts returns one page of posts.
func (s *postService) ListPosts(ctx context.Context, page, pageSize int) (*pkg.Page[domain.Post], error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.List(ctx,
		repository.Limit(pageSize),
		repository.Offset(pkg.PageOffset(page, pageSize)),
	)
	if err != nil {
		return nil, err
	}

	return pkg.NewPage(posts, total, page, pageSize), nil
}

// DeletePost removes a post by id.
func (s *postService) DeletePost(ctx context.Context, id int) error {
	p, err := s.Repo.GetOne(ctx, repository.FilterBy("id", id))
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, p)
}
