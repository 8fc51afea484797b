package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
	"github.com/simp-lee/storefront/internal/repository"
	"github.com/simp-lee/storefront/internal/service"
)

// Service defines the user account operations.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int) (*pkg.Page[domain.User], error)
}

// userService implements Service.
type userService struct {
	service.Base[domain.User]
}

// NewService creates a user Service over the given repository.
func NewService(repo *repository.Repository[domain.User]) Service {
	return &userService{Base: service.NewBase(repo)}
}

// CreateUser hashes the password and persists the user. Email uniqueness is
// enforced by the database; a collision surfaces as a duplicate-key error.
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser retrieves a user by id with their posts loaded.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.Repo.GetOne(ctx,
		repository.FilterBy("id", id),
		repository.Preload("Posts"),
	)
}

// ListUsers returns one page of users.
func (s *userService) ListUsers(ctx context.Context, page, pageSize int) (*pkg.Page[domain.User], error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.List(ctx,
		repository.Limit(pageSize),
		repository.Offset(pkg.PageOffset(page, pageSize)),
	)
	if err != nil {
		return nil, err
	}

	return pkg.NewPage(users, total, page, pageSize), nil
}
