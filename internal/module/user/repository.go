package user

import (
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/repository"
)

// errorMessages are the user repository's default templates.
var errorMessages = repository.Messages{
	repository.MsgNotFound:     repository.Text("User not found"),
	repository.MsgDuplicateKey: repository.Text("A user with this email already exists"),
	repository.MsgIntegrity:    repository.Text("User data is invalid"),
	repository.MsgMultipleRows: repository.Text("Multiple users were found when only one was expected"),
	repository.MsgOther:        repository.Text("An unexpected error occurred while processing the user"),
}

// NewRepository creates the user repository.
func NewRepository(db *gorm.DB) *repository.Repository[domain.User] {
	return repository.New[domain.User](db, repository.Config{
		OrderBy:  []repository.OrderBy{repository.Asc("created_at")},
		Messages: errorMessages,
	})
}
