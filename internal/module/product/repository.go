package product

import (
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/repository"
)

// errorMessages are the product repository's default templates, layered over
// the global defaults.
var errorMessages = repository.Messages{
	repository.MsgNotFound:        repository.Text("Product not found"),
	repository.MsgDuplicateKey:    repository.Text("A product with this name already exists"),
	repository.MsgIntegrity:       repository.Text("Product data is invalid"),
	repository.MsgForeignKey:      repository.Text("Product references an invalid related resource"),
	repository.MsgCheckConstraint: repository.Text("Product data violates business rules"),
	repository.MsgMultipleRows:    repository.Text("Multiple products were found when only one was expected"),
	repository.MsgOther:           repository.Text("An unexpected error occurred while processing the product"),
}

// NewRepository creates the product repository: ordered by creation time by
// default, with product-specific error messages.
func NewRepository(db *gorm.DB) *repository.Repository[domain.Product] {
	return repository.New[domain.Product](db, repository.Config{
		OrderBy:  []repository.OrderBy{repository.Asc("created_at")},
		Messages: errorMessages,
	})
}
