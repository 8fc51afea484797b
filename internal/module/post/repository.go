package post

import (
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/repository"
)

// errorMessages are the post repository's default templates.
var errorMessages = repository.Messages{
	repository.MsgNotFound:     repository.Text("Post not found"),
	repository.MsgForeignKey:   repository.Text("Post references a user that does not exist"),
	repository.MsgIntegrity:    repository.Text("Post data is invalid"),
	repository.MsgMultipleRows: repository.Text("Multiple posts were found when only one was expected"),
	repository.MsgOther:        repository.Text("An unexpected error occurred while processing the post"),
}

// NewRepository creates the post repository. Posts are integer-keyed, so
// listing falls back to insertion order by id.
func NewRepository(db *gorm.DB) *repository.Repository[domain.Post] {
	return repository.New[domain.Post](db, repository.Config{
		OrderBy:  []repository.OrderBy{repository.Asc("id")},
		Messages: errorMessages,
	})
}
