package repository

import (
	"context"
	"errors"

	"github.com/satriajanaka/go-auth-scaffold/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a Create.
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository defines the interface for account persistence.
// GetByCredential matches the given identifier against both the
// username and the email column with a single exact-match lookup.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByCredential(ctx context.Context, credential string) (*entity.User, error)
}
