package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns every user without password hashes, newest first.
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
}
