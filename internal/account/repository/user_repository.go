package repository

import (
	"context"
	"errors"

	"github.com/qualifygym/commerce/internal/account/model"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// usernameは一意ではないので複数返りうる
	ListByUsername(ctx context.Context, username string) ([]model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Save(ctx context.Context, u model.User) error
	Delete(ctx context.Context, userID int64) error
}

type RoleRepository interface {
	FindByID(ctx context.Context, roleID int64) (model.Role, error)
	FindByName(ctx context.Context, name string) (model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Create(ctx context.Context, r model.Role) (model.Role, error)
	Delete(ctx context.Context, roleID int64) error
}
