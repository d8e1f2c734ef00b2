package usecase

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/qualifygym/commerce/internal/account/model"
	repo "github.com/qualifygym/commerce/internal/account/repository"
	"github.com/qualifygym/commerce/internal/apperr"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "usuarios").Logger()

// UserUsecase は /usuarios の業務ロジック。
type UserUsecase struct {
	userRepo repo.UserRepository
	roleRepo repo.RoleRepository
	hasher   PasswordHasher
}

// DI
func NewUserUsecase(userRepo repo.UserRepository, roleRepo repo.RoleRepository, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
	}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	Address  string
}

// 管理用の作成。ロールIDを明示する。
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	RoleID   int64
	Address  string
}

// 部分更新。空文字のフィールドは触らない。
// addressとroleIDはポインタで「指定なし」を区別する。
type UpdateUserInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	RoleID   *int64
	Address  *string
}

// RegisterPublic は公開登録。ロールは必ず "Usuario"。
// emailとphoneだけを一意キーとして検査し、usernameの重複は許す。
func (u *UserUsecase) RegisterPublic(ctx context.Context, in RegisterInput) (model.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return model.User{}, apperr.Validation("username es obligatorio")
	}
	if in.Password == "" {
		return model.User{}, apperr.Validation("password es obligatorio")
	}
	if strings.TrimSpace(in.Email) == "" {
		return model.User{}, apperr.Validation("email es obligatorio")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return model.User{}, apperr.Validation("phone es obligatorio")
	}

	exists, err := u.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}
	if exists {
		return model.User{}, apperr.Duplicate("email", "El email ya está registrado: %s", in.Email)
	}

	exists, err = u.userRepo.ExistsByPhone(ctx, in.Phone)
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}
	if exists {
		return model.User{}, apperr.Duplicate("telefono", "El teléfono ya está registrado: %s", in.Phone)
	}

	//"Usuario" が無いのは運用データの欠落で、リトライでは直らない
	role, err := u.roleRepo.FindByName(ctx, model.RoleUserName)
	if err == repo.ErrNotFound {
		return model.User{}, apperr.Config("Rol 'Usuario' no encontrado en el sistema")
	}
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, apperr.Internal("hash error")
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role,
		Address:      in.Address,
	})
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}

	logger.Info().Int64("usuario_id", created.ID).Str("email", created.Email).Msg("usuario registrado")
	return created, nil
}

// VerifyCredentials は合致したときだけtrue。
// ユーザー不在もパスワード不一致も同じfalseで、エラーにはしない。
func (u *UserUsecase) VerifyCredentials(ctx context.Context, email string, rawPassword string) (bool, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, apperr.Internal("db error")
	}

	return u.hasher.Verify(user.PasswordHash, rawPassword), nil
}

func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return model.User{}, apperr.NotFound("Usuario no encontrado con email: %s", email)
	}
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}
	return user, nil
}

func (u *UserUsecase) GetByID(ctx context.Context, userID int64) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.User{}, apperr.NotFound("Usuario no encontrado ID: %d", userID)
	}
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}
	return user, nil
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return users, nil
}

func (u *UserUsecase) ListByUsername(ctx context.Context, username string) ([]model.User, error) {
	users, err := u.userRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return users, nil
}

// CreateUser は管理用。指定されたロールIDが解決できなければNotFound。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return model.User{}, apperr.Validation("username es obligatorio")
	}
	if in.Password == "" {
		return model.User{}, apperr.Validation("password es obligatorio")
	}

	role, err := u.roleRepo.FindByID(ctx, in.RoleID)
	if err == repo.ErrNotFound {
		return model.User{}, apperr.NotFound("Rol no encontrado ID: %d", in.RoleID)
	}
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, apperr.Internal("hash error")
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role,
		Address:      in.Address,
	})
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}
	return created, nil
}

// UpdateUser は部分更新。渡されたフィールドだけを反映する。
func (u *UserUsecase) UpdateUser(ctx context.Context, userID int64, in UpdateUserInput) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.User{}, apperr.NotFound("Usuario no encontrado ID: %d", userID)
	}
	if err != nil {
		return model.User{}, apperr.Internal("db error")
	}

	if strings.TrimSpace(in.Username) != "" {
		user.Username = strings.TrimSpace(in.Username)
	}
	if in.Password != "" {
		hash, err := u.hasher.Hash(in.Password)
		if err != nil {
			return model.User{}, apperr.Internal("hash error")
		}
		user.PasswordHash = hash
	}
	if in.Email != "" && in.Email != user.Email {
		user.Email = in.Email
	}
	if strings.TrimSpace(in.Phone) != "" {
		user.Phone = strings.TrimSpace(in.Phone)
	}
	if in.RoleID != nil {
		role, err := u.roleRepo.FindByID(ctx, *in.RoleID)
		if err == repo.ErrNotFound {
			return model.User{}, apperr.NotFound("Rol no encontrado ID: %d", *in.RoleID)
		}
		if err != nil {
			return model.User{}, apperr.Internal("db error")
		}
		user.RoleID = role.ID
		user.Role = role
	}
	if in.Address != nil {
		user.Address = *in.Address
	}

	if err := u.userRepo.Save(ctx, user); err != nil {
		if err == repo.ErrNotFound {
			return model.User{}, apperr.NotFound("Usuario no encontrado ID: %d", userID)
		}
		return model.User{}, apperr.Internal("db error")
	}
	return user, nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return apperr.Internal("db error")
	}
	return nil
}

func (u *UserUsecase) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles, err := u.roleRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return roles, nil
}
