package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qualifygym/commerce/internal/account/model"
	repo "github.com/qualifygym/commerce/internal/account/repository"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").Where("id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) ListByUsername(ctx context.Context, username string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("username = ?", username).
		Order("id asc").
		Find(&users).Error
	if err != nil {
		return []model.User{}, err
	}
	return users, nil
}

func (r *UserGormRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Role").Order("id asc").Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	return users, nil
}

func (r *UserGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("phone = ?", phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) Save(ctx context.Context, u model.User) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"username": u.Username,
			"email":    u.Email,
			"phone":    u.Phone,
			"password": u.PasswordHash,
			"rol_id":   u.RoleID,
			"address":  u.Address,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) Delete(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, userID).Error
}

type RoleGormRepository struct {
	db *gorm.DB
}

// DI
func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) FindByID(ctx context.Context, roleID int64) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("id = ?", roleID).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

func (r *RoleGormRepository) FindByName(ctx context.Context, name string) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("nombre = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

func (r *RoleGormRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("id asc").Find(&roles).Error; err != nil {
		return []model.Role{}, err
	}
	return roles, nil
}

func (r *RoleGormRepository) Create(ctx context.Context, role model.Role) (model.Role, error) {
	if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
		return model.Role{}, err
	}
	return role, nil
}

// ロール削除。所属ユーザーはDBのカスケードで一緒に消える。
func (r *RoleGormRepository) Delete(ctx context.Context, roleID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//外部キーのカスケードが無いストレージ向けに明示的に消す
		if err := tx.Where("rol_id = ?", roleID).Delete(&model.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Role{}, roleID).Error
	})
}
