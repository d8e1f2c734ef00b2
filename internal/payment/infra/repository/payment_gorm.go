package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qualifygym/commerce/internal/payment/model"
	repo "github.com/qualifygym/commerce/internal/payment/repository"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

// DI
func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) FindByID(ctx context.Context, paymentID int64) (model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).Where("id = ?", paymentID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Payment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]model.Payment, error) {
	var items []model.Payment
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Payment{}, err
	}
	return items, nil
}

func (r *PaymentGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Payment, error) {
	var items []model.Payment
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Payment{}, err
	}
	return items, nil
}

func (r *PaymentGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	var items []model.Payment
	err := r.db.WithContext(ctx).
		Where("orden_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Payment{}, err
	}
	return items, nil
}

func (r *PaymentGormRepository) ListByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	var items []model.Payment
	err := r.db.WithContext(ctx).
		Where("estado = ?", status).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Payment{}, err
	}
	return items, nil
}

func (r *PaymentGormRepository) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) UpdateStatus(ctx context.Context, paymentID int64, status string, paidAt *time.Time) error {
	updates := map[string]any{"estado": status}
	if paidAt != nil {
		updates["fecha_pago"] = *paidAt
	}

	res := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", paymentID).
		Updates(updates)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PaymentGormRepository) Delete(ctx context.Context, paymentID int64) error {
	return r.db.WithContext(ctx).Delete(&model.Payment{}, paymentID).Error
}
