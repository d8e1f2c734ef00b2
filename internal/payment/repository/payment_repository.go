package repository

import (
	"context"
	"errors"
	"time"

	"github.com/qualifygym/commerce/internal/payment/model"
)

var ErrNotFound = errors.New("not found")

type PaymentRepository interface {
	FindByID(ctx context.Context, paymentID int64) (model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Payment, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error)
	ListByStatus(ctx context.Context, status string) ([]model.Payment, error)
	Create(ctx context.Context, p model.Payment) (model.Payment, error)
	// paidAtがnilでなければ fecha_pago も同時に更新する。行が無ければErrNotFound。
	UpdateStatus(ctx context.Context, paymentID int64, status string, paidAt *time.Time) error
	Delete(ctx context.Context, paymentID int64) error
}
