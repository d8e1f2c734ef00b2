package repository

import (
	"context"
	"errors"
	"time"

	"github.com/qualifygym/commerce/internal/order/model"
)

var ErrNotFound = errors.New("not found")

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	ListByStatus(ctx context.Context, status string) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	// ステータスと更新時刻を同時に書く。行が無ければErrNotFound。
	UpdateStatus(ctx context.Context, orderID int64, status string, updatedAt time.Time) error
	Delete(ctx context.Context, orderID int64) error
}

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
