package repository

import (
	"context"
	"errors"

	"github.com/qualifygym/commerce/internal/catalog/model"
)

var ErrNotFound = errors.New("not found")

type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	// 名前の部分一致（大文字小文字は区別しない）
	SearchByName(ctx context.Context, name string) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Save(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error
	// stock = stock + delta を1文で実行する。行が無ければErrNotFound。
	AdjustStock(ctx context.Context, productID int64, delta int64) error
}

type StockAdjustmentRepository interface {
	Create(ctx context.Context, adj model.StockAdjustment) error
	ListByProductID(ctx context.Context, productID int64) ([]model.StockAdjustment, error)
}
