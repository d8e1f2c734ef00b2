package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/cart/model"
)

var ErrNotFound = errors.New("not found")

// PricePolicy は同じ(usuario, producto)に再度addしたときの価格の扱い。
type PricePolicy int

const (
	// 最初に保存した価格を保持する（既定の挙動）
	PriceKeepExisting PricePolicy = iota
	// 渡された価格で上書きする
	PriceOverwrite
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, itemID int64) (model.CartItem, error)
	// 同一(usuario, producto)は数量加算。1トランザクション＋行ロックで実行する。
	Upsert(ctx context.Context, userID int64, productID int64, addQty int64, unitPrice decimal.Decimal, policy PricePolicy) (model.CartItem, error)
	// 数量の置き換え（加算ではない）。行が無ければErrNotFound。
	UpdateQuantity(ctx context.Context, itemID int64, qty int64) error
	// 削除系はすべて冪等
	DeleteByID(ctx context.Context, itemID int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
}
