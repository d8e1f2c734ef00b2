package usecase

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/apperr"
	"github.com/qualifygym/commerce/internal/cart/model"
	repo "github.com/qualifygym/commerce/internal/cart/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "carrito").Logger()

// CartUsecase は /carrito の業務ロジック。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
}

// DI
func NewCartUsecase(cartItemRepo repo.CartItemRepository) *CartUsecase {
	return &CartUsecase{cartItemRepo: cartItemRepo}
}

type AddItemInput struct {
	UserID    int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// AddItem はカートに追加。同一(usuario, producto)は数量加算で、
// 価格は最初に保存した値を保持する（後からのaddで変えない）。
// 数量・価格の値域チェックはこの層では行わない（元仕様どおり）。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (model.CartItem, error) {
	if in.UserID <= 0 {
		return model.CartItem{}, apperr.Validation("usuarioId inválido")
	}
	if in.ProductID <= 0 {
		return model.CartItem{}, apperr.Validation("productoId inválido")
	}

	item, err := u.cartItemRepo.Upsert(ctx, in.UserID, in.ProductID, in.Quantity, in.UnitPrice, repo.PriceKeepExisting)
	if err != nil {
		return model.CartItem{}, apperr.Internal("db error")
	}

	logger.Info().
		Int64("usuario_id", in.UserID).
		Int64("producto_id", in.ProductID).
		Int64("cantidad", item.Quantity).
		Msg("item agregado al carrito")
	return item, nil
}

func (u *CartUsecase) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

func (u *CartUsecase) GetItem(ctx context.Context, itemID int64) (model.CartItem, error) {
	item, err := u.cartItemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.CartItem{}, apperr.NotFound("Item no encontrado ID: %d", itemID)
	}
	if err != nil {
		return model.CartItem{}, apperr.Internal("db error")
	}
	return item, nil
}

// SetQuantity は数量の置き換え（加算ではない）。
func (u *CartUsecase) SetQuantity(ctx context.Context, itemID int64, qty int64) (model.CartItem, error) {
	if err := u.cartItemRepo.UpdateQuantity(ctx, itemID, qty); err != nil {
		if err == repo.ErrNotFound {
			return model.CartItem{}, apperr.NotFound("Item no encontrado ID: %d", itemID)
		}
		return model.CartItem{}, apperr.Internal("db error")
	}

	item, err := u.cartItemRepo.FindByID(ctx, itemID)
	if err != nil {
		return model.CartItem{}, apperr.Internal("db error")
	}
	return item, nil
}

// 削除系は冪等（対象が無くても成功）

func (u *CartUsecase) RemoveItem(ctx context.Context, itemID int64) error {
	if err := u.cartItemRepo.DeleteByID(ctx, itemID); err != nil {
		return apperr.Internal("db error")
	}
	return nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) error {
	if err := u.cartItemRepo.DeleteByUserID(ctx, userID); err != nil {
		return apperr.Internal("db error")
	}
	logger.Info().Int64("usuario_id", userID).Msg("carrito vaciado")
	return nil
}

func (u *CartUsecase) RemoveByProduct(ctx context.Context, userID int64, productID int64) error {
	if err := u.cartItemRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return apperr.Internal("db error")
	}
	return nil
}
