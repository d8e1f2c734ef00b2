package usecase

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/apperr"
	"github.com/qualifygym/commerce/internal/order/model"
	repo "github.com/qualifygym/commerce/internal/order/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "ordenes").Logger()

// OrderUsecase は /ordenes の業務ロジック。
type OrderUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// totalは申告値として保存する。明細の合計との突き合わせはしない。
type CreateOrderInput struct {
	UserID          int64
	Total           decimal.Decimal
	ShippingAddress string
	Notes           string
	Items           []OrderItemInput
}

type OrderOutput struct {
	Order model.Order       `json:"orden"`
	Items []model.OrderItem `json:"items"`
}

// CreateOrder は注文＋明細を1トランザクションで作る。
// 明細のどれかで失敗したら注文ごと戻す（部分書き込みを残さない）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if in.UserID <= 0 {
		return OrderOutput{}, apperr.Validation("usuarioId inválido")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, apperr.Validation("la orden debe tener al menos un item")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return OrderOutput{}, apperr.Validation("productoId inválido")
		}
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		order := model.Order{
			UserID:          in.UserID,
			Total:           in.Total,
			Status:          model.Pendiente().String(),
			CreatedAt:       now,
			UpdatedAt:       now,
			ShippingAddress: in.ShippingAddress,
			Notes:           in.Notes,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return err
		}
		order.ID = orderID

		//明細は入力順に作る。subtotalはここで一度だけ計算して保存する。
		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			created, err := r.OrderItems().Create(ctx, model.OrderItem{
				OrderID:   orderID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Subtotal:  it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
			})
			if err != nil {
				return err
			}
			items = append(items, created)
		}

		out = OrderOutput{Order: order, Items: items}
		return nil
	})

	if err != nil {
		if _, ok := apperr.As(err); ok {
			return OrderOutput{}, err
		}
		return OrderOutput{}, apperr.Internal("db error")
	}

	logger.Info().
		Int64("orden_id", out.Order.ID).
		Int64("usuario_id", in.UserID).
		Int("items", len(out.Items)).
		Msg("orden creada")
	return out, nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().List(ctx)
		return err
	})
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return orders, nil
}

func (u *OrderUsecase) GetByID(ctx context.Context, orderID int64) (model.Order, error) {
	var order model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		order, err = r.Orders().FindByID(ctx, orderID)
		return err
	})
	if err == repo.ErrNotFound {
		return model.Order{}, apperr.NotFound("Orden no encontrada ID: %d", orderID)
	}
	if err != nil {
		return model.Order{}, apperr.Internal("db error")
	}
	return order, nil
}

func (u *OrderUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().ListByUserID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return orders, nil
}

func (u *OrderUsecase) ListByStatus(ctx context.Context, status string) ([]model.Order, error) {
	var orders []model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().ListByStatus(ctx, status)
		return err
	})
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return orders, nil
}

func (u *OrderUsecase) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		items, err = r.OrderItems().ListByOrderID(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

// UpdateStatus は任意の空でない文字列を受け付けて上書きし、
// fecha_actualizacionを必ず進める。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, rawStatus string) (model.Order, error) {
	status, err := model.ParseStatus(rawStatus)
	if err != nil {
		return model.Order{}, apperr.Validation("estado es obligatorio")
	}

	var order model.Order
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdateStatus(ctx, orderID, status.String(), time.Now()); err != nil {
			return err
		}
		var err error
		order, err = r.Orders().FindByID(ctx, orderID)
		return err
	})
	if err == repo.ErrNotFound {
		return model.Order{}, apperr.NotFound("Orden no encontrada ID: %d", orderID)
	}
	if err != nil {
		return model.Order{}, apperr.Internal("db error")
	}

	logger.Info().Int64("orden_id", orderID).Str("estado", status.String()).Msg("estado de orden actualizado")
	return order, nil
}

// DeleteOrder は明細→注文の順で、1トランザクションで消す。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return err
		}
		return r.Orders().Delete(ctx, orderID)
	})
	if err != nil {
		return apperr.Internal("db error")
	}
	return nil
}
