package usecase

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/apperr"
	"github.com/qualifygym/commerce/internal/payment/model"
	repo "github.com/qualifygym/commerce/internal/payment/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "pagos").Logger()

// PaymentUsecase は /pagos の業務ロジック。
// orden_id/usuario_idは検証しない（他サービスのIDをそのまま預かる）。
type PaymentUsecase struct {
	paymentRepo repo.PaymentRepository
}

// DI
func NewPaymentUsecase(paymentRepo repo.PaymentRepository) *PaymentUsecase {
	return &PaymentUsecase{paymentRepo: paymentRepo}
}

type CreatePaymentInput struct {
	OrderID int64
	UserID  int64
	Amount  decimal.Decimal
	Method  string
	Note    string
}

func (u *PaymentUsecase) CreatePayment(ctx context.Context, in CreatePaymentInput) (model.Payment, error) {
	if in.OrderID <= 0 {
		return model.Payment{}, apperr.Validation("ordenId inválido")
	}
	if in.UserID <= 0 {
		return model.Payment{}, apperr.Validation("usuarioId inválido")
	}
	if in.Method == "" {
		return model.Payment{}, apperr.Validation("metodoPago es obligatorio")
	}

	p, err := u.paymentRepo.Create(ctx, model.Payment{
		OrderID: in.OrderID,
		UserID:  in.UserID,
		Amount:  in.Amount,
		Method:  in.Method,
		Status:  model.Pendiente().String(),
		PaidAt:  time.Now(),
		Note:    in.Note,
	})
	if err != nil {
		return model.Payment{}, apperr.Internal("db error")
	}

	logger.Info().Int64("pago_id", p.ID).Int64("orden_id", p.OrderID).Msg("pago creado")
	return p, nil
}

func (u *PaymentUsecase) GetByID(ctx context.Context, paymentID int64) (model.Payment, error) {
	p, err := u.paymentRepo.FindByID(ctx, paymentID)
	if err == repo.ErrNotFound {
		return model.Payment{}, apperr.NotFound("Pago no encontrado ID: %d", paymentID)
	}
	if err != nil {
		return model.Payment{}, apperr.Internal("db error")
	}
	return p, nil
}

func (u *PaymentUsecase) List(ctx context.Context) ([]model.Payment, error) {
	items, err := u.paymentRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

func (u *PaymentUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	items, err := u.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

func (u *PaymentUsecase) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	items, err := u.paymentRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

func (u *PaymentUsecase) ListByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	items, err := u.paymentRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

// UpdateStatus は任意の空でない文字列を受け付ける。
// ちょうど "completado" への遷移のときだけ fecha_pago を現在時刻に更新する
// （completado→completadoの再遷移でも更新される）。
func (u *PaymentUsecase) UpdateStatus(ctx context.Context, paymentID int64, rawStatus string) (model.Payment, error) {
	status, err := model.ParseStatus(rawStatus)
	if err != nil {
		return model.Payment{}, apperr.Validation("estado es obligatorio")
	}

	var paidAt *time.Time
	if status.Settles() {
		now := time.Now()
		paidAt = &now
	}

	if err := u.paymentRepo.UpdateStatus(ctx, paymentID, status.String(), paidAt); err != nil {
		if err == repo.ErrNotFound {
			return model.Payment{}, apperr.NotFound("Pago no encontrado ID: %d", paymentID)
		}
		return model.Payment{}, apperr.Internal("db error")
	}

	p, err := u.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return model.Payment{}, apperr.Internal("db error")
	}

	logger.Info().Int64("pago_id", paymentID).Str("estado", status.String()).Msg("estado de pago actualizado")
	return p, nil
}

func (u *PaymentUsecase) Delete(ctx context.Context, paymentID int64) error {
	if err := u.paymentRepo.Delete(ctx, paymentID); err != nil {
		return apperr.Internal("db error")
	}
	return nil
}
