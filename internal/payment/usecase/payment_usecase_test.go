package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/qualifygym/commerce/internal/apperr"
	"github.com/qualifygym/commerce/internal/payment/model"
	repo "github.com/qualifygym/commerce/internal/payment/repository"
)

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) FindByID(ctx context.Context, paymentID int64) (model.Payment, error) {
	args := m.Called(ctx, paymentID)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) List(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Payment)
	return items, args.Error(1)
}

func (m *PaymentRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Payment, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Payment)
	return items, args.Error(1)
}

func (m *PaymentRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.Payment)
	return items, args.Error(1)
}

func (m *PaymentRepoMock) ListByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	args := m.Called(ctx, status)
	items, _ := args.Get(0).([]model.Payment)
	return items, args.Error(1)
}

func (m *PaymentRepoMock) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Payment)
	if args.Error(1) == nil && created.ID == 0 {
		created = p
		created.ID = 1
	}
	return created, args.Error(1)
}

func (m *PaymentRepoMock) UpdateStatus(ctx context.Context, paymentID int64, status string, paidAt *time.Time) error {
	args := m.Called(ctx, paymentID, status, paidAt)
	return args.Error(0)
}

func (m *PaymentRepoMock) Delete(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// =====================
// CreatePayment
// =====================

func TestPaymentUsecase_CreatePayment_Validation(t *testing.T) {
	uc := NewPaymentUsecase(new(PaymentRepoMock))
	ctx := context.Background()

	_, err := uc.CreatePayment(ctx, CreatePaymentInput{OrderID: 0, UserID: 1, Method: "tarjeta"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = uc.CreatePayment(ctx, CreatePaymentInput{OrderID: 1, UserID: 0, Method: "tarjeta"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = uc.CreatePayment(ctx, CreatePaymentInput{OrderID: 1, UserID: 1, Method: ""})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

// 作成直後はpendiente、fecha_pagoは作成時刻で埋まる
func TestPaymentUsecase_CreatePayment_Success(t *testing.T) {
	pRepo := new(PaymentRepoMock)
	uc := NewPaymentUsecase(pRepo)

	before := time.Now()
	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 10 && p.UserID == 3 && p.Status == "pendiente" &&
			p.Amount.Equal(decimal.RequireFromString("150.00")) && !p.PaidAt.Before(before)
	})).Return(model.Payment{}, nil)

	p, err := uc.CreatePayment(context.Background(), CreatePaymentInput{
		OrderID: 10,
		UserID:  3,
		Amount:  decimal.RequireFromString("150.00"),
		Method:  "tarjeta",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pendiente", p.Status)

	pRepo.AssertExpectations(t)
}

// =====================
// UpdateStatus
// =====================

// completadoへの遷移はfecha_pagoを現在時刻に更新する
func TestPaymentUsecase_UpdateStatus_CompletadoSetsPaidAt(t *testing.T) {
	pRepo := new(PaymentRepoMock)
	uc := NewPaymentUsecase(pRepo)

	before := time.Now()
	pRepo.On("UpdateStatus", mock.Anything, int64(1), "completado", mock.MatchedBy(func(paidAt *time.Time) bool {
		return paidAt != nil && !paidAt.Before(before)
	})).Return(nil)
	pRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Payment{ID: 1, Status: "completado"}, nil)

	p, err := uc.UpdateStatus(context.Background(), 1, "completado")
	assert.NoError(t, err)
	assert.Equal(t, "completado", p.Status)

	pRepo.AssertExpectations(t)
}

// completado以外の遷移はfecha_pagoを触らない
func TestPaymentUsecase_UpdateStatus_OtherStatusesKeepPaidAt(t *testing.T) {
	for _, status := range []string{"pendiente", "fallido", "reembolsado", "en revisión"} {
		pRepo := new(PaymentRepoMock)
		uc := NewPaymentUsecase(pRepo)

		pRepo.On("UpdateStatus", mock.Anything, int64(1), status, (*time.Time)(nil)).Return(nil)
		pRepo.On("FindByID", mock.Anything, int64(1)).
			Return(model.Payment{ID: 1, Status: status}, nil)

		_, err := uc.UpdateStatus(context.Background(), 1, status)
		assert.NoError(t, err)

		pRepo.AssertExpectations(t)
	}
}

// 照合は完全一致なので "Completado" は決済扱いにならない
func TestPaymentUsecase_UpdateStatus_CaseSensitive(t *testing.T) {
	pRepo := new(PaymentRepoMock)
	uc := NewPaymentUsecase(pRepo)

	pRepo.On("UpdateStatus", mock.Anything, int64(1), "Completado", (*time.Time)(nil)).Return(nil)
	pRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Payment{ID: 1, Status: "Completado"}, nil)

	_, err := uc.UpdateStatus(context.Background(), 1, "Completado")
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
}

func TestPaymentUsecase_UpdateStatus_Empty(t *testing.T) {
	uc := NewPaymentUsecase(new(PaymentRepoMock))

	_, err := uc.UpdateStatus(context.Background(), 1, "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestPaymentUsecase_UpdateStatus_NotFound(t *testing.T) {
	pRepo := new(PaymentRepoMock)
	uc := NewPaymentUsecase(pRepo)

	pRepo.On("UpdateStatus", mock.Anything, int64(99), "fallido", (*time.Time)(nil)).
		Return(repo.ErrNotFound)

	_, err := uc.UpdateStatus(context.Background(), 99, "fallido")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

// =====================
// Settles
// =====================

func TestStatusSettles(t *testing.T) {
	s, err := model.ParseStatus("completado")
	assert.NoError(t, err)
	assert.True(t, s.Settles())

	for _, raw := range []string{"pendiente", "fallido", "reembolsado", "Completado"} {
		s, err := model.ParseStatus(raw)
		assert.NoError(t, err)
		assert.False(t, s.Settles())
	}
}
