package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qualifygym/commerce/internal/payment/model"
	repo "github.com/qualifygym/commerce/internal/payment/repository"
)

func newPaymentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:pagos_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Payment{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM pagos")
	})
	return db
}

func seedPayment(t *testing.T, db *gorm.DB, orderID int64, status string) model.Payment {
	t.Helper()
	p := model.Payment{
		OrderID: orderID,
		UserID:  1,
		Amount:  decimal.RequireFromString("100.00"),
		Method:  "tarjeta",
		Status:  status,
		PaidAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// paidAtありの遷移はfecha_pagoも一緒に進む
func TestPaymentGorm_UpdateStatus_WithPaidAt(t *testing.T) {
	db := newPaymentTestDB(t)
	r := NewPaymentGormRepository(db)
	ctx := context.Background()

	p := seedPayment(t, db, 10, "pendiente")

	now := time.Now()
	require.NoError(t, r.UpdateStatus(ctx, p.ID, "completado", &now))

	got, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "completado", got.Status)
	assert.True(t, got.PaidAt.After(p.PaidAt))
}

// paidAtなしの遷移はfecha_pagoを触らない
func TestPaymentGorm_UpdateStatus_WithoutPaidAt(t *testing.T) {
	db := newPaymentTestDB(t)
	r := NewPaymentGormRepository(db)
	ctx := context.Background()

	p := seedPayment(t, db, 10, "pendiente")

	require.NoError(t, r.UpdateStatus(ctx, p.ID, "fallido", nil))

	got, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "fallido", got.Status)
	assert.WithinDuration(t, p.PaidAt, got.PaidAt, time.Second)
}

func TestPaymentGorm_UpdateStatus_NotFound(t *testing.T) {
	r := NewPaymentGormRepository(newPaymentTestDB(t))

	assert.ErrorIs(t, r.UpdateStatus(context.Background(), 999, "completado", nil), repo.ErrNotFound)
}

func TestPaymentGorm_ListByOrderID(t *testing.T) {
	db := newPaymentTestDB(t)
	r := NewPaymentGormRepository(db)
	ctx := context.Background()

	seedPayment(t, db, 10, "fallido")
	seedPayment(t, db, 10, "completado")
	seedPayment(t, db, 11, "pendiente")

	items, err := r.ListByOrderID(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// 同じ注文への支払い試行は作成順
	assert.Equal(t, "fallido", items[0].Status)
	assert.Equal(t, "completado", items[1].Status)
}

func TestPaymentGorm_Delete_Idempotent(t *testing.T) {
	db := newPaymentTestDB(t)
	r := NewPaymentGormRepository(db)
	ctx := context.Background()

	p := seedPayment(t, db, 10, "pendiente")

	assert.NoError(t, r.Delete(ctx, p.ID))
	assert.NoError(t, r.Delete(ctx, p.ID))
}
