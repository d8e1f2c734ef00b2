package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qualifygym/commerce/internal/order/model"
	repo "github.com/qualifygym/commerce/internal/order/repository"
)

func newOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:ordenes_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.OrderItem{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM items_orden")
		db.Exec("DELETE FROM ordenes")
	})
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, userID int64, status string) model.Order {
	t.Helper()
	now := time.Now()
	o := model.Order{
		UserID:    userID,
		Total:     decimal.RequireFromString("50.00"),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestOrderGorm_UpdateStatus(t *testing.T) {
	db := newOrderTestDB(t)
	r := NewOrderGormRepository(db)
	ctx := context.Background()

	o := seedOrder(t, db, 1, "pendiente")
	later := o.UpdatedAt.Add(time.Hour)

	require.NoError(t, r.UpdateStatus(ctx, o.ID, "pagada", later))

	got, err := r.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "pagada", got.Status)
	// fecha_actualizacionも一緒に進む
	assert.True(t, got.UpdatedAt.After(o.CreatedAt))
	// fecha_creacionは変わらない
	assert.WithinDuration(t, o.CreatedAt, got.CreatedAt, time.Second)

	assert.ErrorIs(t, r.UpdateStatus(ctx, 12345, "pagada", later), repo.ErrNotFound)
}

func TestOrderGorm_ListByStatus(t *testing.T) {
	db := newOrderTestDB(t)
	r := NewOrderGormRepository(db)
	ctx := context.Background()

	seedOrder(t, db, 1, "pendiente")
	seedOrder(t, db, 2, "cancelada")
	seedOrder(t, db, 3, "pendiente")

	items, err := r.ListByStatus(ctx, "pendiente")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = r.ListByStatus(ctx, "enviada")
	require.NoError(t, err)
	assert.Len(t, items, 0)
}

// 注文＋明細をトランザクションで書き、途中失敗は全体を戻す
func TestTxManagerGorm_RollbackLeavesNothing(t *testing.T) {
	db := newOrderTestDB(t)
	tm := NewTxManagerGorm(db)
	ctx := context.Background()

	boom := errors.New("boom")
	now := time.Now()

	err := tm.WithinTx(ctx, func(r repo.TxRepos) error {
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:    1,
			Total:     decimal.RequireFromString("10.00"),
			Status:    "pendiente",
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		if _, err := r.OrderItems().Create(ctx, model.OrderItem{
			OrderID:   orderID,
			ProductID: 1,
			Quantity:  1,
			UnitPrice: decimal.RequireFromString("10.00"),
			Subtotal:  decimal.RequireFromString("10.00"),
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// 注文も明細も残っていない
	var orders, items int64
	db.Model(&model.Order{}).Count(&orders)
	db.Model(&model.OrderItem{}).Count(&items)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), items)
}

func TestTxManagerGorm_CommitPersistsOrderWithItems(t *testing.T) {
	db := newOrderTestDB(t)
	tm := NewTxManagerGorm(db)
	ctx := context.Background()

	now := time.Now()
	var orderID int64

	err := tm.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orderID, err = r.Orders().Create(ctx, model.Order{
			UserID:    7,
			Total:     decimal.RequireFromString("35.50"),
			Status:    "pendiente",
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		for _, productID := range []int64{1, 2} {
			if _, err := r.OrderItems().Create(ctx, model.OrderItem{
				OrderID:   orderID,
				ProductID: productID,
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("17.75"),
				Subtotal:  decimal.RequireFromString("17.75"),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	itemRepo := NewOrderItemGormRepository(db)
	items, err := itemRepo.ListByOrderID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[1].ProductID)

	// 明細→注文の順で消す
	require.NoError(t, itemRepo.DeleteByOrderID(ctx, orderID))
	orderRepo := NewOrderGormRepository(db)
	require.NoError(t, orderRepo.Delete(ctx, orderID))

	_, err = orderRepo.FindByID(ctx, orderID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
