package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qualifygym/commerce/internal/cart/model"
	repo "github.com/qualifygym/commerce/internal/cart/repository"
)

func newCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:carrito_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CartItem{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM items_carrito")
	})
	return db
}

func TestCartItemGorm_FindByID_NotFound(t *testing.T) {
	r := NewCartItemGormRepository(newCartTestDB(t))

	_, err := r.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// (usuario, producto)の複合ユニークがDB側で張られていること
func TestCartItemGorm_UniqueUserProduct(t *testing.T) {
	db := newCartTestDB(t)

	price := decimal.RequireFromString("10.00")
	require.NoError(t, db.Create(&model.CartItem{UserID: 1, ProductID: 2, Quantity: 1, UnitPrice: price}).Error)

	err := db.Create(&model.CartItem{UserID: 1, ProductID: 2, Quantity: 5, UnitPrice: price}).Error
	assert.Error(t, err)
}

// 同一(usuario, producto)へのaddは行を増やさず数量を合算する。
// PriceKeepExistingなら価格は初回の値のまま。
func TestCartItemGorm_Upsert_MergesQuantityKeepsPrice(t *testing.T) {
	db := newCartTestDB(t)
	r := NewCartItemGormRepository(db)
	ctx := context.Background()

	first, err := r.Upsert(ctx, 1, 2, 2, decimal.RequireFromString("10.00"), repo.PriceKeepExisting)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Quantity)
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("10.00")))

	merged, err := r.Upsert(ctx, 1, 2, 3, decimal.RequireFromString("99.00"), repo.PriceKeepExisting)
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, int64(5), merged.Quantity)
	assert.True(t, merged.UnitPrice.Equal(decimal.RequireFromString("10.00")))

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartItemGorm_Upsert_PriceOverwrite(t *testing.T) {
	db := newCartTestDB(t)
	r := NewCartItemGormRepository(db)
	ctx := context.Background()

	_, err := r.Upsert(ctx, 1, 2, 1, decimal.RequireFromString("10.00"), repo.PriceOverwrite)
	require.NoError(t, err)

	merged, err := r.Upsert(ctx, 1, 2, 4, decimal.RequireFromString("8.50"), repo.PriceOverwrite)
	require.NoError(t, err)
	assert.Equal(t, int64(5), merged.Quantity)
	assert.True(t, merged.UnitPrice.Equal(decimal.RequireFromString("8.50")))
}

// 別ユーザーの同じ商品は独立した行になる
func TestCartItemGorm_Upsert_ScopedPerUser(t *testing.T) {
	db := newCartTestDB(t)
	r := NewCartItemGormRepository(db)
	ctx := context.Background()

	price := decimal.RequireFromString("10.00")
	a, err := r.Upsert(ctx, 1, 2, 1, price, repo.PriceKeepExisting)
	require.NoError(t, err)
	b, err := r.Upsert(ctx, 7, 2, 1, price, repo.PriceKeepExisting)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, int64(1), a.Quantity)
	assert.Equal(t, int64(1), b.Quantity)
}

func TestCartItemGorm_ListByUserID_OrderedAndScoped(t *testing.T) {
	db := newCartTestDB(t)
	r := NewCartItemGormRepository(db)
	ctx := context.Background()

	price := decimal.RequireFromString("5.50")
	require.NoError(t, db.Create(&model.CartItem{UserID: 1, ProductID: 10, Quantity: 1, UnitPrice: price}).Error)
	require.NoError(t, db.Create(&model.CartItem{UserID: 2, ProductID: 10, Quantity: 9, UnitPrice: price}).Error)
	require.NoError(t, db.Create(&model.CartItem{UserID: 1, ProductID: 11, Quantity: 2, UnitPrice: price}).Error)

	items, err := r.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].ProductID)
	assert.Equal(t, int64(11), items[1].ProductID)

	empty, err := r.ListByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestCartItemGorm_UpdateQuantity(t *testing.T) {
	db := newCartTestDB(t)
	r := NewCartItemGormRepository(db)
	ctx := context.Background()

	item := model.CartItem{UserID: 1, ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")}
	require.NoError(t, db.Create(&item).Error)

	// 置き換え（加算ではない）
	require.NoError(t, r.UpdateQuantity(ctx, item.ID, 7))
	got, err := r.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Quantity)

	// 無いidはErrNotFound
	assert.ErrorIs(t, r.UpdateQuantity(ctx, 12345, 1), repo.ErrNotFound)
}

// 削除系は冪等（2回目も成功）
func TestCartItemGorm_DeletesAreIdempotent(t *testing.T) {
	db := newCartTestDB(t)
	r := NewCartItemGormRepository(db)
	ctx := context.Background()

	price := decimal.RequireFromString("1.00")
	item := model.CartItem{UserID: 1, ProductID: 2, Quantity: 1, UnitPrice: price}
	require.NoError(t, db.Create(&item).Error)

	assert.NoError(t, r.DeleteByID(ctx, item.ID))
	assert.NoError(t, r.DeleteByID(ctx, item.ID))

	require.NoError(t, db.Create(&model.CartItem{UserID: 3, ProductID: 4, Quantity: 1, UnitPrice: price}).Error)
	assert.NoError(t, r.DeleteByUserAndProduct(ctx, 3, 4))
	assert.NoError(t, r.DeleteByUserAndProduct(ctx, 3, 4))

	assert.NoError(t, r.DeleteByUserID(ctx, 999))
}
