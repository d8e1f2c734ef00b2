package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qualifygym/commerce/internal/cart/model"
	repo "github.com/qualifygym/commerce/internal/cart/repository"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, itemID int64) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 同一商品は数量加算。find→updateの2文に分けるとINSERT失敗後の
// 取り直しがpostgresではアボート済みトランザクション内のSELECTになり
// 成立しないため、ON CONFLICT句の1文で加算する。
func (r *CartItemGormRepository) Upsert(ctx context.Context, userID int64, productID int64, addQty int64, unitPrice decimal.Decimal, policy repo.PricePolicy) (model.CartItem, error) {
	assignments := map[string]any{
		"cantidad": gorm.Expr("cantidad + ?", addQty),
	}
	if policy == repo.PriceOverwrite {
		assignments["precio_unitario"] = unitPrice
	}

	item := model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  addQty,
		UnitPrice: unitPrice,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "producto_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(&item).Error
	if err != nil {
		return model.CartItem{}, err
	}

	// 衝突時はitemに合算後の値が入らないので読み直して返す
	var saved model.CartItem
	err = r.db.WithContext(ctx).
		Where("usuario_id = ? AND producto_id = ?", userID, productID).
		First(&saved).Error
	if err != nil {
		return model.CartItem{}, err
	}
	return saved, nil
}

func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, itemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("cantidad", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 以下の削除は対象が無くてもエラーにしない

func (r *CartItemGormRepository) DeleteByID(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, itemID).Error
}

func (r *CartItemGormRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Delete(&model.CartItem{}).Error
}

func (r *CartItemGormRepository) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	return r.db.WithContext(ctx).
		Where("usuario_id = ? AND producto_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}
