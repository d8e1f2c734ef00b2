package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qualifygym/commerce/internal/catalog/model"
	repo "github.com/qualifygym/commerce/internal/catalog/repository"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var items []model.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).
		Where("categoria = ?", category).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).
		Where("lower(nombre) LIKE lower(?)", "%"+name+"%").
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Save(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"nombre":      p.Name,
			"descripcion": p.Description,
			"precio":      p.Price,
			"categoria":   p.Category,
			"imagen":      p.Image,
			"stock":       p.Stock,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 削除は冪等（無ければ何もしない）
func (r *ProductGormRepository) Delete(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, productID).Error
}

// 在庫調整。読み取り→書き込みに分けず1文のUPDATEで加算する。
func (r *ProductGormRepository) AdjustStock(ctx context.Context, productID int64, delta int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", delta))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type StockAdjustmentGormRepository struct {
	db *gorm.DB
}

func NewStockAdjustmentGormRepository(db *gorm.DB) *StockAdjustmentGormRepository {
	return &StockAdjustmentGormRepository{db: db}
}

func (r *StockAdjustmentGormRepository) Create(ctx context.Context, adj model.StockAdjustment) error {
	return r.db.WithContext(ctx).Create(&adj).Error
}

func (r *StockAdjustmentGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.StockAdjustment, error) {
	var items []model.StockAdjustment
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.StockAdjustment{}, err
	}
	return items, nil
}
