package usecase

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/qualifygym/commerce/internal/apperr"
	"github.com/qualifygym/commerce/internal/catalog/cache"
	"github.com/qualifygym/commerce/internal/catalog/model"
	repo "github.com/qualifygym/commerce/internal/catalog/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "catalogo").Logger()

// ProductUsecase は /productos の業務ロジック。
type ProductUsecase struct {
	productRepo    repo.ProductRepository
	adjustmentRepo repo.StockAdjustmentRepository
	cache          cache.ProductCache
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	adjustmentRepo repo.StockAdjustmentRepository,
	productCache cache.ProductCache,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:    productRepo,
		adjustmentRepo: adjustmentRepo,
		cache:          productCache,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	Stock       int64
}

// 部分更新。nilのフィールドは触らない、文字列は空なら触らない。
// imagenだけはnilでない限り空でも反映する（元仕様どおり）。
type UpdateProductInput struct {
	Name        string
	Description string
	Price       *decimal.Decimal
	Category    string
	Image       *string
	Stock       *int64
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

// GetByID はキャッシュ優先で1件取得。
func (u *ProductUsecase) GetByID(ctx context.Context, productID int64) (model.Product, error) {
	if p, ok := u.cache.Get(ctx, productID); ok {
		return p, nil
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, apperr.NotFound("Producto no encontrado ID: %d", productID)
	}
	if err != nil {
		return model.Product{}, apperr.Internal("db error")
	}

	u.cache.Set(ctx, p)
	return p, nil
}

func (u *ProductUsecase) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	items, err := u.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

func (u *ProductUsecase) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	items, err := u.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, apperr.Validation("nombre es obligatorio")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Product{}, apperr.Validation("categoria es obligatoria")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Stock:       in.Stock,
	})
	if err != nil {
		return model.Product{}, apperr.Internal("db error")
	}

	logger.Info().Int64("producto_id", p.ID).Str("nombre", p.Name).Msg("producto creado")
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, apperr.NotFound("Producto no encontrado ID: %d", productID)
	}
	if err != nil {
		return model.Product{}, apperr.Internal("db error")
	}

	if strings.TrimSpace(in.Name) != "" {
		p.Name = in.Name
	}
	if strings.TrimSpace(in.Description) != "" {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if strings.TrimSpace(in.Category) != "" {
		p.Category = in.Category
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}

	if err := u.productRepo.Save(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, apperr.NotFound("Producto no encontrado ID: %d", productID)
		}
		return model.Product{}, apperr.Internal("db error")
	}

	u.cache.Invalidate(ctx, productID)
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if err := u.productRepo.Delete(ctx, productID); err != nil {
		return apperr.Internal("db error")
	}
	u.cache.Invalidate(ctx, productID)
	return nil
}

// AdjustStock は stock += delta。deltaは負でもよく、結果が負になっても止めない。
func (u *ProductUsecase) AdjustStock(ctx context.Context, productID int64, delta int64, reason string) (model.Product, error) {
	if err := u.productRepo.AdjustStock(ctx, productID, delta); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, apperr.NotFound("Producto no encontrado ID: %d", productID)
		}
		return model.Product{}, apperr.Internal("db error")
	}

	//履歴はベストエフォート（本体の更新は確定済み）
	if err := u.adjustmentRepo.Create(ctx, model.StockAdjustment{
		ProductID: productID,
		Delta:     delta,
		Reason:    reason,
	}); err != nil {
		logger.Warn().Err(err).Int64("producto_id", productID).Msg("no se pudo guardar el ajuste")
	}

	u.cache.Invalidate(ctx, productID)

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, apperr.Internal("db error")
	}

	logger.Info().Int64("producto_id", productID).Int64("delta", delta).Int64("stock", p.Stock).Msg("stock ajustado")
	return p, nil
}

func (u *ProductUsecase) ListAdjustments(ctx context.Context, productID int64) ([]model.StockAdjustment, error) {
	items, err := u.adjustmentRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("db error")
	}
	return items, nil
}
