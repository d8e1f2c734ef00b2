package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/qualifygym/commerce/internal/catalog/cache"
	"github.com/qualifygym/commerce/internal/catalog/handler"
	infraRepo "github.com/qualifygym/commerce/internal/catalog/infra/repository"
	"github.com/qualifygym/commerce/internal/catalog/model"
	"github.com/qualifygym/commerce/internal/catalog/usecase"
	"github.com/qualifygym/commerce/internal/config"
	"github.com/qualifygym/commerce/internal/infra/db"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "catalogo").Logger()

	//.envは開発用。無くてもよい。
	_ = godotenv.Load()

	cfg, err := config.Load("8081")
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.StockAdjustment{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	//REDIS_ADDRが無ければキャッシュ無しで動く
	var productCache cache.ProductCache = cache.NoopProductCache{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		productCache = cache.NewRedisProductCache(rdb, 5*time.Minute)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("cache de productos habilitado")
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	adjustmentRepo := infraRepo.NewStockAdjustmentGormRepository(gormDB)

	uc := usecase.NewProductUsecase(productRepo, adjustmentRepo, productCache)
	h := handler.NewProductHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	h.RegisterRoutes(e)

	logger.Info().Str("port", cfg.Port).Msg("catalogo iniciado")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
